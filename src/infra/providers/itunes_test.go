package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contre95/zenify/src/features/preview"
)

func TestFindPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("term") != "Intro The xx" || q.Get("media") != "music" || q.Get("limit") != "1" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"resultCount":1,"results":[{"trackName":"Intro","artistName":"The xx","previewUrl":"https://audio.example/intro.m4a"}]}`))
	}))
	defer server.Close()

	url, err := NewITunesProvider(server.URL, time.Second).FindPreview(context.Background(), "Intro The xx")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "https://audio.example/intro.m4a" {
		t.Errorf("unexpected preview url %q", url)
	}
}

func TestFindPreview_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount":0,"results":[]}`))
	}))
	defer server.Close()

	_, err := NewITunesProvider(server.URL, time.Second).FindPreview(context.Background(), "nothing")
	if !errors.Is(err, preview.ErrNoPreview) {
		t.Errorf("expected ErrNoPreview, got %v", err)
	}
}

func TestFindPreview_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewITunesProvider(server.URL, time.Second).FindPreview(context.Background(), "x")
	if err == nil || errors.Is(err, preview.ErrNoPreview) {
		t.Errorf("expected a request error, got %v", err)
	}
}
