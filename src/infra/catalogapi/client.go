package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/contre95/zenify/src/music"
)

// FetchError describes a failed song lookup against the catalog API.
type FetchError struct {
	Mood   string
	Status int // 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch songs for %q: status %d: %v", e.Mood, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch songs for %q: %v", e.Mood, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// maxResponseBytes caps the size of a songs response.
var maxResponseBytes int64 = 8 << 20

// Client calls the catalog HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the catalog API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSongs returns the songs the API serves for mood. The payload may be a plain
// array or an object holding the array under the mood key; anything else is
// decoded as the list itself and fails unless it is an array.
func (c *Client) FetchSongs(ctx context.Context, mood string) ([]music.Song, error) {
	songsURL := fmt.Sprintf("%s/api/songs/%s", c.baseURL, url.PathEscape(mood))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, songsURL, nil)
	if err != nil {
		return nil, &FetchError{Mood: mood, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Zenify/1.0")

	slog.Debug("Fetching songs", "url", songsURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Mood: mood, Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Mood: mood, Status: resp.StatusCode, Err: errors.New("API error")}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &FetchError{Mood: mood, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if int64(len(body)) > maxResponseBytes {
		return nil, &FetchError{Mood: mood, Status: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxResponseBytes)}
	}

	songs, err := decodeSongs(body, mood)
	if err != nil {
		return nil, &FetchError{Mood: mood, Status: resp.StatusCode, Err: err}
	}
	return songs, nil
}

func decodeSongs(body []byte, mood string) ([]music.Song, error) {
	payload := bytes.TrimSpace(body)
	if len(payload) > 0 && payload[0] == '{' {
		var byMood map[string]json.RawMessage
		if err := json.Unmarshal(payload, &byMood); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if list, ok := byMood[mood]; ok && !isNull(list) {
			payload = bytes.TrimSpace(list)
		}
	}

	if isNull(payload) {
		return nil, errors.New("response has no song list")
	}
	var songs []music.Song
	if err := json.Unmarshal(payload, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return songs, nil
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || string(raw) == "null"
}
