package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/zenify/src/music"
)

func TestLoad_SeedCoversEveryMood(t *testing.T) {
	catalog, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, mood := range music.Moods {
		songs, ok := catalog.Lookup(mood)
		if !ok {
			t.Errorf("seed catalog is missing mood %s", mood)
			continue
		}
		if len(songs) == 0 {
			t.Errorf("seed catalog has no songs for mood %s", mood)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.yaml")
	doc := "chill:\n  - {title: \"Sunny Days\", artist: \"The Vibes\", year: \"2023\"}\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	songs, ok := catalog.Lookup("chill")
	if !ok || len(songs) != 1 {
		t.Fatalf("expected one chill song, got %v", songs)
	}
	if songs[0].Year != "2023" || songs[0].Duration != "" {
		t.Errorf("unexpected song %+v", songs[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":       "happy: [",
		"missing artist": "happy:\n  - {title: \"x\"}\n",
		"uppercase mood": "Happy:\n  - {title: \"x\", artist: \"y\"}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
