package catalog

import (
	"log/slog"
	"strings"

	"github.com/contre95/zenify/src/music"
)

// Recorder observes catalog lookups.
type Recorder interface {
	ObserveLookup(mood string, found bool)
}

// Service is the domain service for the catalog feature.
type Service struct {
	catalog  *music.Catalog
	recorder Recorder
}

// NewService creates a new catalog service. recorder may be nil.
func NewService(catalog *music.Catalog, recorder Recorder) *Service {
	return &Service{
		catalog:  catalog,
		recorder: recorder,
	}
}

// ListAll returns the entire catalog.
func (s *Service) ListAll() map[string][]music.Song {
	slog.Debug("ListAll service called")
	return s.catalog.All()
}

// ListByMood returns the songs for mood. The mood is lowercased but not trimmed,
// so " happy" is not found.
func (s *Service) ListByMood(mood string) ([]music.Song, error) {
	key := strings.ToLower(mood)
	slog.Debug("ListByMood service called", "mood", mood, "key", key)
	songs, ok := s.catalog.Lookup(key)
	if s.recorder != nil {
		s.recorder.ObserveLookup(key, ok)
	}
	if !ok {
		slog.Debug("Mood not in catalog", "key", key)
		return nil, music.ErrMoodNotFound
	}
	slog.Debug("ListByMood completed", "key", key, "count", len(songs))
	return songs, nil
}
