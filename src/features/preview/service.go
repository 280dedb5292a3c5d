package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoPreview is returned when no preview exists for a song.
var ErrNoPreview = errors.New("no preview available")

// ErrDisabled is returned when previews are turned off.
var ErrDisabled = errors.New("previews are disabled")

// Provider finds a playable preview URL for a search term.
type Provider interface {
	FindPreview(ctx context.Context, term string) (string, error)
	Name() string
}

// Recorder observes preview lookups.
type Recorder interface {
	ObservePreview(found bool)
}

// Service looks up short audio previews for catalog songs.
type Service struct {
	provider Provider
	enabled  bool
	recorder Recorder
}

// NewService creates a new preview service.
func NewService(provider Provider, enabled bool, recorder Recorder) *Service {
	return &Service{
		provider: provider,
		enabled:  enabled && provider != nil,
		recorder: recorder,
	}
}

// Enabled reports whether previews can be looked up.
func (s *Service) Enabled() bool {
	return s.enabled
}

// GetPreview returns the preview URL for the song identified by title and artist.
func (s *Service) GetPreview(ctx context.Context, title, artist string) (string, error) {
	if !s.enabled {
		return "", ErrDisabled
	}
	term := strings.TrimSpace(title + " " + artist)
	if term == "" {
		return "", fmt.Errorf("a title or artist is required")
	}

	slog.Debug("GetPreview service called", "term", term, "provider", s.provider.Name())
	previewURL, err := s.provider.FindPreview(ctx, term)
	if s.recorder != nil {
		s.recorder.ObservePreview(err == nil)
	}
	if err != nil {
		slog.Debug("Preview lookup failed", "term", term, "error", err)
		return "", err
	}
	return previewURL, nil
}
