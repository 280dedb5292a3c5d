package music

import (
	"fmt"
	"strings"
)

// Song represents a single catalog entry.
type Song struct {
	Title    string `json:"title" yaml:"title"`
	Artist   string `json:"artist" yaml:"artist"`
	Year     string `json:"year,omitempty" yaml:"year,omitempty"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Key returns the identifier used for like tracking.
// Two songs sharing title and artist share a key.
func (s Song) Key() string {
	return s.Title + "-" + s.Artist
}

// Validate validates the song fields.
func (s *Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("song title cannot be empty")
	}
	if len(s.Title) > 500 {
		return fmt.Errorf("title cannot exceed 500 characters, got %d: title -> %s", len(s.Title), s.Title)
	}
	if strings.TrimSpace(s.Artist) == "" {
		return fmt.Errorf("song artist cannot be empty: title -> %s", s.Title)
	}
	if len(s.Artist) > 500 {
		return fmt.Errorf("artist cannot exceed 500 characters, got %d: artist -> %s", len(s.Artist), s.Artist)
	}
	return nil
}
