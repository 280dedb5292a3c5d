package music

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrMoodNotFound is returned when a mood has no entry in the catalog.
var ErrMoodNotFound = errors.New("mood not found")

// Moods is the set of moods offered to listeners, in display order.
var Moods = []string{
	"happy",
	"sad",
	"energetic",
	"romantic",
	"chill",
	"motivational",
	"healing",
}

// IsMood reports whether mood belongs to the enumerated set.
func IsMood(mood string) bool {
	return slices.Contains(Moods, mood)
}

// Catalog is an immutable mapping from mood to an ordered list of songs.
// It is built once at startup and shared read-only between requests.
type Catalog struct {
	songs map[string][]Song
}

// NewCatalog builds a catalog from a mood -> songs mapping. The input is copied.
func NewCatalog(songs map[string][]Song) (*Catalog, error) {
	c := &Catalog{songs: make(map[string][]Song, len(songs))}
	for mood, list := range songs {
		if mood == "" {
			return nil, fmt.Errorf("catalog mood cannot be empty")
		}
		if mood != strings.ToLower(mood) {
			return nil, fmt.Errorf("catalog mood must be lowercase: mood -> %s", mood)
		}
		for i := range list {
			if err := list[i].Validate(); err != nil {
				return nil, fmt.Errorf("invalid song %d in mood %s: %w", i, mood, err)
			}
		}
		c.songs[mood] = slices.Clone(list)
	}
	return c, nil
}

// Lookup returns a copy of the songs stored under mood. The key is used as given.
func (c *Catalog) Lookup(mood string) ([]Song, bool) {
	list, ok := c.songs[mood]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// All returns a copy of the whole catalog.
func (c *Catalog) All() map[string][]Song {
	all := make(map[string][]Song, len(c.songs))
	for mood, list := range c.songs {
		all[mood] = slices.Clone(list)
	}
	return all
}

// Moods returns the catalog's moods in sorted order.
func (c *Catalog) Moods() []string {
	return slices.Sorted(maps.Keys(c.songs))
}

// Size returns the total number of songs across all moods.
func (c *Catalog) Size() int {
	total := 0
	for _, list := range c.songs {
		total += len(list)
	}
	return total
}
