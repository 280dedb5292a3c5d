package likes

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/contre95/zenify/src/music"
)

// Recorder observes like toggles.
type Recorder interface {
	ObserveLikeToggle(liked bool)
}

// Manager keeps the set of liked song keys of one client and persists it
// to local storage after every change.
type Manager struct {
	mu       sync.RWMutex
	storage  music.LocalStorage
	liked    map[string]bool
	recorder Recorder
}

// NewManager loads the liked set from storage. A missing or unreadable value
// yields an empty set.
func NewManager(storage music.LocalStorage, recorder Recorder) *Manager {
	return &Manager{
		storage:  storage,
		liked:    load(storage),
		recorder: recorder,
	}
}

func load(storage music.LocalStorage) map[string]bool {
	liked := make(map[string]bool)
	raw, ok, err := storage.GetItem(music.LikedSongsKey)
	if err != nil {
		slog.Warn("Failed to read liked songs, starting empty", "error", err)
		return liked
	}
	if !ok || raw == "" {
		return liked
	}

	var saved map[string]bool
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		slog.Warn("Liked songs are corrupted, starting empty", "error", err)
		if err := storage.RemoveItem(music.LikedSongsKey); err != nil {
			slog.Warn("Failed to remove corrupted liked songs", "error", err)
		}
		return liked
	}
	for key, v := range saved {
		if v {
			liked[key] = true
		}
	}
	slog.Debug("Liked songs loaded", "count", len(liked))
	return liked
}

// Toggle likes songKey if it is not liked, unlikes it otherwise, and persists the whole set.
// It returns whether the song is liked afterwards.
func (m *Manager) Toggle(songKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	liked := !m.liked[songKey]
	if liked {
		m.liked[songKey] = true
	} else {
		delete(m.liked, songKey)
	}
	m.persist()

	if m.recorder != nil {
		m.recorder.ObserveLikeToggle(liked)
	}
	slog.Debug("Like toggled", "key", songKey, "liked", liked)
	return liked
}

// persist writes the full set. Failures are logged and dropped.
func (m *Manager) persist() {
	data, err := json.Marshal(m.liked)
	if err != nil {
		slog.Error("Failed to encode liked songs", "error", err)
		return
	}
	if err := m.storage.SetItem(music.LikedSongsKey, string(data)); err != nil {
		slog.Warn("Failed to persist liked songs", "error", err)
	}
}

// IsLiked reports whether songKey is in the liked set.
func (m *Manager) IsLiked(songKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.liked[songKey]
}

// FilterLiked returns the liked songs of songs, in their original order.
func (m *Manager) FilterLiked(songs []music.Song) []music.Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	filtered := make([]music.Song, 0, len(songs))
	for _, song := range songs {
		if m.liked[song.Key()] {
			filtered = append(filtered, song)
		}
	}
	return filtered
}

// Count returns the number of liked songs.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.liked)
}

// Keys returns the liked song keys in sorted order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.liked))
	for key := range m.liked {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
