package theme

import (
	"log/slog"
	"sync"

	"github.com/contre95/zenify/src/music"
)

// Theme is the client's color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Manager holds the theme of one client.
type Manager struct {
	mu      sync.Mutex
	storage music.LocalStorage
	current Theme
}

// Load reads the persisted theme, defaulting to Light for missing or unknown values.
func Load(storage music.LocalStorage) *Manager {
	m := &Manager{storage: storage, current: Light}
	raw, ok, err := storage.GetItem(music.ThemeKey)
	if err != nil {
		slog.Warn("Failed to read theme, using light", "error", err)
		return m
	}
	if ok && (Theme(raw) == Light || Theme(raw) == Dark) {
		m.current = Theme(raw)
	}
	return m
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Toggle flips the theme and persists it. A failed write is logged only.
func (m *Manager) Toggle() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == Light {
		m.current = Dark
	} else {
		m.current = Light
	}
	if err := m.storage.SetItem(music.ThemeKey, string(m.current)); err != nil {
		slog.Warn("Failed to persist theme", "theme", m.current, "error", err)
	}
	return m.current
}
