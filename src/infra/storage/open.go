package storage

import (
	"log/slog"

	"github.com/contre95/zenify/src/music"
)

// Store hands out per-client local storage.
type Store interface {
	Scope(namespace string) music.LocalStorage
	Close() error
}

// Open returns the in-memory store for MemoryPath and a SQLite store otherwise.
func Open(path string) (Store, error) {
	if path == MemoryPath {
		slog.Warn("Client state is kept in memory and will not survive a restart")
		return NewInMemoryStore(), nil
	}
	return NewSqliteStore(path)
}
