package storage

import (
	"path/filepath"
	"testing"

	"github.com/contre95/zenify/src/music"
)

type scoper interface {
	Scope(namespace string) music.LocalStorage
}

func exerciseStore(t *testing.T, store scoper) {
	t.Helper()
	alice := store.Scope("alice")
	bob := store.Scope("bob")

	if _, ok, err := alice.GetItem(music.ThemeKey); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := alice.SetItem(music.ThemeKey, "dark"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := alice.SetItem(music.ThemeKey, "light"); err != nil {
		t.Fatalf("expected no error on overwrite, got %v", err)
	}
	value, ok, err := alice.GetItem(music.ThemeKey)
	if err != nil || !ok || value != "light" {
		t.Errorf("expected light, got %q ok=%v err=%v", value, ok, err)
	}

	if _, ok, _ := bob.GetItem(music.ThemeKey); ok {
		t.Error("expected namespaces to be isolated")
	}

	if err := alice.RemoveItem(music.ThemeKey); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok, _ := alice.GetItem(music.ThemeKey); ok {
		t.Error("expected key to be removed")
	}
}

func TestSqliteStore(t *testing.T) {
	store, err := NewSqliteStore(filepath.Join(t.TempDir(), "storage.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()
	exerciseStore(t, store)
}

func TestSqliteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	store, err := NewSqliteStore(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Scope("alice").SetItem(music.LikedSongsKey, `{"a":true}`); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	store.Close()

	reopened, err := NewSqliteStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Scope("alice").GetItem(music.LikedSongsKey)
	if err != nil || !ok || value != `{"a":true}` {
		t.Errorf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestInMemoryStore(t *testing.T) {
	exerciseStore(t, NewInMemoryStore())
}

func TestOpen_SelectsBackend(t *testing.T) {
	memory, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := memory.(*InMemoryStore); !ok {
		t.Errorf("expected in-memory store, got %T", memory)
	}
	exerciseStore(t, memory)

	sqlite, err := Open(filepath.Join(t.TempDir(), "zenify.db"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer sqlite.Close()
	if _, ok := sqlite.(*SqliteStore); !ok {
		t.Errorf("expected sqlite store, got %T", sqlite)
	}
}
