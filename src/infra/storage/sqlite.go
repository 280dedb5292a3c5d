package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contre95/zenify/src/music"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore keeps client preferences in a single SQLite table, one namespace per client.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (or creates) the database at path.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("Local storage database ready", "path", path)
	return &SqliteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS local_storage (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (namespace, key)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

// Scope returns the storage of a single client.
func (s *SqliteStore) Scope(namespace string) music.LocalStorage {
	return &sqliteScope{db: s.db, namespace: namespace}
}

type sqliteScope struct {
	db        *sql.DB
	namespace string
}

func (s *sqliteScope) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE namespace = ? AND key = ?`, s.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *sqliteScope) SetItem(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_storage (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value
	`, s.namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *sqliteScope) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE namespace = ? AND key = ?`, s.namespace, key)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
