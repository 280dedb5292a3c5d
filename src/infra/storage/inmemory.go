package storage

import (
	"sync"

	"github.com/contre95/zenify/src/music"
)

// MemoryPath is the storage path that selects the in-memory store.
const MemoryPath = ":memory:"

// InMemoryStore is a non-durable store. Client state is lost on restart.
type InMemoryStore struct {
	items sync.Map // namespace + "\x00" + key -> string
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Close is a no-op.
func (s *InMemoryStore) Close() error {
	return nil
}

// Scope returns the storage of a single client.
func (s *InMemoryStore) Scope(namespace string) music.LocalStorage {
	return &memoryScope{store: s, prefix: namespace + "\x00"}
}

type memoryScope struct {
	store  *InMemoryStore
	prefix string
}

func (m *memoryScope) GetItem(key string) (string, bool, error) {
	if value, ok := m.store.items.Load(m.prefix + key); ok {
		if s, ok := value.(string); ok {
			return s, true, nil
		}
	}
	return "", false, nil
}

func (m *memoryScope) SetItem(key, value string) error {
	m.store.items.Store(m.prefix+key, value)
	return nil
}

func (m *memoryScope) RemoveItem(key string) error {
	m.store.items.Delete(m.prefix + key)
	return nil
}
