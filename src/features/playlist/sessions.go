package playlist

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/contre95/zenify/src/features/likes"
	"github.com/contre95/zenify/src/features/theme"
	"github.com/contre95/zenify/src/music"
)

// Session registry defaults.
const (
	DefaultMaxSessions = 10000
	DefaultIdleTimeout = time.Hour
)

// StorageScoper hands out the local storage of one client namespace.
type StorageScoper interface {
	Scope(namespace string) music.LocalStorage
}

type sessionEntry struct {
	session    *Session
	lastAccess atomic.Int64 // unix nanoseconds
}

// Sessions keeps one Session per client namespace. Idle sessions are evicted and
// rebuilt from storage on their next use.
type Sessions struct {
	loader        *Loader
	storage       StorageScoper
	likesRecorder likes.Recorder
	maxSessions   int
	idleTimeout   time.Duration
	sessions      map[string]*sessionEntry
	mu            sync.RWMutex
}

// NewSessions creates a new session registry with the default limits.
func NewSessions(loader *Loader, storage StorageScoper, likesRecorder likes.Recorder) *Sessions {
	return &Sessions{
		loader:        loader,
		storage:       storage,
		likesRecorder: likesRecorder,
		maxSessions:   DefaultMaxSessions,
		idleTimeout:   DefaultIdleTimeout,
		sessions:      make(map[string]*sessionEntry),
	}
}

// Limit sets how many sessions are kept and how long an unused one survives.
// Non-positive values keep the current limit.
func (s *Sessions) Limit(maxSessions int, idleTimeout time.Duration) *Sessions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxSessions > 0 {
		s.maxSessions = maxSessions
	}
	if idleTimeout > 0 {
		s.idleTimeout = idleTimeout
	}
	return s
}

// Get returns the session of namespace, restoring it from storage on first use.
func (s *Sessions) Get(namespace string) *Session {
	now := time.Now().UnixNano()

	s.mu.RLock()
	entry, exists := s.sessions[namespace]
	s.mu.RUnlock()

	if exists {
		entry.lastAccess.Store(now)
		return entry.session
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if entry, exists = s.sessions[namespace]; exists {
		entry.lastAccess.Store(now)
		return entry.session
	}

	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	entry = &sessionEntry{session: s.Detached(namespace)}
	entry.lastAccess.Store(now)
	s.sessions[namespace] = entry
	return entry.session
}

// Detached builds a session for namespace without registering it.
func (s *Sessions) Detached(namespace string) *Session {
	store := s.storage.Scope(namespace)
	return NewSession(s.loader, likes.NewManager(store, s.likesRecorder), theme.Load(store))
}

func (s *Sessions) evictOldestLocked() {
	var oldest string
	var oldestAccess int64
	for namespace, entry := range s.sessions {
		access := entry.lastAccess.Load()
		if oldest == "" || access < oldestAccess {
			oldest, oldestAccess = namespace, access
		}
	}
	if oldest != "" {
		delete(s.sessions, oldest)
		slog.Debug("Evicted least recently used session", "namespace", oldest)
	}
}

// Sweep drops every session unused since now minus the idle timeout and returns how many were dropped.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.idleTimeout).UnixNano()
	evicted := 0
	for namespace, entry := range s.sessions {
		if entry.lastAccess.Load() < cutoff {
			delete(s.sessions, namespace)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Debug("Swept idle sessions", "evicted", evicted, "remaining", len(s.sessions))
	}
	return evicted
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
