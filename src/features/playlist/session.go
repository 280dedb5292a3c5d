package playlist

import (
	"context"
	"log/slog"
	"sync"

	"github.com/contre95/zenify/src/features/likes"
	"github.com/contre95/zenify/src/features/theme"
	"github.com/contre95/zenify/src/music"
)

// Empty state messages.
const (
	NoMoodMessage       = "Select a mood to discover your perfect playlist"
	NoLikedSongsMessage = "No liked songs yet. Start exploring!"
	NoSongsMessage      = "No songs found for this mood"
)

// Session is the view state of one client: the selected mood and its songs,
// plus the client's liked songs and theme.
type Session struct {
	mu            sync.Mutex
	loader        *Loader
	likes         *likes.Manager
	theme         *theme.Manager
	mood          string
	songs         []music.Song
	loading       bool
	advisory      string
	showLikedOnly bool
	generation    uint64
}

// NewSession creates a session around the client's persisted preferences.
func NewSession(loader *Loader, likesManager *likes.Manager, themeManager *theme.Manager) *Session {
	return &Session{
		loader: loader,
		likes:  likesManager,
		theme:  themeManager,
	}
}

// SongView is a song as presented to the client.
type SongView struct {
	music.Song
	Key   string `json:"key"`
	Liked bool   `json:"liked"`
}

// View is a snapshot of the session consumed by the rendering layers.
type View struct {
	Mood          string     `json:"mood"`
	Moods         []string   `json:"moods"`
	Songs         []SongView `json:"songs"`
	IsLoading     bool       `json:"isLoading"`
	Error         string     `json:"error,omitempty"`
	ShowLikedOnly bool       `json:"showLikedOnly"`
	LikedCount    int        `json:"likedCount"`
	Theme         string     `json:"theme"`
	EmptyMessage  string     `json:"emptyMessage,omitempty"`
}

// SelectMood loads the songs of mood. Previous songs and errors are cleared before the
// request is issued. If another selection starts while this one is in flight, this
// result is discarded. An empty mood is ignored.
func (s *Session) SelectMood(ctx context.Context, mood string) View {
	if mood == "" {
		return s.View()
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mood = mood
	s.loading = true
	s.advisory = ""
	s.songs = nil
	s.mu.Unlock()

	result := s.loader.Load(ctx, mood)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		slog.Debug("Discarding superseded playlist load", "mood", mood)
		return s.View()
	}
	s.songs = result.Songs
	s.advisory = result.Advisory
	s.loading = false
	s.mu.Unlock()

	return s.View()
}

// ToggleLike flips the like state of the song with songKey.
func (s *Session) ToggleLike(songKey string) bool {
	return s.likes.Toggle(songKey)
}

// ToggleTheme flips the theme.
func (s *Session) ToggleTheme() theme.Theme {
	return s.theme.Toggle()
}

// ToggleShowLikedOnly flips between all songs and liked songs only.
func (s *Session) ToggleShowLikedOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLikedOnly = !s.showLikedOnly
	return s.showLikedOnly
}

// LikedKeys returns every liked song key of the client.
func (s *Session) LikedKeys() []string {
	return s.likes.Keys()
}

// View returns the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	displayed := s.songs
	if s.showLikedOnly {
		displayed = s.likes.FilterLiked(s.songs)
	}

	view := View{
		Mood:          s.mood,
		Moods:         music.Moods,
		Songs:         make([]SongView, 0, len(displayed)),
		IsLoading:     s.loading,
		Error:         s.advisory,
		ShowLikedOnly: s.showLikedOnly,
		LikedCount:    s.likes.Count(),
		Theme:         string(s.theme.Current()),
	}
	if !s.loading {
		for _, song := range displayed {
			key := song.Key()
			view.Songs = append(view.Songs, SongView{Song: song, Key: key, Liked: s.likes.IsLiked(key)})
		}
		view.EmptyMessage = emptyMessage(s.mood, s.showLikedOnly, len(view.Songs))
	}
	return view
}

func emptyMessage(mood string, likedOnly bool, shown int) string {
	switch {
	case likedOnly && shown == 0:
		return NoLikedSongsMessage
	case mood == "" && !likedOnly:
		return NoMoodMessage
	case mood != "" && shown == 0:
		return NoSongsMessage
	}
	return ""
}
