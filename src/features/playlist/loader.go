package playlist

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/contre95/zenify/src/music"
)

// DefaultSampleSize caps how many songs are shown for one mood.
const DefaultSampleSize = 50

// DemoAdvisory is shown next to the demo songs when the catalog cannot be reached.
const DemoAdvisory = "Using demo songs."

// demoSongs are shown when the catalog cannot be reached.
var demoSongs = []music.Song{
	{Title: "Sunny Days", Artist: "The Vibes", Year: "2023", Duration: "3:45"},
	{Title: "Feel Good", Artist: "Happy Hearts", Year: "2022", Duration: "4:12"},
	{Title: "Pure Joy", Artist: "Mood Makers", Year: "2024", Duration: "3:28"},
	{Title: "Bright Moments", Artist: "Soul Collective", Year: "2023", Duration: "3:55"},
	{Title: "Endless Summer", Artist: "Beach Waves", Year: "2023", Duration: "4:01"},
}

// DemoSongs returns a copy of the fallback list.
func DemoSongs() []music.Song {
	return slices.Clone(demoSongs)
}

// SongFetcher retrieves the songs of a mood from the catalog.
type SongFetcher interface {
	FetchSongs(ctx context.Context, mood string) ([]music.Song, error)
}

// Recorder observes load outcomes.
type Recorder interface {
	ObservePlaylistLoad(outcome string)
}

// Load outcomes.
const (
	OutcomeLive     = "live"
	OutcomeEmpty    = "empty"
	OutcomeFallback = "fallback"
)

// Result is the outcome of one load. Advisory is non-empty when the demo songs were used.
type Result struct {
	Songs    []music.Song
	Advisory string
	Outcome  string
}

// Loader fetches a mood's songs and applies the display sampling policy.
type Loader struct {
	fetcher    SongFetcher
	sampleSize int
	shuffle    func(n int, swap func(i, j int))
	recorder   Recorder
}

// NewLoader creates a new loader. A sampleSize below 1 uses DefaultSampleSize.
func NewLoader(fetcher SongFetcher, sampleSize int, recorder Recorder) *Loader {
	if sampleSize < 1 {
		sampleSize = DefaultSampleSize
	}
	return &Loader{
		fetcher:    fetcher,
		sampleSize: sampleSize,
		shuffle:    rand.Shuffle,
		recorder:   recorder,
	}
}

// Load fetches the songs for mood, shuffles them and keeps at most the sample size.
// Any fetch failure yields the demo songs with DemoAdvisory. Load never fails.
func (l *Loader) Load(ctx context.Context, mood string) Result {
	songs, err := l.fetcher.FetchSongs(ctx, mood)
	if err != nil {
		slog.Warn("Failed to fetch songs, using demo songs", "mood", mood, "error", err)
		l.observe(OutcomeFallback)
		return Result{Songs: DemoSongs(), Advisory: DemoAdvisory, Outcome: OutcomeFallback}
	}

	sampled := Sample(songs, l.sampleSize, l.shuffle)
	outcome := OutcomeLive
	if len(sampled) == 0 {
		outcome = OutcomeEmpty
	}
	l.observe(outcome)
	slog.Debug("Songs loaded", "mood", mood, "fetched", len(songs), "shown", len(sampled))
	return Result{Songs: sampled, Outcome: outcome}
}

func (l *Loader) observe(outcome string) {
	if l.recorder != nil {
		l.recorder.ObservePlaylistLoad(outcome)
	}
}

// Sample returns a shuffled copy of songs truncated to at most limit entries.
func Sample(songs []music.Song, limit int, shuffle func(n int, swap func(i, j int))) []music.Song {
	sampled := slices.Clone(songs)
	if sampled == nil {
		sampled = []music.Song{}
	}
	shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	if len(sampled) > limit {
		sampled = sampled[:limit]
	}
	return sampled
}
