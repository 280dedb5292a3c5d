package catalog

import (
	"errors"
	"testing"

	"github.com/contre95/zenify/src/music"
)

// mockRecorder records lookups in memory.
type mockRecorder struct {
	found    map[string]int
	notFound map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{found: map[string]int{}, notFound: map[string]int{}}
}

func (m *mockRecorder) ObserveLookup(mood string, found bool) {
	if found {
		m.found[mood]++
		return
	}
	m.notFound[mood]++
}

func fixtureCatalog(t *testing.T) *music.Catalog {
	t.Helper()
	songs := map[string][]music.Song{}
	for _, mood := range music.Moods {
		songs[mood] = []music.Song{
			{Title: mood + " one", Artist: "Artist A", Year: "2020", Duration: "3:00"},
			{Title: mood + " two", Artist: "Artist B"},
		}
	}
	catalog, err := music.NewCatalog(songs)
	if err != nil {
		t.Fatalf("failed to build fixture catalog: %v", err)
	}
	return catalog
}

func TestListByMood_EveryMood(t *testing.T) {
	service := NewService(fixtureCatalog(t), nil)
	for _, mood := range music.Moods {
		songs, err := service.ListByMood(mood)
		if err != nil {
			t.Fatalf("expected no error for %s, got %v", mood, err)
		}
		if len(songs) != 2 {
			t.Fatalf("expected 2 songs for %s, got %d", mood, len(songs))
		}
		if songs[0].Title != mood+" one" || songs[1].Title != mood+" two" {
			t.Errorf("expected fixture order for %s, got %v", mood, songs)
		}
	}
}

func TestListByMood_CaseInsensitive(t *testing.T) {
	service := NewService(fixtureCatalog(t), nil)
	upper, err := service.ListByMood("Happy")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	lower, err := service.ListByMood("happy")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(upper) != len(lower) {
		t.Fatalf("expected identical results, got %d and %d songs", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("song %d differs: %+v vs %+v", i, upper[i], lower[i])
		}
	}
}

func TestListByMood_NotFound(t *testing.T) {
	recorder := newMockRecorder()
	service := NewService(fixtureCatalog(t), recorder)

	for _, mood := range []string{"unknown-mood", "", " happy", "happy "} {
		_, err := service.ListByMood(mood)
		if !errors.Is(err, music.ErrMoodNotFound) {
			t.Errorf("expected ErrMoodNotFound for %q, got %v", mood, err)
			continue
		}
		if err.Error() != "mood not found" {
			t.Errorf("expected message %q, got %q", "mood not found", err.Error())
		}
	}
	if recorder.notFound["unknown-mood"] != 1 {
		t.Errorf("expected one not-found observation, got %d", recorder.notFound["unknown-mood"])
	}
}

func TestListByMood_RecordsNormalizedKey(t *testing.T) {
	recorder := newMockRecorder()
	service := NewService(fixtureCatalog(t), recorder)
	service.ListByMood("CHILL")
	if recorder.found["chill"] != 1 {
		t.Errorf("expected lookup recorded under chill, got %v", recorder.found)
	}
}

func TestListAll(t *testing.T) {
	service := NewService(fixtureCatalog(t), nil)
	all := service.ListAll()
	if len(all) != len(music.Moods) {
		t.Errorf("expected %d moods, got %d", len(music.Moods), len(all))
	}
}
