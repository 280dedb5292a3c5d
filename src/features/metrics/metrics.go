package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collectors holds the application's Prometheus collectors. It satisfies the
// recorder interfaces of the catalog, playlist and likes features.
type Collectors struct {
	registry       *prometheus.Registry
	catalogLookups *prometheus.CounterVec
	playlistLoads  *prometheus.CounterVec
	likeToggles    *prometheus.CounterVec
	previews       *prometheus.CounterVec
}

// NewCollectors creates the collectors on a fresh registry.
func NewCollectors() *Collectors {
	registry := prometheus.NewRegistry()
	c := &Collectors{
		registry: registry,
		catalogLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenify",
			Name:      "catalog_lookups_total",
			Help:      "Catalog lookups by mood and result.",
		}, []string{"mood", "found"}),
		playlistLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenify",
			Name:      "playlist_loads_total",
			Help:      "Playlist loads by outcome (live, empty, fallback).",
		}, []string{"outcome"}),
		likeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenify",
			Name:      "like_toggles_total",
			Help:      "Like toggles by resulting state.",
		}, []string{"liked"}),
		previews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenify",
			Name:      "preview_lookups_total",
			Help:      "Preview lookups by result.",
		}, []string{"found"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.catalogLookups,
		c.playlistLoads,
		c.likeToggles,
		c.previews,
	)
	return c
}

// ObserveLookup counts a catalog lookup. Unknown moods share one label value
// so arbitrary paths cannot grow the series count.
func (c *Collectors) ObserveLookup(mood string, found bool) {
	if !found {
		mood = "unknown"
	}
	c.catalogLookups.WithLabelValues(mood, strconv.FormatBool(found)).Inc()
}

// ObservePlaylistLoad counts a playlist load outcome.
func (c *Collectors) ObservePlaylistLoad(outcome string) {
	c.playlistLoads.WithLabelValues(outcome).Inc()
}

// ObserveLikeToggle counts a like toggle.
func (c *Collectors) ObserveLikeToggle(liked bool) {
	c.likeToggles.WithLabelValues(strconv.FormatBool(liked)).Inc()
}

// ObservePreview counts a preview lookup.
func (c *Collectors) ObservePreview(found bool) {
	c.previews.WithLabelValues(strconv.FormatBool(found)).Inc()
}
