package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/contre95/zenify/src/music"
	"gopkg.in/yaml.v3"
)

//go:embed songs.yaml
var seed []byte

// Load builds the catalog. An empty path loads the embedded seed catalog,
// otherwise the YAML file at path is used.
func Load(path string) (*music.Catalog, error) {
	if path == "" {
		slog.Debug("Loading embedded seed catalog")
		return Decode(bytes.NewReader(seed))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	slog.Info("Loading catalog from file", "path", path)
	return Decode(f)
}

// Decode reads a YAML document of the form {mood: [songs]}.
func Decode(r io.Reader) (*music.Catalog, error) {
	var songs map[string][]music.Song
	if err := yaml.NewDecoder(r).Decode(&songs); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	catalog, err := music.NewCatalog(songs)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for _, mood := range catalog.Moods() {
		if !music.IsMood(mood) {
			slog.Warn("Catalog contains a mood the client does not offer", "mood", mood)
		}
	}
	slog.Debug("Catalog loaded", "moods", len(catalog.Moods()), "songs", catalog.Size())
	return catalog, nil
}
