package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/contre95/zenify/src/features/preview"
)

// iTunes Search API response structures
type itunesSearchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []itunesResult `json:"results"`
}

type itunesResult struct {
	TrackName  string `json:"trackName"`
	ArtistName string `json:"artistName"`
	PreviewURL string `json:"previewUrl"`
}

// ITunesProvider implements preview.Provider for the iTunes Search API
type ITunesProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewITunesProvider creates a new iTunes provider
func NewITunesProvider(baseURL string, timeout time.Duration) *ITunesProvider {
	return &ITunesProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindPreview returns the preview URL of the first search hit for term.
func (p *ITunesProvider) FindPreview(ctx context.Context, term string) (string, error) {
	query := url.Values{}
	query.Set("term", term)
	query.Set("media", "music")
	query.Set("limit", "1")
	searchURL := fmt.Sprintf("%s/search?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Zenify/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("iTunes API request failed with status %d", resp.StatusCode)
	}

	var searchResp itunesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Results) == 0 || searchResp.Results[0].PreviewURL == "" {
		return "", preview.ErrNoPreview
	}
	return searchResp.Results[0].PreviewURL, nil
}

func (p *ITunesProvider) Name() string { return "itunes" }
