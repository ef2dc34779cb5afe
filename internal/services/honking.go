// HonkingVersion API implementation of [Catalog]
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/honkingversion/honk/internal/models"
	"github.com/honkingversion/honk/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// HonkingService implements [Catalog] against the HonkingVersion REST API.
//
// The base URL and HTTP client are injected at construction; nothing here
// reads ambient configuration. Requests are rate limited so an interactive
// session can't hammer the API.
type HonkingService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// HonkingOpts configures a [HonkingService].
type HonkingOpts struct {
	BaseURL    string
	Token      string       // optional bearer token for authenticated reads
	HTTPClient *http.Client // defaults to http.DefaultClient
	RateLimit  float64      // requests per second, defaults to 5
}

// NewHonkingService creates a catalog client for the given API base URL.
func NewHonkingService(opts HonkingOpts) *HonkingService {
	if opts.BaseURL == "" {
		opts.BaseURL = "http://localhost:8000"
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	client := opts.HTTPClient
	if opts.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		client = oauth2.NewClient(ctx, src)
	}

	return &HonkingService{
		baseURL:    opts.BaseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}
}

func (h *HonkingService) Name() string {
	return "HonkingVersion"
}

// get performs a rate-limited GET and returns the raw body for a 2xx status.
func (h *HonkingService) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d for %s", shared.ErrAPIRequest, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// Search queries the search endpoint with the term URL-encoded.
func (h *HonkingService) Search(ctx context.Context, term string) ([]models.SearchResult, error) {
	body, err := h.get(ctx, "/search?q="+url.QueryEscape(term))
	if err != nil {
		return nil, err
	}

	results, err := models.DecodeSearchResults(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}
	return results, nil
}

// Shows retrieves the full show collection.
func (h *HonkingService) Shows(ctx context.Context) ([]models.Show, error) {
	body, err := h.get(ctx, "/shows/")
	if err != nil {
		return nil, err
	}

	shows, err := models.DecodeShows(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}
	return shows, nil
}

// Show retrieves a single show by ISO date.
func (h *HonkingService) Show(ctx context.Context, date string) (*models.Show, error) {
	body, err := h.get(ctx, "/shows/"+url.PathEscape(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrShowNotFound, err)
	}

	shows, err := models.DecodeShows([]byte("[" + string(body) + "]"))
	if err != nil || len(shows) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrBadResponse, date)
	}
	return &shows[0], nil
}

// Venues retrieves venue references.
func (h *HonkingService) Venues(ctx context.Context) ([]models.Venue, error) {
	body, err := h.get(ctx, "/venues/")
	if err != nil {
		return nil, err
	}

	venues, err := models.DecodeVenues(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}
	return venues, nil
}

// Song retrieves a song by slug.
func (h *HonkingService) Song(ctx context.Context, slug string) (*models.Song, error) {
	body, err := h.get(ctx, "/songs/"+url.PathEscape(slug))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSongNotFound, err)
	}

	var song models.Song
	if err := unmarshalStrictName(body, &song); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}
	return &song, nil
}

// SongPerformances retrieves every performance of a song.
func (h *HonkingService) SongPerformances(ctx context.Context, slug string) ([]models.Performance, error) {
	body, err := h.get(ctx, "/songs/"+url.PathEscape(slug)+"/performances")
	if err != nil {
		return nil, err
	}

	performances, err := models.DecodePerformances(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}
	return performances, nil
}

// unmarshalStrictName decodes a song and enforces the one field every view
// depends on.
func unmarshalStrictName(data []byte, song *models.Song) error {
	if err := json.Unmarshal(data, song); err != nil {
		return err
	}
	if song.Name == "" {
		return fmt.Errorf("song has no name")
	}
	return nil
}
