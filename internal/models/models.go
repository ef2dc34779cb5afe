// package models defines the data model for the HonkingVersion catalog client
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResultType enumerates the entity kinds the search endpoint can return.
type ResultType string

const (
	ResultSong ResultType = "song"
	ResultShow ResultType = "show"
	ResultUser ResultType = "user"
)

// SearchResult represents a single match returned by the remote search endpoint.
//
// Lifetime is one query/response cycle; results are discarded on the next
// query or on navigation.
type SearchResult struct {
	Type     ResultType `json:"type"`
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	URL      string     `json:"url"`
}

// Validate checks that the result has a known type, a title, and a URL.
func (r SearchResult) Validate() error {
	switch r.Type {
	case ResultSong, ResultShow, ResultUser:
	default:
		return fmt.Errorf("unknown result type %q", r.Type)
	}
	if r.Title == "" {
		return fmt.Errorf("search result %d has no title", r.ID)
	}
	if r.URL == "" {
		return fmt.Errorf("search result %d has no url", r.ID)
	}
	return nil
}

// Show represents a single live performance date.
type Show struct {
	ID       int    `json:"id"`
	Date     string `json:"date"` // ISO date, YYYY-MM-DD
	Venue    string `json:"venue"`
	Location string `json:"location"`
	Notes    string `json:"notes,omitempty"`
}

// Validate checks required fields and that Date parses as an ISO date.
func (s Show) Validate() error {
	if s.Date == "" {
		return fmt.Errorf("show %d has no date", s.ID)
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("show %d has malformed date %q: %w", s.ID, s.Date, err)
	}
	if s.Venue == "" {
		return fmt.Errorf("show %d has no venue", s.ID)
	}
	return nil
}

// Year returns the 4-digit year prefix of the show date.
func (s Show) Year() string {
	if len(s.Date) < 4 {
		return ""
	}
	return s.Date[:4]
}

// Venue represents a venue reference used to populate filter controls.
type Venue struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SongRef is the song subset embedded in a performance record.
type SongRef struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	IsCover        bool   `json:"is_cover"`
	OriginalArtist string `json:"original_artist,omitempty"`
}

// ShowRef is the show subset embedded in a performance record.
type ShowRef struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Venue    string `json:"venue"`
	Location string `json:"location"`
}

// Performance represents a single rendition of a song at a show.
//
// AvgRating is a pointer because the API omits it for unrated performances;
// sorting treats a missing rating as zero.
type Performance struct {
	ID        int      `json:"id"`
	Position  int      `json:"position"`
	SetNumber int      `json:"set_number"`
	Notes     string   `json:"notes,omitempty"`
	Song      SongRef  `json:"song"`
	Show      ShowRef  `json:"show"`
	VoteCount int      `json:"vote_count"`
	AvgRating *float64 `json:"avg_rating,omitempty"`
}

// Rating returns the average rating, or 0 when the performance is unrated.
func (p Performance) Rating() float64 {
	if p.AvgRating == nil {
		return 0
	}
	return *p.AvgRating
}

// Rated reports whether the performance has any rating at all.
func (p Performance) Rated() bool { return p.AvgRating != nil }

// Song represents a catalog song entry.
type Song struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Artist         string   `json:"artist"`
	Slug           string   `json:"slug"`
	DebutDate      string   `json:"debut_date,omitempty"`
	TimesPlayed    int      `json:"times_played"`
	AvgRating      *float64 `json:"avg_rating,omitempty"`
	IsCover        bool     `json:"is_cover"`
	OriginalArtist string   `json:"original_artist,omitempty"`
}

// DecodeSearchResults parses a search response body, rejecting entries that
// fail validation rather than trusting the wire shape.
func DecodeSearchResults(data []byte) ([]SearchResult, error) {
	var results []SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	for i, r := range results {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("search result %d invalid: %w", i, err)
		}
	}
	return results, nil
}

// DecodeShows parses a shows response body, validating each record at the boundary.
func DecodeShows(data []byte) ([]Show, error) {
	var shows []Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, fmt.Errorf("failed to decode shows: %w", err)
	}
	for i, s := range shows {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("show %d invalid: %w", i, err)
		}
	}
	return shows, nil
}

// DecodeVenues parses a venues response body.
func DecodeVenues(data []byte) ([]Venue, error) {
	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	for i, v := range venues {
		if v.Name == "" {
			return nil, fmt.Errorf("venue %d has no name", i)
		}
	}
	return venues, nil
}

// DecodePerformances parses a performances response body.
func DecodePerformances(data []byte) ([]Performance, error) {
	var performances []Performance
	if err := json.Unmarshal(data, &performances); err != nil {
		return nil, fmt.Errorf("failed to decode performances: %w", err)
	}
	return performances, nil
}
