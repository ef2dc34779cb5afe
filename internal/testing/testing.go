// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/honkingversion/honk/internal/models"
)

// MockCatalog is a test double for services.Catalog with pluggable responses.
type MockCatalog struct {
	SearchFunc       func(ctx context.Context, term string) ([]models.SearchResult, error)
	ShowsFunc        func(ctx context.Context) ([]models.Show, error)
	ShowFunc         func(ctx context.Context, date string) (*models.Show, error)
	VenuesFunc       func(ctx context.Context) ([]models.Venue, error)
	SongFunc         func(ctx context.Context, slug string) (*models.Song, error)
	PerformancesFunc func(ctx context.Context, slug string) ([]models.Performance, error)
}

func (m *MockCatalog) Search(ctx context.Context, term string) ([]models.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return []models.SearchResult{}, nil
}

func (m *MockCatalog) Shows(ctx context.Context) ([]models.Show, error) {
	if m.ShowsFunc != nil {
		return m.ShowsFunc(ctx)
	}
	return []models.Show{}, nil
}

func (m *MockCatalog) Show(ctx context.Context, date string) (*models.Show, error) {
	if m.ShowFunc != nil {
		return m.ShowFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockCatalog) Venues(ctx context.Context) ([]models.Venue, error) {
	if m.VenuesFunc != nil {
		return m.VenuesFunc(ctx)
	}
	return []models.Venue{}, nil
}

func (m *MockCatalog) Song(ctx context.Context, slug string) (*models.Song, error) {
	if m.SongFunc != nil {
		return m.SongFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockCatalog) SongPerformances(ctx context.Context, slug string) ([]models.Performance, error) {
	if m.PerformancesFunc != nil {
		return m.PerformancesFunc(ctx, slug)
	}
	return []models.Performance{}, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// Ptr returns a pointer to the given value, for literal optional fields.
func Ptr[T any](v T) *T { return &v }

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
