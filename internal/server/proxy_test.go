package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/honkingversion/honk/internal/models"
	"github.com/honkingversion/honk/internal/shared"
	helpers "github.com/honkingversion/honk/internal/testing"
)

func proxyServer(t *testing.T, catalog *helpers.MockCatalog) *httptest.Server {
	t.Helper()

	router := NewBasicRouter()
	router.Handler(NewProxyHandler(catalog, shared.NewLogger(io.Discard)))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestProxyHandler(t *testing.T) {
	t.Run("serves the cached catalog routes", func(t *testing.T) {
		catalog := &helpers.MockCatalog{
			ShowsFunc: func(ctx context.Context) ([]models.Show, error) {
				return []models.Show{{ID: 1, Date: "2019-06-21", Venue: "Red Rocks Amphitheatre", Location: "Morrison, CO"}}, nil
			},
			VenuesFunc: func(ctx context.Context) ([]models.Venue, error) {
				return []models.Venue{{Name: "The Gorge", Slug: "the-gorge"}}, nil
			},
		}
		srv := proxyServer(t, catalog)

		t.Run("shows", func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/shows")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type %q", ct)
			}

			var shows []models.Show
			if err := json.NewDecoder(resp.Body).Decode(&shows); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(shows) != 1 || shows[0].Venue != "Red Rocks Amphitheatre" {
				t.Errorf("unexpected shows %+v", shows)
			}
		})

		t.Run("venues", func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/venues")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			var venues []models.Venue
			if err := json.NewDecoder(resp.Body).Decode(&venues); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(venues) != 1 || venues[0].Slug != "the-gorge" {
				t.Errorf("unexpected venues %+v", venues)
			}
		})
	})

	t.Run("search", func(t *testing.T) {
		t.Run("forwards terms of two or more characters", func(t *testing.T) {
			var gotTerm string
			catalog := &helpers.MockCatalog{
				SearchFunc: func(ctx context.Context, term string) ([]models.SearchResult, error) {
					gotTerm = term
					return []models.SearchResult{{Type: models.ResultSong, ID: 1, Title: "Harpua", URL: "/songs/harpua"}}, nil
				},
			}
			srv := proxyServer(t, catalog)

			resp, err := http.Get(srv.URL + "/api/search?q=harpua")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if gotTerm != "harpua" {
				t.Errorf("expected term forwarded, got %q", gotTerm)
			}
			var results []models.SearchResult
			if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(results) != 1 {
				t.Errorf("unexpected results %+v", results)
			}
		})

		t.Run("short-circuits short terms without an upstream call", func(t *testing.T) {
			called := false
			catalog := &helpers.MockCatalog{
				SearchFunc: func(ctx context.Context, term string) ([]models.SearchResult, error) {
					called = true
					return nil, nil
				},
			}
			srv := proxyServer(t, catalog)

			resp, err := http.Get(srv.URL + "/api/search?q=h")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if called {
				t.Error("expected no upstream call for a one-character term")
			}
			body, _ := io.ReadAll(resp.Body)
			if strings.TrimSpace(string(body)) != "[]" {
				t.Errorf("expected an empty array, got %q", body)
			}
		})
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		srv := proxyServer(t, &helpers.MockCatalog{})

		resp, err := http.Post(srv.URL+"/api/shows", "application/json", bytes.NewReader(nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", resp.StatusCode)
		}
	})

	t.Run("maps upstream failures to 502", func(t *testing.T) {
		catalog := &helpers.MockCatalog{
			ShowsFunc: func(ctx context.Context) ([]models.Show, error) {
				return nil, errors.New("connection refused")
			},
		}
		srv := proxyServer(t, catalog)

		resp, err := http.Get(srv.URL + "/api/shows")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown paths 404", func(t *testing.T) {
		srv := proxyServer(t, &helpers.MockCatalog{})

		resp, err := http.Get(srv.URL + "/api/songs")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle enforces the method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		srv := httptest.NewServer(router)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/ping")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}

		resp, err = http.Post(srv.URL+"/ping", "text/plain", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", resp.StatusCode)
		}
	})

	t.Run("middleware wraps in registration order", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mw("outer"), mw("inner"))
		router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		srv := httptest.NewServer(router)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
			t.Errorf("unexpected middleware order %v", order)
		}
	})

	t.Run("LoggingMiddleware records the status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := shared.NewLogger(&buf)

		router := NewBasicRouter()
		router.Use(LoggingMiddleware(logger))
		router.Handle(http.MethodGet, "/missing", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		srv := httptest.NewServer(router)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/missing")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if !strings.Contains(buf.String(), "418") {
			t.Errorf("expected logged status 418, got %q", buf.String())
		}
	})
}
