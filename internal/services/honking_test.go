package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/honkingversion/honk/internal/shared"
)

func honkingServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHonkingService(t *testing.T) {
	ctx := context.Background()

	t.Run("Search", func(t *testing.T) {
		t.Run("decodes results", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/search?q=harpua": `[{"type":"song","id":1,"title":"Harpua","subtitle":"23 shows","url":"/songs/harpua"}]`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			results, err := svc.Search(ctx, "harpua")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 1 || results[0].Title != "Harpua" {
				t.Errorf("unexpected results %+v", results)
			}
		})

		t.Run("escapes the query term", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/search?q=you+enjoy": `[]`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			results, err := svc.Search(ctx, "you enjoy")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 0 {
				t.Errorf("expected empty results, got %+v", results)
			}
		})

		t.Run("wraps non-2xx statuses", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusBadGateway)
			}))
			defer srv.Close()
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			_, err := svc.Search(ctx, "harpua")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("wraps malformed bodies", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/search?q=harpua": `{"not":"a list"}`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			_, err := svc.Search(ctx, "harpua")
			if !errors.Is(err, shared.ErrBadResponse) {
				t.Errorf("expected ErrBadResponse, got %v", err)
			}
		})

		t.Run("rejects results missing required fields", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/search?q=harpua": `[{"type":"song","id":1,"title":"","url":"/songs/harpua"}]`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			_, err := svc.Search(ctx, "harpua")
			if !errors.Is(err, shared.ErrBadResponse) {
				t.Errorf("expected ErrBadResponse, got %v", err)
			}
		})
	})

	t.Run("Shows", func(t *testing.T) {
		srv := honkingServer(t, map[string]string{
			"/shows/": `[{"id":1,"date":"2019-06-21","venue":"Red Rocks Amphitheatre","location":"Morrison, CO"}]`,
		})
		svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

		shows, err := svc.Shows(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(shows) != 1 || shows[0].Venue != "Red Rocks Amphitheatre" {
			t.Errorf("unexpected shows %+v", shows)
		}
	})

	t.Run("Show", func(t *testing.T) {
		t.Run("fetches a single show by date", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/shows/2019-06-21": `{"id":1,"date":"2019-06-21","venue":"Red Rocks Amphitheatre","location":"Morrison, CO"}`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			show, err := svc.Show(ctx, "2019-06-21")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if show.Venue != "Red Rocks Amphitheatre" {
				t.Errorf("unexpected show %+v", show)
			}
		})

		t.Run("wraps missing shows", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			_, err := svc.Show(ctx, "1999-01-01")
			if !errors.Is(err, shared.ErrShowNotFound) {
				t.Errorf("expected ErrShowNotFound, got %v", err)
			}
		})
	})

	t.Run("Venues", func(t *testing.T) {
		srv := honkingServer(t, map[string]string{
			"/venues/": `[{"name":"Madison Square Garden","slug":"madison-square-garden"}]`,
		})
		svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

		venues, err := svc.Venues(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(venues) != 1 || venues[0].Slug != "madison-square-garden" {
			t.Errorf("unexpected venues %+v", venues)
		}
	})

	t.Run("Song", func(t *testing.T) {
		t.Run("fetches by slug", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/songs/harpua": `{"id":1,"name":"Harpua","slug":"harpua"}`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			song, err := svc.Song(ctx, "harpua")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if song.Name != "Harpua" {
				t.Errorf("unexpected song %+v", song)
			}
		})

		t.Run("rejects songs without a name", func(t *testing.T) {
			srv := honkingServer(t, map[string]string{
				"/songs/harpua": `{"id":1,"slug":"harpua"}`,
			})
			svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

			_, err := svc.Song(ctx, "harpua")
			if !errors.Is(err, shared.ErrBadResponse) {
				t.Errorf("expected ErrBadResponse, got %v", err)
			}
		})
	})

	t.Run("SongPerformances", func(t *testing.T) {
		srv := honkingServer(t, map[string]string{
			"/songs/harpua/performances": `[{"id":1,"position":5,"set_number":2,"song":{"id":1,"name":"Harpua","slug":"harpua"},"show":{"id":9,"date":"2019-06-21","venue":"Red Rocks Amphitheatre","location":"Morrison, CO"},"vote_count":40,"avg_rating":8.7}]`,
		})
		svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL})

		performances, err := svc.SongPerformances(ctx, "harpua")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(performances) != 1 {
			t.Fatalf("expected one performance, got %d", len(performances))
		}
		if performances[0].Rating() != 8.7 {
			t.Errorf("unexpected rating %v", performances[0].Rating())
		}
	})

	t.Run("bearer token is sent when configured", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()
		svc := NewHonkingService(HonkingOpts{BaseURL: srv.URL, Token: "sekrit"})

		if _, err := svc.Shows(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotAuth != "Bearer sekrit" {
			t.Errorf("expected bearer header, got %q", gotAuth)
		}
	})
}
