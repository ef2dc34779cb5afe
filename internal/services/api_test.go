package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	helpers "github.com/honkingversion/honk/internal/testing"
)

func TestAPIService(t *testing.T) {
	ctx := context.Background()

	t.Run("NewAPIService", func(t *testing.T) {
		t.Run("applies defaults", func(t *testing.T) {
			svc := NewAPIService("", nil)
			if svc.baseURL != "http://localhost:8000" {
				t.Errorf("unexpected base URL %q", svc.baseURL)
			}
			if svc.httpClient != http.DefaultClient {
				t.Error("expected default HTTP client")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("returns a JSON response", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"count": 2}`))
			}))
			defer srv.Close()

			resp, err := NewAPIService(srv.URL, nil).Get(ctx, "/shows/")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
			if !resp.IsJSON {
				t.Error("expected IsJSON to be set")
			}
			data, ok := resp.JSONData.(map[string]any)
			if !ok || data["count"] != float64(2) {
				t.Errorf("unexpected JSON data %+v", resp.JSONData)
			}
		})

		t.Run("keeps non-JSON bodies raw", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("plain text"))
			}))
			defer srv.Close()

			resp, err := NewAPIService(srv.URL, nil).Get(ctx, "/")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON {
				t.Error("expected IsJSON to be false")
			}
			if string(resp.Body) != "plain text" {
				t.Errorf("unexpected body %q", resp.Body)
			}
		})

		t.Run("does not treat HTTP errors as failures", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"missing"}`, http.StatusNotFound)
			}))
			defer srv.Close()

			resp, err := NewAPIService(srv.URL, nil).Get(ctx, "/nope")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		})

		t.Run("wraps transport failures", func(t *testing.T) {
			client := &http.Client{Transport: helpers.NewMockRoundTripper(nil, io.ErrUnexpectedEOF)}
			_, err := NewAPIService("http://localhost:1", client).Get(ctx, "/")
			if err == nil {
				t.Error("expected an error")
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type %q", ct)
			}
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		}))
		defer srv.Close()

		resp, err := NewAPIService(srv.URL, nil).Post(ctx, "/echo", []byte(`{"ok":true}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"ok":true}` {
			t.Errorf("unexpected body %q", resp.Body)
		}
	})
}
