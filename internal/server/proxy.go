package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/honkingversion/honk/internal/services"
	"github.com/honkingversion/honk/internal/shared"
)

// ProxyHandler exposes the catalog API on same-origin /api/* routes.
//
// Browsers and tools on the local machine can hit these routes without CORS
// or TLS configuration; the handler forwards to the upstream catalog and
// relays its JSON unchanged in shape.
type ProxyHandler struct {
	catalog services.Catalog
	logger  *log.Logger
}

// NewProxyHandler creates a proxy handler over the given catalog client.
func NewProxyHandler(catalog services.Catalog, logger *log.Logger) *ProxyHandler {
	return &ProxyHandler{catalog: catalog, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ProxyHandler) Routes() []string {
	return []string{"/api/shows", "/api/search", "/api/venues"}
}

// ServeHTTP forwards the request to the matching catalog operation.
func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/shows":
		shows, err := h.catalog.Shows(r.Context())
		h.respond(w, shows, err)
	case "/api/venues":
		venues, err := h.catalog.Venues(r.Context())
		h.respond(w, venues, err)
	case "/api/search":
		term := r.URL.Query().Get("q")
		if len(term) < 2 {
			h.respond(w, []any{}, nil)
			return
		}
		results, err := h.catalog.Search(r.Context(), term)
		h.respond(w, results, err)
	default:
		http.NotFound(w, r)
	}
}

func (h *ProxyHandler) respond(w http.ResponseWriter, data any, err error) {
	if err != nil {
		h.logger.Error("upstream request failed", "error", err)
		http.Error(w, "upstream request failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// LoggingMiddleware tags each request with a generated ID and logs its
// duration and status.
func LoggingMiddleware(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := shared.GenerateID()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			logger.Info("request",
				"id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Addr formats a host/port pair for http.Server.
func Addr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
