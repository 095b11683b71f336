// Package server exposes the route graph over HTTP. The graph is built once
// at startup and never mutated, so handlers can query it concurrently without
// locking.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

type Server struct {
	graph  *domain.Graph
	source string
	logger *slog.Logger
}

// New loads the route table once and prepares a server around the resulting
// graph.
func New(ctx context.Context, rs ports.RouteSource, sourceName string, logger *slog.Logger) (*Server, error) {
	routes, err := rs.LoadRoutes(ctx)
	if err != nil {
		return nil, err
	}

	g, err := domain.BuildGraph(routes)
	if err != nil {
		return nil, err
	}

	return &Server{graph: g, source: sourceName, logger: logger}, nil
}

// Handler wires the chi router.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/stations", s.handleStations)
	r.Get("/api/route", s.handleRoute)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"source":    s.source,
		"stations":  s.graph.StationCount(),
		"routes":    s.graph.RouteCount(),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"stations": s.graph.Stations(),
	})
}

// handleRoute answers GET /api/route?from=A&to=B. An unknown station is a 404
// (the client named a resource that does not exist); a known-but-disconnected
// pair is a regular 200 with reachable=false and reason no_path.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error": "both 'from' and 'to' query parameters are required",
		})
		return
	}

	result, err := domain.FindShortestRoute(s.graph, from, to)
	if err != nil {
		s.logger.Error("route query failed", "from", from, "to", to, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "internal error",
		})
		return
	}

	status := http.StatusOK
	if !result.Reachable && result.Reason == domain.UnknownStation {
		status = http.StatusNotFound
	}
	respondJSON(w, status, result)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
