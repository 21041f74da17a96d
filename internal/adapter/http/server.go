// Package http serves the generated map documents alongside the operational
// endpoints (health, readiness, metrics).
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether a generation run has completed.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the map documents plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	mapsDir    string
	mapFiles   map[string]bool
}

// NewServer creates the HTTP server. mapFiles is the allowlist of servable
// document names; anything else under /maps/ is a 404.
func NewServer(addr, mapsDir string, mapFiles []string, ready ReadinessChecker, logger *slog.Logger) *Server {
	allowed := make(map[string]bool, len(mapFiles))
	for _, f := range mapFiles {
		allowed[f] = true
	}

	s := &Server{
		logger:   logger,
		mapsDir:  mapsDir,
		mapFiles: allowed,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", handleReady(ready)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/maps/{file}", s.handleMap).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleIndex lists the servable maps.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	maps := make([]string, 0, len(s.mapFiles))
	for f := range s.mapFiles {
		maps = append(maps, "/maps/"+f)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"maps": maps})
}

// handleMap serves one generated document. The allowlist keeps traversal
// attempts and stray files in the output directory unreachable.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	if !s.mapFiles[file] {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown map"})
		return
	}
	http.ServeFile(w, r, filepath.Join(s.mapsDir, file))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
