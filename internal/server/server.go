package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChicagoDave/raccoonshelter/pkg/cost"
	"github.com/ChicagoDave/raccoonshelter/pkg/spec"
	"github.com/ChicagoDave/raccoonshelter/pkg/validation"
)

// Server serves a read-only view of one computed cost model.
type Server struct {
	spec       *spec.ShelterSpec
	model      *cost.Model
	validation *validation.Report
	port       int
	log        *slog.Logger
}

// New creates a server for the given spec. The model is built once here and
// never changes afterwards.
func New(s *spec.ShelterSpec, port int, log *slog.Logger) *Server {
	model := cost.Build(s)
	return &Server{
		spec:       s,
		model:      model,
		validation: validation.ValidateModel(model),
		port:       port,
		log:        log,
	}
}

// Routes returns the HTTP handler with all routes mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/cost", s.handleCost)
		r.Get("/cost/{category}", s.handleCategory)
		r.Get("/validation", s.handleValidation)
		r.Get("/spec", s.handleSpec)
	})
	return r
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", "http://localhost"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCost(w http.ResponseWriter, _ *http.Request) {
	if !s.validation.Valid {
		writeJSON(w, http.StatusInternalServerError, s.validation)
		return
	}
	writeJSON(w, http.StatusOK, s.model.Report())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "category")
	e, ok := s.model.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown cost category %q", name))
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.validation)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.spec)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
