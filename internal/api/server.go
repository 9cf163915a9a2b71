// Package api serves rendered ordinances over HTTP for previewing.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/planscheme/internal/vicplan"
)

// Server is the ordinance preview HTTP server.
type Server struct {
	router chi.Router
	client *vicplan.Client
	log    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(client *vicplan.Client, log *slog.Logger) *Server {
	s := &Server{
		client: client,
		log:    log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/ordinance", s.handleOrdinance)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
