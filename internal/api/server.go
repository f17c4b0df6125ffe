package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/simcheck/internal/auth"
	"github.com/dgallion1/simcheck/internal/config"
	"github.com/dgallion1/simcheck/internal/pipeline"
)

// Server is the HTTP API server for simcheck.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	users        *auth.Store
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, users *auth.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		users:        users,
		log:          log,
		cfg:          cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/check", s.handleCheck)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(TokenAuth(s.users))

		r.Post("/api/check", s.handleCheckAsync)
		r.Get("/api/check/{jobID}/status", s.handleCheckStatus)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
