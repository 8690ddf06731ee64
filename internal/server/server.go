package server

import (
	"arbowling/internal/config"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	cfg      config.Config
	static   fs.FS
}

func New(cfg config.Config, static fs.FS) *Server {
	return &Server{
		handlers: NewHandlers(cfg),
		cfg:      cfg,
		static:   static,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	s.handlers.RegisterRoutes(r)
	if s.static != nil {
		r.Handle("/*", http.FileServer(http.FS(s.static)))
	}
	return r
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	defer s.handlers.Close()

	log.Printf("bowling lane server starting on http://localhost%s", addr)
	log.Printf("Open http://localhost%s/api/create to open a new lane", addr)
	return srv.ListenAndServe()
}
