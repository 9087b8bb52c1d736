// Package server exposes the chatbot engine over HTTP: the chat endpoint,
// FAQ read/replace, health, the rendered FAQ page and static assets.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apmshow/apm-chatbot/internal/engine"
	"github.com/apmshow/apm-chatbot/internal/faqstore"
)

// Config holds server configuration.
type Config struct {
	Port        int
	ServiceName string
	StaticDir   string   // directory with widget assets
	StaticAllow []string // glob allowlist for static serving
	AllowAll    bool     // allow all CORS origins
}

// Server wires the router, the engine and the FAQ store together.
type Server struct {
	cfg        Config
	engine     *engine.Engine
	store      *faqstore.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given engine and FAQ store.
func New(cfg Config, eng *engine.Engine, store *faqstore.Store) *Server {
	s := &Server{
		cfg:    cfg,
		engine: eng,
		store:  store,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	r.Post("/api/chat", s.handleChat)
	r.Get("/api/faq", s.handleGetFAQ)
	r.Post("/api/update-faq", s.handleUpdateFAQ)
	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleIndex)
	r.Get("/*", s.handleStatic)

	return r
}

// Router returns the chi router so additional routes can be mounted (the
// widget websocket registers here).
func (s *Server) Router() chi.Router { return s.router }

// Engine returns the chatbot engine.
func (s *Server) Engine() *engine.Engine { return s.engine }

// Store returns the FAQ store.
func (s *Server) Store() *faqstore.Store { return s.store }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: %s listening on %s", s.cfg.ServiceName, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
