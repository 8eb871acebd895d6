package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ndanilin/homepage/internal/articles"
	"github.com/ndanilin/homepage/internal/background"
	"github.com/ndanilin/homepage/internal/visits"
)

// Config holds server configuration.
type Config struct {
	Port      int
	SiteTitle string
	AssetsDir string // directory the background images are served from
	AssetBase string // URL prefix pages use to reference them
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Server is the homepage HTTP server: article pages, the background API
// and websocket feed, visit counts, and static assets.
type Server struct {
	cfg        Config
	registry   *articles.Registry
	store      *background.Store
	hub        *background.Hub
	visits     *visits.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies. visitStore may be nil, in
// which case page views are not recorded.
func New(cfg Config, registry *articles.Registry, store *background.Store, hub *background.Hub, visitStore *visits.Store) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		store:    store,
		hub:      hub,
		visits:   visitStore,
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
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Background state API + websocket feed.
	background.RegisterRoutes(r, s.store, s.hub)

	// Visit counts.
	if s.visits != nil {
		visits.RegisterRoutes(r, s.visits)
	}

	// Static assets: stylesheet from the binary, images from disk.
	r.Get("/static/style.css", handleCSS)
	if s.cfg.AssetsDir != "" {
		fs := http.StripPrefix("/static/img/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
		r.Handle("/static/img/*", fs)
	}

	// Pages: / redirects to the default article, every registered article
	// gets its own route.
	r.Get("/", s.handleIndex)
	for _, a := range s.registry.All() {
		r.Get("/"+a.Slug, s.handleArticle(a.Slug))
	}
	r.NotFound(s.handleNotFound)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("homepage listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
