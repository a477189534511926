package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/libsearch/internal/core/ports/driving"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("rest: search service is required")

// Ports aggregates the driving ports the HTTP API calls.
type Ports struct {
	Search  driving.SearchService
	Catalog driving.CatalogService
}

// Options configures the HTTP server.
type Options struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64

	// RateBurst is the number of requests allowed above RateLimit at once.
	RateBurst int

	// CORS enables permissive cross-origin headers.
	CORS bool

	// Version is reported by /health.
	Version string
}

// Server is the HTTP API server.
type Server struct {
	ports  *Ports
	opts   Options
	router *mux.Router
}

// NewServer creates the HTTP API with its routes registered.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if ports == nil || ports.Search == nil {
		return nil, ErrMissingSearchService
	}

	s := &Server{
		ports:  ports,
		opts:   opts,
		router: mux.NewRouter(),
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.NotFoundHandler = http.HandlerFunc(s.notFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	// Routes live on the root router; a PathPrefix subrouter reports a
	// method mismatch as 404 instead of reaching MethodNotAllowedHandler.
	s.router.HandleFunc("/api/search", s.search).Methods(http.MethodGet)
	s.router.HandleFunc("/api/catalog", s.catalog).Methods(http.MethodGet)
	s.router.HandleFunc("/api/documents/{domain}/{key:.+}", s.document).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
}

// Mount routes every request under prefix to h.
func (s *Server) Mount(prefix string, h http.Handler) {
	s.router.PathPrefix(prefix).Handler(h)
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router

	if s.opts.RateLimit > 0 {
		h = rateLimitMiddleware(s.opts.RateLimit, s.opts.RateBurst)(h)
	}
	if s.opts.CORS {
		h = corsMiddleware(h)
	}
	h = accessLogMiddleware(h)
	h = requestIDMiddleware(h)

	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	l := logger.Get()
	l.Info().Str("address", s.opts.Addr).Msg("starting HTTP API")

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
