package http

import (
	"context"
	"net/http"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	"github.com/drifty-web/releasepage/pkg/view"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server serving the download page
func NewServer(
	ctx context.Context,
	pageUC interfaces.DownloadPageUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	renderer, err := view.New()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create page renderer")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)

	// Health check
	router.Get("/health", handleHealth)

	// Download page
	downloadHandler := NewDownloadHandler(pageUC, renderer)
	router.Get("/", http.RedirectHandler("/download", http.StatusFound).ServeHTTP)
	router.Get("/download", downloadHandler.Handle)
	router.Handle("/static/*", view.StaticHandler())

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
