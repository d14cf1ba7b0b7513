package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/config"
	"github.com/hongminglow/yapekuna/internal/http/handlers"
	"github.com/hongminglow/yapekuna/internal/http/respond"
	"github.com/hongminglow/yapekuna/internal/middleware"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// Options tunes the fixture routes.
type Options struct {
	InitBalance decimal.Decimal
	CORSOrigins []string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Routes builds the handler serving every backend service endpoint from one
// store. The terminal client mounts it in process when running on mocks.
func Routes(store storage.Store, logger zerolog.Logger, opts Options) http.Handler {
	r := mux.NewRouter()
	handlers.NewHealthHandler(time.Now()).Register(r)
	handlers.NewAuthHandler(store, opts.InitBalance, logger).Register(r)
	handlers.NewAccountHandler(store, logger).Register(r)
	handlers.NewMovementsHandler(store, logger, opts.Now).Register(r)
	handlers.NewHistoryHandler(store, logger).Register(r)
	handlers.NewPromotionsHandler(store, logger).Register(r)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, "route_not_found")
	})

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.CORS(origins, middleware.Logging(logger, r))
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger zerolog.Logger) *Server {
	handler := Routes(store, logger, Options{
		InitBalance: cfg.InitBalance,
		CORSOrigins: cfg.CORSOrigins,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
