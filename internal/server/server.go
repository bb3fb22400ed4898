package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	// Registers the generated OpenAPI document served under /swagger
	_ "github.com/osse101/ColorRush_Go/docs"
	"github.com/osse101/ColorRush_Go/internal/config"
	"github.com/osse101/ColorRush_Go/internal/handler"
	"github.com/osse101/ColorRush_Go/internal/metrics"
	"github.com/osse101/ColorRush_Go/internal/session"
	"github.com/osse101/ColorRush_Go/internal/sse"
	"github.com/osse101/ColorRush_Go/internal/ws"
)

// Dependencies are the services the HTTP surface is built on
type Dependencies struct {
	Sessions session.Service
	Health   handler.HealthChecker
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, deps),
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
		// No WriteTimeout: event streams and sockets stay open for the whole game
	}
	// Shutdown waits for active requests; stopping the hub ends open streams
	// and closes hijacked sockets, which Shutdown does not track.
	if deps.Hub != nil {
		srv.RegisterOnShutdown(deps.Hub.Stop)
	}
	return &Server{httpServer: srv}
}

// NewRouter builds the routed handler with the full middleware stack
func NewRouter(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewRateDetector(clockwork.NewRealClock(), RateLimitRequests, RateLimitWindow)

	r.Use(newCORS(cfg.CORSAllowedOrigins).Handler)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Health, deps.Sessions))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	sessions := handler.NewSessionHandler(deps.Sessions)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rules", sessions.HandleRules())

		r.Post("/sessions", sessions.HandleCreate())
		r.Route("/sessions/{"+handler.URLParamSessionID+"}", func(r chi.Router) {
			r.Use(handler.SessionContext)

			r.Get("/", sessions.HandleGet())
			r.Delete("/", sessions.HandleDelete())
			r.Post("/select", sessions.HandleSelect())
			r.Post("/pause", sessions.HandlePause())
			r.Post("/reset", sessions.HandleReset())
			r.Post("/autoplay", sessions.HandleAutoplay())

			r.Get("/events", sse.Handler(deps.Hub, deps.Sessions))
			r.Handle("/ws", ws.NewHandler(deps.Hub, deps.Sessions, cfg.CORSAllowedOrigins))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID, "Location"},
		MaxAge:         corsMaxAgeSeconds,
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
