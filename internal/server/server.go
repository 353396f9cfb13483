package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/handler"
	"github.com/osse101/FishingBot_Go/internal/metrics"
	"github.com/osse101/FishingBot_Go/internal/user"
)

// Config holds the HTTP settings
type Config struct {
	Port           int
	APIKey         string
	AdminKey       string
	TrustedProxies []string
	Version        string
}

// Services are the collaborators the routes call into
type Services struct {
	User    user.Service
	Catalog catalog.Service
	DB      handler.Pinger
}

// Server is the HTTP front of the bot
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and the underlying http.Server
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter wires middleware and routes
func NewRouter(cfg Config, svc Services) http.Handler {
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(svc.User))
			r.Post("/signin", handler.HandleSignIn(svc.User))
			r.Get("/currency", handler.HandleGetCurrency(svc.User))
			r.Get("/accessory", handler.HandleGetAccessory(svc.User))
			r.Get("/titles", handler.HandleGetTitles(svc.User))
			r.Post("/title/use", handler.HandleUseTitle(svc.User))
			r.Get("/taxes", handler.HandleGetTaxRecords(svc.User))
		})
		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc.User))

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminKey, cfg.TrustedProxies, detector))

			r.Post("/user/coins", handler.HandleModifyCoins(svc.User))

			r.Route("/templates/{kind}", func(r chi.Router) {
				r.Get("/", handler.HandleListTemplates(svc.Catalog))
				r.Post("/", handler.HandleCreateTemplate(svc.Catalog))
				r.Get("/{id}", handler.HandleGetTemplate(svc.Catalog))
				r.Put("/{id}", handler.HandleUpdateTemplate(svc.Catalog))
				r.Delete("/{id}", handler.HandleDeleteTemplate(svc.Catalog))
			})

			r.Route("/gacha", func(r chi.Router) {
				r.Get("/", handler.HandleListPools(svc.Catalog))
				r.Post("/", handler.HandleCreatePool(svc.Catalog))
				r.Put("/items/{itemID}", handler.HandleUpdatePoolItem(svc.Catalog))
				r.Delete("/items/{itemID}", handler.HandleDeletePoolItem(svc.Catalog))
				r.Get("/{poolID}", handler.HandleGetPool(svc.Catalog))
				r.Put("/{poolID}", handler.HandleUpdatePool(svc.Catalog))
				r.Delete("/{poolID}", handler.HandleDeletePool(svc.Catalog))
				r.Post("/{poolID}/items", handler.HandleAddPoolItem(svc.Catalog))
			})
		})
	})

	return r
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
