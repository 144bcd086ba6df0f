package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/handler"
	"github.com/houseofcompanies/leadmail/internal/metrics"
	"github.com/houseofcompanies/leadmail/internal/middleware"
)

// New creates and configures the HTTP router. m may be nil, in which
// case /metrics is not served.
func New(h *handler.Handler, mw *middleware.Middleware, cfg *config.Config, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Must be set before any Route so subrouters inherit them
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// Request ID first so every log line carries it; Logger wraps Recover
	// so recovered panics are logged as 500s.
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recover)

	// Liveness and readiness
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	if cfg.Metrics.Enabled && m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Lead capture (browser-facing, CORS restricted)
	r.Route("/send-email", func(r chi.Router) {
		r.Use(mw.CORS(cfg.CORS.AllowedOrigins))
		r.Use(mw.RateLimit(middleware.RateLimitConfig{
			Limit:  cfg.RateLimiting.Limit,
			Window: cfg.RateLimiting.Window,
			KeyFn:  middleware.IPKey,
		}))
		r.Post("/", h.SendEmail)
	})

	return r
}
