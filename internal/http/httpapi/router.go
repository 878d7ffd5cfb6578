package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Goptar/gopgang-api/internal/http/handlers"
	"github.com/Goptar/gopgang-api/internal/infra"
	"github.com/Goptar/gopgang-api/internal/middleware"
)

// NewRouter wires every HTTP endpoint: the authenticated ingest route, the
// public leaderboard and Roblox proxy reads, health, and metrics.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		chimw.Recoverer,
	)

	// Game server write path: shared secret plus a per-IP limiter.
	r.Route("/ingame", func(r chi.Router) {
		r.Use(
			middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
			middleware.APIKey(cfg.IngestAPIKey),
		)
		r.Post("/donation", app.IngestDonation)
	})

	// Public read API, CORS-enabled for web dashboards.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
		r.Get("/api/top-raised", app.TopRaised)
		r.Get("/api/top-donated", app.TopDonated)
		r.Get("/universe-id", app.UniverseID)
		r.Get("/universe-game-passes", app.GamePasses)
	})

	r.Get("/v1/healthz", app.Health)
	r.Method(stdhttp.MethodGet, "/metrics", promhttp.Handler())

	return r
}
