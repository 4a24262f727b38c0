package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyboard/flightdeck/internal/api"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/middleware"
)

// RegisterRoutes builds the chi router over already initialised dependencies
func RegisterRoutes(deps *api.Dependencies) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RecoverMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	handlers := api.NewHandlers(deps)

	// health check
	r.Get("/healthCheck", handlers.HealthCheckHandler())

	limiter := middleware.NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst)

	RegisterAPIRoutes(r, handlers, limiter)
	// the web front end calls the same handlers under /api
	r.Route("/api", func(apiRouter chi.Router) {
		RegisterAPIRoutes(apiRouter, handlers, limiter)
	})

	if deps.Services.AirportLoader != nil {
		RegisterAdminRoutes(r, handlers, deps)
	} else {
		logging.Info("Admin airport import disabled, no airport database configured")
	}

	logging.Info("Router initialized",
		"cors_origins", deps.Config.CORSOrigins,
		"rate_limit_rps", deps.Config.RateLimitRPS,
	)
	return r
}
