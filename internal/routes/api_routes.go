package routes

import (
	"github.com/go-chi/chi/v5"

	"skyboard/flightdeck/internal/api"
	"skyboard/flightdeck/internal/middleware"
)

// RegisterAPIRoutes registers the public flight data routes on r
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter *middleware.RateLimiter) {
	r.Group(func(public chi.Router) {
		public.Use(limiter.Middleware)

		public.Get("/airports", handlers.AirportsHandler())
		public.Get("/flights", handlers.FlightsHandler())
		public.Get("/flights/{id}", handlers.FlightDetailsHandler())
		public.Get("/flight_details", handlers.FlightDetailsHandler())
		public.Get("/live_departures", handlers.LiveDeparturesHandler())
		public.Get("/search_flights", handlers.SearchFlightsHandler())
	})
}

// RegisterAdminRoutes registers the token protected maintenance routes
func RegisterAdminRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.AuthMiddleware(deps.Services.Tokens))
		admin.Use(middleware.IsAdminMiddleware())

		admin.Post("/airports/import", handlers.ImportAirportsHandler())
	})
}
