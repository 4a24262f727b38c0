package providers

import (
	"context"

	"skyboard/flightdeck/internal/models/dtos"
)

// FlightDataProvider defines the interface for the upstream flight-tracking source
type FlightDataProvider interface {
	// GetFlights lists live flights, optionally scoped to bounds or an airline
	GetFlights(ctx context.Context, query FlightQuery) ([]dtos.FeedFlight, error)

	// GetFlightDetails fetches the detail payload of one flight by its feed id
	GetFlightDetails(ctx context.Context, flightID string) (*dtos.FlightDetails, error)

	// GetAirportDetails fetches airport data including the departures schedule page
	GetAirportDetails(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error)

	// BoundsByPoint computes a square box of radiusMeters half-side around a point
	BoundsByPoint(lat, lon, radiusMeters float64) Bounds

	// Availability returns nil when the provider can serve requests
	Availability() error

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

// FlightQuery scopes a GetFlights call. Zero value lists flights worldwide.
type FlightQuery struct {
	Bounds  *Bounds
	Airline string
}
