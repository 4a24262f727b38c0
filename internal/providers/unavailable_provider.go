package providers

import (
	"context"

	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/models/dtos"
)

// UnavailableProvider stands in when the live provider cannot be constructed.
// Every call fails with the construction reason.
type UnavailableProvider struct {
	reason string
}

// NewUnavailableProvider creates a provider that always reports reason
func NewUnavailableProvider(reason string) *UnavailableProvider {
	return &UnavailableProvider{reason: reason}
}

func (p *UnavailableProvider) GetProviderType() string {
	return "unavailable"
}

func (p *UnavailableProvider) Availability() error {
	return &ProviderError{
		Code:    constants.ErrCodeProviderUnavailable,
		Message: p.reason,
		Err:     ErrProviderUnavailable,
	}
}

func (p *UnavailableProvider) BoundsByPoint(lat, lon, radiusMeters float64) Bounds {
	return BoundsAroundPoint(lat, lon, radiusMeters)
}

func (p *UnavailableProvider) GetFlights(ctx context.Context, query FlightQuery) ([]dtos.FeedFlight, error) {
	return nil, p.Availability()
}

func (p *UnavailableProvider) GetFlightDetails(ctx context.Context, flightID string) (*dtos.FlightDetails, error) {
	return nil, p.Availability()
}

func (p *UnavailableProvider) GetAirportDetails(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
	return nil, p.Availability()
}
