package services

import (
	"context"
	"sync"

	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
)

// Mock FlightDataProvider
type mockFlightProvider struct {
	availabilityErr      error
	getFlightsFunc       func(ctx context.Context, query providers.FlightQuery) ([]dtos.FeedFlight, error)
	getFlightDetailsFunc func(ctx context.Context, flightID string) (*dtos.FlightDetails, error)
	getAirportFunc       func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error)

	mu           sync.Mutex
	detailsCalls []string
	flightsCalls []providers.FlightQuery
}

func (m *mockFlightProvider) GetFlights(ctx context.Context, query providers.FlightQuery) ([]dtos.FeedFlight, error) {
	m.mu.Lock()
	m.flightsCalls = append(m.flightsCalls, query)
	m.mu.Unlock()
	if m.getFlightsFunc == nil {
		return nil, nil
	}
	return m.getFlightsFunc(ctx, query)
}

func (m *mockFlightProvider) GetFlightDetails(ctx context.Context, flightID string) (*dtos.FlightDetails, error) {
	m.mu.Lock()
	m.detailsCalls = append(m.detailsCalls, flightID)
	m.mu.Unlock()
	if m.getFlightDetailsFunc == nil {
		return nil, nil
	}
	return m.getFlightDetailsFunc(ctx, flightID)
}

func (m *mockFlightProvider) GetAirportDetails(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
	if m.getAirportFunc == nil {
		return nil, nil
	}
	return m.getAirportFunc(ctx, iata, page)
}

func (m *mockFlightProvider) BoundsByPoint(lat, lon, radiusMeters float64) providers.Bounds {
	return providers.BoundsAroundPoint(lat, lon, radiusMeters)
}

func (m *mockFlightProvider) Availability() error {
	return m.availabilityErr
}

func (m *mockFlightProvider) GetProviderType() string {
	return "mock"
}

func detailsWithImage(medium, large string) *dtos.FlightDetails {
	images := &dtos.AircraftImages{}
	if medium != "" {
		images.Medium = []dtos.AircraftImage{{Src: medium}}
	}
	if large != "" {
		images.Large = []dtos.AircraftImage{{Src: large}}
	}
	return &dtos.FlightDetails{Aircraft: &dtos.DetailAircraft{Images: images}}
}

func scheduleOf(flights ...*dtos.ScheduledFlight) *dtos.AirportDetails {
	entries := make([]dtos.ScheduleEntry, 0, len(flights))
	for _, f := range flights {
		entries = append(entries, dtos.ScheduleEntry{Flight: f})
	}
	return &dtos.AirportDetails{
		Airport: &dtos.AirportDetailsBody{
			PluginData: &dtos.AirportPluginData{
				Schedule: &dtos.AirportSchedule{
					Departures: &dtos.ScheduleBoard{Data: entries},
				},
			},
		},
	}
}

func i64(v int64) *int64 { return &v }

func limitOf(n int) *int { return &n }
