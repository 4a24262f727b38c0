package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
)

func scheduled(id, number, callsign, dest string, dep, arr int64) *dtos.ScheduledFlight {
	f := &dtos.ScheduledFlight{
		Identification: &dtos.DetailIdentification{ID: id, Callsign: callsign, Number: dtos.FlightNumber{Default: number}},
		Airport: &dtos.AirportPair{
			Destination: &dtos.AirportRef{Name: dest, Code: &dtos.AirportCode{IATA: dest}},
		},
		Time: &dtos.ScheduleTimes{Scheduled: &dtos.TimePair{}},
	}
	if dep != 0 {
		f.Time.Scheduled.Departure = i64(dep)
	}
	if arr != 0 {
		f.Time.Scheduled.Arrival = i64(arr)
	}
	return f
}

func newTestDepartureService(p providers.FlightDataProvider) *DepartureService {
	svc := NewDepartureService(p, 5, time.UTC)
	svc.newID = func() string { return "generated-id" }
	return svc
}

func TestLiveDepartures_MapsSchedule(t *testing.T) {
	full := scheduled("d1", "LA3418", "TAM3418", "POA", 1700000000, 1700005400)
	full.Airline = &dtos.AirlineInfo{Name: "LATAM", Code: &dtos.AirlineCode{IATA: "LA", ICAO: "TAM"}}
	full.Aircraft = &dtos.ScheduleAircraft{Model: &dtos.AircraftModel{Text: "Airbus A320"}}
	full.Status = &dtos.StatusInfo{Text: "Departed 14:20"}

	bare := scheduled("", "AD4050", "N/A", "CNF", 0, 0)

	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			assert.Equal(t, "GRU", iata)
			assert.Equal(t, 1, page)
			return scheduleOf(full, bare), nil
		},
	}
	svc := newTestDepartureService(provider)

	deps, err := svc.LiveDepartures(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, deps, 2)

	d := deps[0]
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, "TAM3418", d.Callsign)
	assert.Equal(t, "GRU", d.Origin)
	assert.Equal(t, "POA", d.Destination)
	assert.Equal(t, "LATAM", d.Airline)
	require.NotNil(t, d.AirlineICAO)
	assert.Equal(t, "TAM", *d.AirlineICAO)
	require.NotNil(t, d.AirlineLogo)
	assert.Equal(t, "https://pics.avs.io/200/200/LA.png", *d.AirlineLogo)
	assert.Equal(t, "Airbus A320", d.Aircraft)
	assert.Equal(t, "Departed 14:20", d.Status)
	assert.Equal(t, "1h 30m", d.Duration)
	assert.Equal(t, "22:13", d.DepartureTime)
	assert.Equal(t, "23:43", d.ArrivalTime)

	b := deps[1]
	assert.Equal(t, "generated-id", b.ID)
	assert.Equal(t, "AD4050", b.Callsign)
	assert.Equal(t, "Unknown", b.Airline)
	require.NotNil(t, b.AirlineICAO)
	// the greedy designator match keeps three characters, used as ICAO as-is
	assert.Equal(t, "AD4", *b.AirlineICAO)
	assert.Equal(t, "https://pics.avs.io/200/200/AD4.png", *b.AirlineLogo)
	assert.Equal(t, "N/A", b.Aircraft)
	assert.Equal(t, "Scheduled", b.Status)
	assert.Equal(t, "N/A", b.Duration)
	assert.Equal(t, "TBD", b.DepartureTime)
	assert.Equal(t, "TBD", b.ArrivalTime)
}

func TestLiveDepartures_ThreeCharPrefixIsICAO(t *testing.T) {
	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			return scheduleOf(scheduled("x", "TAM8084", "", "MIA", 0, 0)), nil
		},
	}
	svc := newTestDepartureService(provider)

	deps, err := svc.LiveDepartures(context.Background(), "GRU")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "TAM", *deps[0].AirlineICAO)
}

func TestLiveDepartures_TwoCharPrefixMapsToICAO(t *testing.T) {
	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			return scheduleOf(scheduled("x", "AD4", "", "CNF", 0, 0)), nil
		},
	}

	deps, err := newTestDepartureService(provider).LiveDepartures(context.Background(), "GRU")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	require.NotNil(t, deps[0].AirlineICAO)
	assert.Equal(t, "AZU", *deps[0].AirlineICAO)
	require.NotNil(t, deps[0].AirlineLogo)
	assert.Equal(t, "https://pics.avs.io/200/200/AZU.png", *deps[0].AirlineLogo)
}

func TestLiveDepartures_CapsAtSix(t *testing.T) {
	flights := make([]*dtos.ScheduledFlight, 0, 9)
	for i := 0; i < 9; i++ {
		flights = append(flights, scheduled("id", "G31000", "", "SDU", 0, 0))
	}
	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			return scheduleOf(flights...), nil
		},
	}

	deps, err := newTestDepartureService(provider).LiveDepartures(context.Background(), "GRU")
	require.NoError(t, err)
	assert.Len(t, deps, 6)
}

func TestLiveDepartures_NearbyFallback(t *testing.T) {
	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			return nil, errors.New("schedule down")
		},
		getFlightsFunc: func(ctx context.Context, q providers.FlightQuery) ([]dtos.FeedFlight, error) {
			return []dtos.FeedFlight{
				{ID: "n1", OriginIATA: "GRU", DestinationIATA: "SSA", AirlineIATA: "G3", Number: "G31500", OnGround: 0},
				{ID: "n2", OriginIATA: "CGH", DestinationIATA: "SDU"},
				{ID: "n3", OriginIATA: "GRU", Callsign: "PTB123", OnGround: 1},
			}, nil
		},
	}

	deps, err := newTestDepartureService(provider).LiveDepartures(context.Background(), "GRU")
	require.NoError(t, err)
	require.Len(t, deps, 2)

	require.Len(t, provider.flightsCalls, 1)
	require.NotNil(t, provider.flightsCalls[0].Bounds)
	bounds := provider.flightsCalls[0].Bounds
	assert.InDelta(t, -23.072, bounds.North, 0.01)
	assert.InDelta(t, -23.792, bounds.South, 0.01)

	assert.Equal(t, "En Route", deps[0].Status)
	assert.Equal(t, "Now", deps[0].DepartureTime)
	assert.Equal(t, "TBD", deps[0].ArrivalTime)
	assert.Equal(t, "https://pics.avs.io/200/200/G3.png", *deps[0].AirlineLogo)

	assert.Equal(t, "On Ground", deps[1].Status)
	assert.Equal(t, "PTB123", deps[1].FlightNumber)
	assert.Equal(t, "N/A", deps[1].Destination)
	assert.Equal(t, "Unknown", deps[1].Airline)
	assert.Nil(t, deps[1].AirlineLogo)
}

func TestLiveDepartures_NearbyFallbackFailure(t *testing.T) {
	provider := &mockFlightProvider{
		getFlightsFunc: func(ctx context.Context, q providers.FlightQuery) ([]dtos.FeedFlight, error) {
			return nil, errors.New("feed down")
		},
	}

	deps, err := newTestDepartureService(provider).LiveDepartures(context.Background(), "GRU")
	require.Error(t, err)
	assert.Nil(t, deps)
}

func TestSearchRoute_FiltersAndDeduplicates(t *testing.T) {
	var calls atomic.Int32
	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			calls.Add(1)
			assert.Equal(t, "GRU", iata)
			switch page {
			case 1:
				return scheduleOf(
					scheduled("a", "LA3000", "", "POA", 1700000000, 0),
					scheduled("b", "G31100", "", "SSA", 1700000100, 0),
				), nil
			case 2:
				return nil, errors.New("page failed")
			case 3:
				// same flight listed again on a later page
				return scheduleOf(
					scheduled("a2", "LA3000", "", "POA", 1700000000, 0),
					scheduled("c", "LA3002", "", "POA", 1700003600, 0),
				), nil
			}
			return scheduleOf(), nil
		},
	}

	flights, err := newTestDepartureService(provider).SearchRoute(context.Background(), RouteSearchRequest{
		Origin: "GRU - São Paulo",
		Dest:   "POA - Porto Alegre",
		Date:   "2001-01-01", // matches no flight; results are kept
	})
	require.NoError(t, err)

	assert.EqualValues(t, 6, calls.Load())
	require.Len(t, flights, 2)
	assert.Equal(t, "a", *flights[0].ID)
	assert.Equal(t, "LA3000", *flights[0].FlightNumber)
	assert.Equal(t, int64(1700000000), *flights[0].Time.Scheduled)
	assert.Equal(t, "c", *flights[1].ID)
}

func TestSearchRoute_LogoOnlyFromIATA(t *testing.T) {
	withIATA := scheduled("a", "LA3000", "", "POA", 1, 0)
	withIATA.Airline = &dtos.AirlineInfo{Name: "LATAM", Code: &dtos.AirlineCode{IATA: "LA", ICAO: "TAM"}}
	icaoOnly := scheduled("b", "XX1", "", "POA", 2, 0)
	icaoOnly.Airline = &dtos.AirlineInfo{Name: "Other", Code: &dtos.AirlineCode{ICAO: "OTH"}}

	provider := &mockFlightProvider{
		getAirportFunc: func(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
			if page == 1 {
				return scheduleOf(withIATA, icaoOnly), nil
			}
			return nil, nil
		},
	}

	flights, err := newTestDepartureService(provider).SearchRoute(context.Background(), RouteSearchRequest{Origin: "GRU", Dest: "POA"})
	require.NoError(t, err)
	require.Len(t, flights, 2)

	assert.Equal(t, "https://pics.avs.io/200/200/LA.png", *flights[0].Airline.Logo)
	assert.Equal(t, "LA", *flights[0].Airline.Code)
	assert.Nil(t, flights[1].Airline.Logo)
	assert.Nil(t, flights[1].Airline.Code)
}

func TestRouteCode(t *testing.T) {
	assert.Equal(t, "GRU", routeCode("GRU - São Paulo"))
	assert.Equal(t, "GRU", routeCode("GRU"))
	assert.Equal(t, "", routeCode(""))
}
