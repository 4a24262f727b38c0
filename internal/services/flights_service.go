package services

import (
	"context"
	"errors"
	"fmt"

	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
)

type FlightsService struct {
	Provider providers.FlightDataProvider
	Metrics  *metrics.MetricsRegistry
	Workers  int
}

func NewFlightsService(provider providers.FlightDataProvider, m *metrics.MetricsRegistry, workers int) *FlightsService {
	return &FlightsService{
		Provider: provider,
		Metrics:  m,
		Workers:  workers,
	}
}

// ListFlightsRequest scopes a listing. A nil Bounds means worldwide and a nil
// Limit means DefaultFlightLimit. A zero or negative Limit yields no flights.
type ListFlightsRequest struct {
	Bounds *providers.Bounds
	Limit  *int
}

// FlightListing is a listing result. Message is set only for mock data.
type FlightListing struct {
	Flights []dtos.FlightSummary
	Message string
	Mock    bool
}

// ListFlights never fails: any provider problem is answered with mock flights
func (svc *FlightsService) ListFlights(ctx context.Context, req ListFlightsRequest) *FlightListing {
	if err := svc.Provider.Availability(); err != nil {
		return svc.mockListing("provider_unavailable", fmt.Sprintf(constants.MsgMockProviderDown, err.Error()))
	}

	limit := constants.DefaultFlightLimit
	if req.Limit != nil {
		limit = max(*req.Limit, 0)
	}

	feed, err := svc.Provider.GetFlights(ctx, providers.FlightQuery{Bounds: req.Bounds})
	if err != nil {
		var perr *providers.ProviderError
		if !errors.As(err, &perr) {
			return svc.mockListing("exception", fmt.Sprintf(constants.MsgMockException, err.Error()))
		}
		logging.Warn("Flight feed request failed",
			"provider", svc.Provider.GetProviderType(),
			"code", perr.Code,
			"error", err,
		)
		feed = nil
	}
	if len(feed) == 0 {
		return svc.mockListing("empty_feed", constants.MsgMockNoFlights)
	}

	if len(feed) > limit {
		feed = feed[:limit]
	}
	flights := make([]dtos.FlightSummary, 0, len(feed))
	for _, f := range feed {
		flights = append(flights, toFlightSummary(f))
	}

	return &FlightListing{Flights: flights}
}

func (svc *FlightsService) mockListing(reason, message string) *FlightListing {
	svc.Metrics.MockFallback(reason)
	logging.Info("Serving mock flights", "reason", reason, "message", message)
	return &FlightListing{
		Flights: mockFlights(),
		Message: message,
		Mock:    true,
	}
}

func toFlightSummary(f dtos.FeedFlight) dtos.FlightSummary {
	return dtos.FlightSummary{
		ID:           f.ID,
		Callsign:     orDefault(f.Callsign, constants.ValueNotAvailable),
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Heading:      f.Heading,
		Altitude:     f.Altitude,
		GroundSpeed:  f.GroundSpeed,
		Speed:        f.GroundSpeed,
		Airline:      orDefault(f.AirlineIATA, constants.ValueUnknown),
		AirlineICAO:  f.AirlineICAO,
		Aircraft:     orDefault(f.AircraftCode, constants.ValueNotAvailable),
		Origin:       orDefault(f.OriginIATA, constants.ValueNotAvailable),
		Destination:  orDefault(f.DestinationIATA, constants.ValueNotAvailable),
		FlightNumber: orDefault(f.Number, constants.ValueNotAvailable),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// FlightDetailsRequest identifies a flight plus optional hints for image fallback
type FlightDetailsRequest struct {
	FlightID     string
	AirlineICAO  string
	AircraftCode string
}

// FlightDetails merges the primary lookup with the image fallback chain.
// Only an unavailable provider is reported as an error.
func (svc *FlightsService) FlightDetails(ctx context.Context, req FlightDetailsRequest) (*dtos.FlightDetailsData, *ImageResolution, error) {
	if err := svc.Provider.Availability(); err != nil {
		return nil, nil, err
	}

	data := &dtos.FlightDetailsData{}
	resolver := &imageResolver{
		provider: svc.Provider,
		metrics:  svc.Metrics,
		workers:  svc.Workers,
	}
	trace := resolver.resolve(ctx, req, data)
	data.ImageURL = trace.ImageURL

	logging.Debug("Flight image resolved",
		"flight_id", req.FlightID,
		"source", trace.Source,
		"stages", trace.Summary(),
	)
	return data, trace, nil
}
