package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
)

type DepartureService struct {
	provider providers.FlightDataProvider
	workers  int
	location *time.Location
	newID    func() string
}

func NewDepartureService(provider providers.FlightDataProvider, workers int, loc *time.Location) *DepartureService {
	if loc == nil {
		loc = time.UTC
	}
	return &DepartureService{
		provider: provider,
		workers:  workers,
		location: loc,
		newID:    uuid.NewString,
	}
}

// LiveDepartures lists up to six departures from airport. When the schedule
// is empty or unreachable, flights currently near the home airport are used.
func (s *DepartureService) LiveDepartures(ctx context.Context, airport string) ([]dtos.Departure, error) {
	if err := s.provider.Availability(); err != nil {
		return nil, err
	}
	if airport == "" {
		airport = constants.DefaultAirport
	}

	departures := make([]dtos.Departure, 0, constants.DeparturesLimit)

	details, err := s.provider.GetAirportDetails(ctx, airport, 1)
	if err != nil {
		logging.Warn("Airport schedule unavailable, falling back to nearby flights",
			"airport", airport,
			"error", err,
		)
	}
	for _, entry := range details.DepartureBoard() {
		if entry.Flight == nil {
			continue
		}
		departures = append(departures, s.scheduledDeparture(entry.Flight, airport))
	}

	if len(departures) == 0 {
		nearby, err := s.nearbyDepartures(ctx, airport)
		if err != nil {
			return nil, err
		}
		departures = nearby
	}

	if len(departures) > constants.DeparturesLimit {
		departures = departures[:constants.DeparturesLimit]
	}
	return departures, nil
}

func (s *DepartureService) scheduledDeparture(f *dtos.ScheduledFlight, airport string) dtos.Departure {
	var id, callsign, number string
	if f.Identification != nil {
		id = f.Identification.ID
		callsign = f.Identification.Callsign
		number = f.Identification.Number.Default
	}
	number = orDefault(number, constants.ValueNotAvailable)
	if callsign == "" || callsign == constants.ValueNotAvailable {
		callsign = number
	}

	var airlineName, airlineIATA, airlineICAO string
	if f.Airline != nil {
		airlineName = f.Airline.Name
		if f.Airline.Code != nil {
			airlineIATA = f.Airline.Code.IATA
			airlineICAO = f.Airline.Code.ICAO
		}
	}

	prefix := ""
	if number != constants.ValueNotAvailable {
		prefix = common.FlightNumberPrefix(number)
	}
	if airlineICAO == "" {
		switch len(prefix) {
		case 3:
			airlineICAO = prefix
		case 2:
			airlineICAO = constants.IATAToICAO[prefix]
		}
	}
	logoCode := common.FirstNonEmpty(airlineIATA, airlineICAO, prefix)

	status := ""
	if f.Status != nil {
		status = f.Status.Text
	}

	aircraft := ""
	if f.Aircraft != nil && f.Aircraft.Model != nil {
		aircraft = f.Aircraft.Model.Text
	}

	dest := ""
	if f.Airport != nil && f.Airport.Destination != nil && f.Airport.Destination.Code != nil {
		dest = f.Airport.Destination.Code.IATA
	}

	var dep, arr *int64
	if f.Time != nil && f.Time.Scheduled != nil {
		dep = f.Time.Scheduled.Departure
		arr = f.Time.Scheduled.Arrival
	}
	duration := constants.ValueNotAvailable
	if hasTime(dep) && hasTime(arr) {
		duration = common.FormatScheduleDuration(*dep, *arr)
	}

	if id == "" {
		id = s.newID()
	}

	return dtos.Departure{
		ID:            id,
		Callsign:      callsign,
		FlightNumber:  number,
		Origin:        airport,
		Destination:   orDefault(dest, constants.ValueNotAvailable),
		Airline:       orDefault(airlineName, constants.ValueUnknown),
		AirlineICAO:   common.StringPtr(airlineICAO),
		AirlineLogo:   common.StringPtr(common.AirlineLogoURL(logoCode)),
		Aircraft:      orDefault(aircraft, constants.ValueNotAvailable),
		Status:        orDefault(status, constants.ValueScheduled),
		Duration:      duration,
		DepartureTime: s.clock(dep),
		ArrivalTime:   s.clock(arr),
	}
}

func (s *DepartureService) clock(ts *int64) string {
	if !hasTime(ts) {
		return constants.ValueTBD
	}
	return common.FormatClock(*ts, s.location)
}

// hasTime treats a zero timestamp like a missing one
func hasTime(ts *int64) bool {
	return ts != nil && *ts != 0
}

// nearbyDepartures lists flights around the home airport that took off from airport
func (s *DepartureService) nearbyDepartures(ctx context.Context, airport string) ([]dtos.Departure, error) {
	bounds := s.provider.BoundsByPoint(constants.NearbyFallbackLat, constants.NearbyFallbackLon, constants.NearbyRadiusMeters)
	flights, err := s.provider.GetFlights(ctx, providers.FlightQuery{Bounds: &bounds})
	if err != nil {
		return nil, fmt.Errorf("failed to list nearby flights: %w", err)
	}

	departures := make([]dtos.Departure, 0, constants.DeparturesLimit)
	for _, f := range flights {
		if f.OriginIATA != airport {
			continue
		}
		status := constants.ValueOnGround
		if f.OnGround == 0 {
			status = constants.ValueEnRoute
		}
		logo := ""
		if f.AirlineIATA != "" {
			logo = common.AirlineLogoURL(f.AirlineIATA)
		}
		id := f.ID
		if id == "" {
			id = s.newID()
		}
		departures = append(departures, dtos.Departure{
			ID:            id,
			Callsign:      orDefault(f.Callsign, constants.ValueNotAvailable),
			FlightNumber:  common.FirstNonEmpty(f.Number, f.Callsign, constants.ValueNotAvailable),
			Origin:        f.OriginIATA,
			Destination:   orDefault(f.DestinationIATA, constants.ValueNotAvailable),
			Airline:       common.FirstNonEmpty(f.AirlineIATA, f.AirlineICAO, constants.ValueUnknown),
			AirlineICAO:   common.StringPtr(f.AirlineICAO),
			AirlineLogo:   common.StringPtr(logo),
			Aircraft:      orDefault(f.AircraftCode, constants.ValueNotAvailable),
			Status:        status,
			Duration:      constants.ValueNotAvailable,
			DepartureTime: constants.ValueNow,
			ArrivalTime:   constants.ValueTBD,
		})
	}
	return departures, nil
}

// RouteSearchRequest holds the raw route query; Date is YYYY-MM-DD or empty
type RouteSearchRequest struct {
	Origin string
	Dest   string
	Date   string
}

type routeKey struct {
	number    string
	scheduled int64
	hasTime   bool
}

// SearchRoute scans the first schedule pages of origin for departures to dest.
// Failed pages are skipped. Flights repeated across pages are kept once.
func (s *DepartureService) SearchRoute(ctx context.Context, req RouteSearchRequest) ([]dtos.RouteFlight, error) {
	if err := s.provider.Availability(); err != nil {
		return nil, err
	}
	origin := routeCode(req.Origin)
	dest := routeCode(req.Dest)

	pages := make([]int, constants.RouteSearchPages)
	for i := range pages {
		pages[i] = i + 1
	}
	boards := fanOut(ctx, pages, s.workers, func(ctx context.Context, page int) []dtos.ScheduleEntry {
		details, err := s.provider.GetAirportDetails(ctx, origin, page)
		if err != nil {
			logging.Debug("Schedule page skipped", "airport", origin, "page", page, "error", err)
			return nil
		}
		return details.DepartureBoard()
	})

	results := make([]dtos.RouteFlight, 0)
	seen := make(map[routeKey]struct{})
	dateMismatches := 0
	for _, board := range boards {
		for _, entry := range board {
			f := entry.Flight
			if f == nil || routeDestination(f) != dest {
				continue
			}

			rf := toRouteFlight(f)
			if req.Date != "" && rf.Time.Scheduled != nil && common.FormatDate(*rf.Time.Scheduled, s.location) != req.Date {
				// informational only; mismatched dates stay in the result
				dateMismatches++
			}

			key := routeKey{}
			if rf.FlightNumber != nil {
				key.number = *rf.FlightNumber
			}
			if rf.Time.Scheduled != nil {
				key.scheduled = *rf.Time.Scheduled
				key.hasTime = true
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, rf)
		}
	}

	logging.Debug("Route search completed",
		"origin", origin,
		"dest", dest,
		"date", req.Date,
		"results", len(results),
		"date_mismatches", dateMismatches,
	)
	return results, nil
}

// routeCode reduces "GRU - São Paulo" to "GRU"
func routeCode(v string) string {
	code, _, _ := strings.Cut(v, " - ")
	return strings.TrimSpace(code)
}

func routeDestination(f *dtos.ScheduledFlight) string {
	if f.Airport == nil || f.Airport.Destination == nil || f.Airport.Destination.Code == nil {
		return ""
	}
	return f.Airport.Destination.Code.IATA
}

func toRouteFlight(f *dtos.ScheduledFlight) dtos.RouteFlight {
	rf := dtos.RouteFlight{}
	if f.Identification != nil {
		rf.ID = common.StringPtr(f.Identification.ID)
		rf.FlightNumber = common.StringPtr(f.Identification.Number.Default)
	}
	if f.Airline != nil {
		rf.Airline.Name = common.StringPtr(f.Airline.Name)
		if f.Airline.Code != nil {
			rf.Airline.Code = common.StringPtr(f.Airline.Code.IATA)
			rf.Airline.Logo = common.StringPtr(common.AirlineLogoURL(f.Airline.Code.IATA))
		}
	}
	if f.Aircraft != nil && f.Aircraft.Model != nil {
		rf.Aircraft.Model = common.StringPtr(f.Aircraft.Model.Text)
		rf.Aircraft.Code = common.StringPtr(f.Aircraft.Model.Code)
	}
	if f.Time != nil {
		if f.Time.Scheduled != nil {
			rf.Time.Scheduled = f.Time.Scheduled.Departure
		}
		if f.Time.Estimated != nil {
			rf.Time.Estimated = f.Time.Estimated.Departure
		}
		if f.Time.Real != nil {
			rf.Time.Real = f.Time.Real.Departure
		}
	}
	if f.Status != nil {
		rf.Status = common.StringPtr(f.Status.Text)
	}
	return rf
}
