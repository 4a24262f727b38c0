package services

import (
	"context"
	"strings"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
)

type ImageStage string

const (
	StagePrimary     ImageStage = "primary"
	StageFleet       ImageStage = "fleet"
	StageStaticTable ImageStage = "static_table"
)

type StageOutcome string

const (
	OutcomeResolved StageOutcome = "resolved"
	OutcomeEmpty    StageOutcome = "empty"
	OutcomeFailed   StageOutcome = "failed"
	OutcomeSkipped  StageOutcome = "skipped"
)

// StageResult is what one step of the image chain produced
type StageResult struct {
	Stage    ImageStage
	Outcome  StageOutcome
	ImageURL string
	Err      error
}

// ImageResolution records every stage that ran, in order
type ImageResolution struct {
	Stages   []StageResult
	ImageURL string
	Source   ImageStage
}

func (r *ImageResolution) add(res StageResult) {
	r.Stages = append(r.Stages, res)
	if res.Outcome == OutcomeResolved && r.ImageURL == "" {
		r.ImageURL = res.ImageURL
		r.Source = res.Stage
	}
}

// Outcome returns the outcome of stage, or "" if it never ran
func (r *ImageResolution) Outcome(stage ImageStage) StageOutcome {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s.Outcome
		}
	}
	return ""
}

// Summary flattens the trace for logging, e.g. "primary=empty,fleet=resolved"
func (r *ImageResolution) Summary() string {
	parts := make([]string, 0, len(r.Stages))
	for _, s := range r.Stages {
		parts = append(parts, string(s.Stage)+"="+string(s.Outcome))
	}
	return strings.Join(parts, ",")
}

type imageResolver struct {
	provider providers.FlightDataProvider
	metrics  *metrics.MetricsRegistry
	workers  int
}

func (ir *imageResolver) resolve(ctx context.Context, req FlightDetailsRequest, data *dtos.FlightDetailsData) *ImageResolution {
	trace := &ImageResolution{}

	ir.record(trace, ir.primary(ctx, req.FlightID, data))
	if trace.ImageURL != "" {
		return trace
	}

	ir.record(trace, ir.fleet(ctx, req.AirlineICAO, req.AircraftCode))
	if trace.ImageURL != "" {
		return trace
	}

	ir.record(trace, staticTable(req.AirlineICAO, req.AircraftCode))
	return trace
}

func (ir *imageResolver) record(trace *ImageResolution, res StageResult) {
	ir.metrics.ImageStage(string(res.Stage), string(res.Outcome))
	if res.Outcome == OutcomeFailed {
		logging.Debug("Image stage failed", "stage", res.Stage, "error", res.Err)
	}
	trace.add(res)
}

// primary fills data from the flight's own details and returns its photo, if any
func (ir *imageResolver) primary(ctx context.Context, flightID string, data *dtos.FlightDetailsData) StageResult {
	res := StageResult{Stage: StagePrimary}
	if flightID == "" || len(flightID) > constants.MaxFlightIDLength {
		res.Outcome = OutcomeSkipped
		return res
	}

	details, err := ir.provider.GetFlightDetails(ctx, flightID)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}
	if details == nil || details.Aircraft == nil {
		res.Outcome = OutcomeEmpty
		return res
	}

	res.ImageURL = imageFromDetails(details)
	fillDetails(details, data)

	if res.ImageURL == "" {
		res.Outcome = OutcomeEmpty
	} else {
		res.Outcome = OutcomeResolved
	}
	return res
}

func fillDetails(details *dtos.FlightDetails, data *dtos.FlightDetailsData) {
	if a := details.Airline; a != nil {
		data.Airline = a.Name
		if a.Code != nil {
			data.AirlineLogo = common.AirlineLogoURL(common.FirstNonEmpty(a.Code.IATA, a.Code.ICAO))
		}
	}
	if m := details.Aircraft.Model; m != nil {
		data.AircraftModel = m.Text
	}
	if ap := details.Airport; ap != nil {
		if ap.Origin != nil {
			data.Origin = ap.Origin.Name
		}
		if ap.Destination != nil {
			data.Destination = ap.Destination.Name
		}
	}
	if details.Status != nil {
		data.Status = details.Status.Text
	}
}

// imageFromDetails prefers the first medium photo, then the first large one
func imageFromDetails(details *dtos.FlightDetails) string {
	if details == nil || details.Aircraft == nil || details.Aircraft.Images == nil {
		return ""
	}
	images := details.Aircraft.Images
	if len(images.Medium) > 0 {
		return images.Medium[0].Src
	}
	if len(images.Large) > 0 {
		return images.Large[0].Src
	}
	return ""
}

// fleet looks for a photo among the airline's other active flights
func (ir *imageResolver) fleet(ctx context.Context, airline, aircraftCode string) StageResult {
	res := StageResult{Stage: StageFleet}
	if airline == "" {
		res.Outcome = OutcomeSkipped
		return res
	}

	candidates, err := ir.provider.GetFlights(ctx, providers.FlightQuery{Airline: airline})
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}
	if len(candidates) > constants.FleetCandidateLimit {
		candidates = candidates[:constants.FleetCandidateLimit]
	}

	images := fanOut(ctx, candidates, ir.workers, func(ctx context.Context, f dtos.FeedFlight) string {
		details, err := ir.provider.GetFlightDetails(ctx, f.ID)
		if err != nil {
			return ""
		}
		return imageFromDetails(details)
	})

	res.ImageURL = selectFleetImage(candidates, images, aircraftCode)
	if res.ImageURL == "" {
		res.Outcome = OutcomeEmpty
	} else {
		res.Outcome = OutcomeResolved
	}
	return res
}

// selectFleetImage returns the first image of a candidate flying a matching
// aircraft type, else the first image found at all. images[i] belongs to candidates[i].
func selectFleetImage(candidates []dtos.FeedFlight, images []string, aircraftCode string) string {
	target := ""
	if aircraftCode != "" && aircraftCode != constants.ValueNotAvailable {
		target = common.AircraftCoreCode(aircraftCode)
	}

	fallback := ""
	for i, img := range images {
		if img == "" {
			continue
		}
		if fallback == "" {
			fallback = img
		}
		if target != "" && aircraftMatches(target, candidates[i].AircraftCode) {
			return img
		}
	}
	return fallback
}

// aircraftMatches treats substring matches and the A32x / B73x families as equivalent
func aircraftMatches(target, candidate string) bool {
	if candidate != "" && (strings.Contains(candidate, target) || strings.Contains(target, candidate)) {
		return true
	}
	for _, family := range []string{"A32", "B73"} {
		if strings.Contains(target, family) && strings.Contains(candidate, family) {
			return true
		}
	}
	return false
}

func staticTable(airline, aircraftCode string) StageResult {
	res := StageResult{Stage: StageStaticTable}
	if airline == "" {
		res.Outcome = OutcomeSkipped
		return res
	}

	res.ImageURL = staticPhoto(airline, aircraftCode)
	if res.ImageURL == "" {
		res.Outcome = OutcomeEmpty
	} else {
		res.Outcome = OutcomeResolved
	}
	return res
}

func staticPhoto(airline, aircraftCode string) string {
	key := airline + "_" + common.AircraftFamilyCode(aircraftCode)
	for _, p := range constants.AirlinePhotos {
		if p.Key == key {
			return p.URL
		}
	}

	for _, p := range constants.AirlinePhotos {
		carrier, aircraft, ok := strings.Cut(p.Key, "_")
		if ok && carrier == airline && strings.Contains(aircraftCode, aircraft) {
			return p.URL
		}
	}
	return ""
}
