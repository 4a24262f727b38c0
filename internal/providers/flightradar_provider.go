package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/models/dtos"
)

const (
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	feedRowMinLength = 17
	feedLimit        = "5000"
	scheduleLimit    = "100"
)

// FlightradarConfig configures the live Flightradar24 provider
type FlightradarConfig struct {
	FeedURL    string
	DetailsURL string
	APIURL     string
	Timeout    time.Duration
}

// FlightradarProvider implements FlightDataProvider against the public Flightradar24 endpoints
type FlightradarProvider struct {
	FeedURL    string
	DetailsURL string
	APIURL     string
	UserAgent  string
	Client     *http.Client
	Metrics    *metrics.MetricsRegistry
}

// NewFlightradarProvider validates the endpoint URLs and builds the provider
func NewFlightradarProvider(cfg FlightradarConfig) (*FlightradarProvider, error) {
	for name, raw := range map[string]string{"feed": cfg.FeedURL, "details": cfg.DetailsURL, "api": cfg.APIURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid flightradar24 %s url %q", name, raw)
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &FlightradarProvider{
		FeedURL:    cfg.FeedURL,
		DetailsURL: cfg.DetailsURL,
		APIURL:     cfg.APIURL,
		UserAgent:  defaultUserAgent,
		Client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// GetProviderType returns the provider type identifier
func (p *FlightradarProvider) GetProviderType() string {
	return "flightradar24"
}

// Availability always succeeds once the provider is constructed
func (p *FlightradarProvider) Availability() error {
	return nil
}

// BoundsByPoint computes bounds around a point
func (p *FlightradarProvider) BoundsByPoint(lat, lon, radiusMeters float64) Bounds {
	return BoundsAroundPoint(lat, lon, radiusMeters)
}

// GetFlights lists live flights from the feed, in feed order
func (p *FlightradarProvider) GetFlights(ctx context.Context, query FlightQuery) ([]dtos.FeedFlight, error) {
	params := url.Values{}
	for _, flag := range []string{"faa", "satellite", "mlat", "flarm", "adsb", "gnd", "air", "vehicles", "estimated", "gliders", "stats"} {
		params.Set(flag, "1")
	}
	params.Set("maxage", "14400")
	params.Set("limit", feedLimit)
	if query.Bounds != nil {
		params.Set("bounds", query.Bounds.String())
	}
	if query.Airline != "" {
		params.Set("airline", query.Airline)
	}

	var flights []dtos.FeedFlight
	_, err := p.doGET(ctx, "get_flights", p.FeedURL+"?"+params.Encode(), func(r io.Reader) error {
		var decodeErr error
		flights, decodeErr = decodeFeed(r)
		return decodeErr
	})
	if err != nil {
		return nil, err
	}
	return flights, nil
}

// GetFlightDetails fetches the clickhandler payload of a flight
func (p *FlightradarProvider) GetFlightDetails(ctx context.Context, flightID string) (*dtos.FlightDetails, error) {
	if flightID == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Flight ID cannot be empty",
		}
	}

	params := url.Values{}
	params.Set("version", "1.5")
	params.Set("flight", flightID)

	var details dtos.FlightDetails
	if _, err := p.doGET(ctx, "get_flight_details", p.DetailsURL+"?"+params.Encode(), decodeInto(&details)); err != nil {
		return nil, err
	}
	return &details, nil
}

// GetAirportDetails fetches an airport with one page of its departures schedule
func (p *FlightradarProvider) GetAirportDetails(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
	if iata == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Airport code cannot be empty",
		}
	}
	if page < 1 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Page number must be greater than 0",
		}
	}

	params := url.Values{}
	params.Set("code", iata)
	params.Add("plugin[]", "schedule")
	params.Set("plugin-setting[schedule][mode]", "departures")
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", scheduleLimit)

	var wrap struct {
		Result struct {
			Response dtos.AirportDetails `json:"response"`
		} `json:"result"`
	}
	if _, err := p.doGET(ctx, "get_airport_details", p.APIURL+"/airport.json?"+params.Encode(), decodeInto(&wrap)); err != nil {
		return nil, err
	}
	return &wrap.Result.Response, nil
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs a GET request and hands the body to decode on success
func (p *FlightradarProvider) doGET(ctx context.Context, operation, endpoint string, decode func(io.Reader) error) (status int, err error) {
	start := time.Now()
	defer func() {
		outcome := ErrorCode(err)
		if err != nil && outcome == "" {
			outcome = "aborted"
		}
		p.Metrics.ObserveUpstream(operation, outcome, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("User-Agent", p.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", "https://www.flightradar24.com")
	req.Header.Set("Referer", "https://www.flightradar24.com/")

	resp, err := p.Client.Do(req)
	if err != nil {
		// cancellation belongs to the caller, not the upstream
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("%s aborted: %w", operation, ctxErr)
		}
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, operation); err != nil {
		return resp.StatusCode, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     err,
		}
	}

	if err := decode(bytes.NewReader(bodyBytes)); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeDecodeError,
			Message: "Failed to decode response",
			Details: truncate(string(bodyBytes), 512),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// handleHTTPError converts HTTP errors to ProviderError
func (p *FlightradarProvider) handleHTTPError(resp *http.Response, operation string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return buildHTTPError(resp.StatusCode, operation, string(bodyBytes))
}

// buildHTTPError creates appropriate error based on status code
func buildHTTPError(statusCode int, operation string, body string) error {
	switch statusCode {
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeResourceNotFound,
			Message: fmt.Sprintf("Resource not found: %s", operation),
			Details: body,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	case http.StatusBadRequest:
		return &ProviderError{
			Code:    constants.ErrCodeBadRequest,
			Message: fmt.Sprintf("Bad request to %s", operation),
			Details: body,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeUpstreamError,
			Message: fmt.Sprintf("HTTP %d from %s", statusCode, operation),
			Details: truncate(body, 512),
		}
	}
}

func decodeInto(result interface{}) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(result)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
