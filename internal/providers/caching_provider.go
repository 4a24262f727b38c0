package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/models/dtos"
)

// CachingProvider is a read-through cache in front of another provider.
// Payloads are stored as JSON so the in-memory and Redis backends behave alike.
type CachingProvider struct {
	next    FlightDataProvider
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

// Ensure CachingProvider implements FlightDataProvider
var _ FlightDataProvider = (*CachingProvider)(nil)

func NewCachingProvider(next FlightDataProvider, cache common.CacheInterface, ttl time.Duration, m *metrics.MetricsRegistry) *CachingProvider {
	return &CachingProvider{next: next, cache: cache, ttl: ttl, metrics: m}
}

func (p *CachingProvider) GetProviderType() string {
	return p.next.GetProviderType()
}

func (p *CachingProvider) Availability() error {
	return p.next.Availability()
}

func (p *CachingProvider) BoundsByPoint(lat, lon, radiusMeters float64) Bounds {
	return p.next.BoundsByPoint(lat, lon, radiusMeters)
}

func (p *CachingProvider) GetFlights(ctx context.Context, query FlightQuery) ([]dtos.FeedFlight, error) {
	scope := "world"
	if query.Bounds != nil {
		scope = query.Bounds.String()
	}
	key := fmt.Sprintf("%s%s|%s", constants.CachePrefixFeed, scope, query.Airline)
	var flights []dtos.FeedFlight
	err := p.readThrough(constants.CachePrefixFeed, key, &flights, func() (any, error) {
		return p.next.GetFlights(ctx, query)
	})
	return flights, err
}

func (p *CachingProvider) GetFlightDetails(ctx context.Context, flightID string) (*dtos.FlightDetails, error) {
	key := string(constants.CachePrefixDetails) + flightID
	var details dtos.FlightDetails
	if err := p.readThrough(constants.CachePrefixDetails, key, &details, func() (any, error) {
		return p.next.GetFlightDetails(ctx, flightID)
	}); err != nil {
		return nil, err
	}
	return &details, nil
}

func (p *CachingProvider) GetAirportDetails(ctx context.Context, iata string, page int) (*dtos.AirportDetails, error) {
	key := fmt.Sprintf("%s%s_%d", constants.CachePrefixSchedule, iata, page)
	var details dtos.AirportDetails
	if err := p.readThrough(constants.CachePrefixSchedule, key, &details, func() (any, error) {
		return p.next.GetAirportDetails(ctx, iata, page)
	}); err != nil {
		return nil, err
	}
	return &details, nil
}

// readThrough serves key from cache into out, or calls load and stores its result.
// Errors are never cached.
func (p *CachingProvider) readThrough(prefix constants.CachePrefix, key string, out any, load func() (any, error)) error {
	if raw, found := p.cache.Get(key); found {
		if err := json.Unmarshal(raw, out); err == nil {
			p.metrics.CacheHit(string(prefix))
			return nil
		}
		logging.Warn("Discarding unreadable cache entry", "key", key)
		p.cache.Delete(key)
	}
	p.metrics.CacheMiss(string(prefix))

	val, err := load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeDecodeError,
			Message: "Failed to encode provider payload for cache",
			Err:     err,
		}
	}
	p.cache.Set(key, raw, p.ttl)

	return json.Unmarshal(raw, out)
}
