package providers

import (
	"fmt"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/config"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/metrics"
)

// New selects the provider implementation at startup. A live provider that
// cannot be built is replaced by an UnavailableProvider carrying the reason,
// and the result is wrapped in a CachingProvider when a TTL is configured.
func New(cfg *config.Config, cache common.CacheInterface, m *metrics.MetricsRegistry) FlightDataProvider {
	var provider FlightDataProvider

	switch cfg.Provider {
	case config.ProviderFlightradar24:
		fr, err := NewFlightradarProvider(FlightradarConfig{
			FeedURL:    cfg.FeedURL,
			DetailsURL: cfg.DetailsURL,
			APIURL:     cfg.AirportAPIURL,
			Timeout:    cfg.ProviderTimeout,
		})
		if err != nil {
			logging.Error("Flight data provider unavailable", "provider", cfg.Provider, "error", err.Error())
			provider = NewUnavailableProvider(fmt.Sprintf("%s: %v", cfg.Provider, err))
			break
		}
		fr.Metrics = m
		provider = fr
	case config.ProviderDisabled:
		provider = NewUnavailableProvider("flight data provider disabled by configuration")
	default:
		provider = NewUnavailableProvider(fmt.Sprintf("unknown flight data provider %q", cfg.Provider))
	}

	if cache != nil && cfg.ProviderCacheTTL > 0 {
		provider = NewCachingProvider(provider, cache, cfg.ProviderCacheTTL, m)
	}

	logging.Info("Flight data provider selected",
		"provider", provider.GetProviderType(),
		"cache_ttl", cfg.ProviderCacheTTL.String(),
	)
	return provider
}
