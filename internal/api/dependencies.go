package api

import (
	"context"
	"fmt"
	"time"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/config"
	"skyboard/flightdeck/internal/db"
	"skyboard/flightdeck/internal/db/repositories"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/providers"
	"skyboard/flightdeck/internal/services"
)

type Repositories struct {
	// Airports is nil unless an airport database is configured
	Airports *repositories.AirportRepository
}

type Services struct {
	Cache         common.CacheInterface
	Provider      providers.FlightDataProvider
	Airports      *services.AirportService
	Flights       *services.FlightsService
	Departures    *services.DepartureService
	AirportLoader *common.AirportLoaderService
	Tokens        *auth.TokenService
}

type Dependencies struct {
	Config    *config.Config
	Metrics   *metrics.MetricsRegistry
	Repo      *Repositories
	Services  *Services
	StartedAt time.Time

	closers []func() error
}

// InitDependencies wires caches, the flight data provider and the services
func InitDependencies(cfg *config.Config, m *metrics.MetricsRegistry) (*Dependencies, error) {
	deps := &Dependencies{
		Config:    cfg,
		Metrics:   m,
		Repo:      &Repositories{},
		StartedAt: time.Now(),
	}

	cache := newCache(cfg)
	deps.closers = append(deps.closers, cache.Close)

	provider := providers.New(cfg, cache, m)

	airportSource, err := deps.initAirportSource(cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}

	var loader *common.AirportLoaderService
	if deps.Repo.Airports != nil {
		loader = common.NewAirportLoaderService(deps.Repo.Airports, cfg.AirportsFile)
		seedAirports(deps.Repo.Airports, loader)
	}

	loc := cfg.DisplayLocation()
	deps.Services = &Services{
		Cache:         cache,
		Provider:      provider,
		Airports:      services.NewAirportService(airportSource),
		Flights:       services.NewFlightsService(provider, m, cfg.FanoutWorkers),
		Departures:    services.NewDepartureService(provider, cfg.FanoutWorkers, loc),
		AirportLoader: loader,
		Tokens:        auth.NewTokenService([]byte(cfg.AdminJWTSecret)),
	}

	return deps, nil
}

// newCache uses Redis when a host is configured, else the in-process cache
func newCache(cfg *config.Config) common.CacheInterface {
	if cfg.RedisHost != "" {
		client := common.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		return common.NewRedisCacheService(client)
	}

	ttl := int(cfg.ProviderCacheTTL.Seconds())
	if ttl <= 0 {
		ttl = 60
	}
	return common.NewCacheService(ttl, 600)
}

func (d *Dependencies) initAirportSource(cfg *config.Config) (services.AirportSource, error) {
	if !cfg.AirportsDBEnabled() {
		logging.Info("Serving airport search from file", "file", cfg.AirportsFile)
		return &services.FileAirportSource{Path: cfg.AirportsFile}, nil
	}

	orm, err := db.OpenAirportORM(cfg.AirportsDBDriver, cfg.AirportsDBDSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.NewSqlx(orm, cfg.AirportsDBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap airport database: %w", err)
	}
	d.closers = append(d.closers, sqlDB.Close)

	d.Repo.Airports = repositories.NewAirportRepository(orm, sqlDB)
	logging.Info("Serving airport search from database", "driver", cfg.AirportsDBDriver)
	return d.Repo.Airports, nil
}

// seedAirports imports the dataset file into an empty airports table
func seedAirports(repo *repositories.AirportRepository, loader *common.AirportLoaderService) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return
	}
	if _, err := loader.LoadFromFile(ctx); err != nil {
		logging.Warn("Airport database left empty", "error", err)
	}
}

// Close releases caches and database connections
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			logging.Warn("Failed to close dependency", "error", err)
		}
	}
}
