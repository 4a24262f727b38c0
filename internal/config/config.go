package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderFlightradar24 = "flightradar24"
	ProviderDisabled      = "disabled"
)

// Config holds every runtime setting of the service
type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	// Upstream provider
	Provider         string
	FeedURL          string
	DetailsURL       string
	AirportAPIURL    string
	ProviderTimeout  time.Duration
	ProviderCacheTTL time.Duration
	FanoutWorkers    int

	// Response cache backend, Redis when RedisHost is set
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Airports
	AirportsFile     string
	AirportsDBDriver string
	AirportsDBDSN    string

	AdminJWTSecret string

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string

	DisplayTimezone string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real env vars take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         strings.ToLower(os.Getenv("LOG_LEVEL")),
		Port:             getEnv("PORT", "8080"),
		Provider:         strings.ToLower(getEnv("PROVIDER", ProviderFlightradar24)),
		FeedURL:          getEnv("FR24_FEED_URL", "https://data-cloud.flightradar24.com/zones/fcgi/feed.js"),
		DetailsURL:       getEnv("FR24_DETAILS_URL", "https://data-live.flightradar24.com/clickhandler/"),
		AirportAPIURL:    getEnv("FR24_API_URL", "https://api.flightradar24.com/common/v1"),
		ProviderTimeout:  getDuration("FR24_TIMEOUT", 10*time.Second),
		ProviderCacheTTL: getDuration("PROVIDER_CACHE_TTL", 0),
		FanoutWorkers:    getInt("FANOUT_WORKERS", 5),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		AirportsFile:     getEnv("AIRPORTS_FILE", "data/airports.json"),
		AirportsDBDriver: strings.ToLower(os.Getenv("AIRPORTS_DB_DRIVER")),
		AirportsDBDSN:    os.Getenv("AIRPORTS_DB_DSN"),
		AdminJWTSecret:   os.Getenv("ADMIN_JWT_SECRET"),
		RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 20),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "https://*,http://localhost:3000")),
		DisplayTimezone:  getEnv("DISPLAY_TIMEZONE", "America/Sao_Paulo"),
	}

	if cfg.FanoutWorkers < 1 {
		cfg.FanoutWorkers = 1
	}

	return cfg, nil
}

// AirportsDBEnabled reports whether airport search should be served from the database
func (c *Config) AirportsDBEnabled() bool {
	return c.AirportsDBDriver != "" && c.AirportsDBDSN != ""
}

// DisplayLocation resolves DisplayTimezone, falling back to UTC
func (c *Config) DisplayLocation() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("15s") or plain seconds ("15")
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
