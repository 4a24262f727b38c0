package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"skyboard/flightdeck/internal/db/repositories"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/models/gorm"
)

// ScanAirports streams a JSON array of airports, calling fn for each record in
// file order until fn returns false.
func ScanAirports(r io.Reader, fn func(dtos.Airport) bool) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode airports: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("failed to decode airports: expected array")
	}

	for dec.More() {
		var airport dtos.Airport
		if err := dec.Decode(&airport); err != nil {
			return fmt.Errorf("failed to decode airport record: %w", err)
		}
		if !fn(airport) {
			return nil
		}
	}
	return nil
}

// AirportLoaderService imports the airport dataset file into the airport database
type AirportLoaderService struct {
	repo *repositories.AirportRepository
	file string
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(repo *repositories.AirportRepository, file string) *AirportLoaderService {
	return &AirportLoaderService{repo: repo, file: file}
}

// LoadFromJSON replaces the airports table with the records read from reader
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (int, error) {
	airports := make([]gorm.Airport, 0, 8192)
	var seq int64
	err := ScanAirports(reader, func(raw dtos.Airport) bool {
		airport := gorm.Airport{
			IATA:      strings.ToUpper(strings.TrimSpace(raw.IATA)),
			Name:      strings.TrimSpace(raw.Name),
			City:      strings.TrimSpace(raw.City),
			Country:   strings.TrimSpace(raw.Country),
			Latitude:  raw.Lat,
			Longitude: raw.Lon,
		}
		if airport.IATA == "" || airport.Name == "" {
			return true // skip invalid records
		}
		seq++
		airport.Seq = seq
		airports = append(airports, airport)
		return true
	})
	if err != nil {
		return 0, err
	}

	if len(airports) == 0 {
		return 0, fmt.Errorf("no valid airports found after parsing")
	}

	logging.Info("Parsed airport dataset", "count", len(airports))

	if err := s.repo.ReplaceAll(ctx, airports); err != nil {
		return 0, fmt.Errorf("failed to import airports: %w", err)
	}

	logging.Info("Imported airports", "count", len(airports))
	return len(airports), nil
}

// LoadFromFile imports the configured dataset file
func (s *AirportLoaderService) LoadFromFile(ctx context.Context) (int, error) {
	f, err := os.Open(s.file)
	if err != nil {
		return 0, fmt.Errorf("failed to open airport dataset: %w", err)
	}
	defer f.Close()

	return s.LoadFromJSON(ctx, f)
}

// GetStats returns statistics about loaded airports
func (s *AirportLoaderService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_airports": count,
	}, nil
}
