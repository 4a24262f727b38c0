package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/models/dtos"
)

// AirportSource finds airports matching an already lower-cased query
type AirportSource interface {
	Search(ctx context.Context, q string, limit int) ([]dtos.Airport, error)
}

// FileAirportSource scans the JSON dataset on every search so dataset updates
// are picked up without a restart
type FileAirportSource struct {
	Path string
}

func (s *FileAirportSource) Search(ctx context.Context, q string, limit int) ([]dtos.Airport, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport dataset: %w", err)
	}
	defer f.Close()

	results := make([]dtos.Airport, 0, limit)
	err = common.ScanAirports(f, func(a dtos.Airport) bool {
		if airportMatches(a, q) {
			results = append(results, a)
		}
		return len(results) < limit && ctx.Err() == nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func airportMatches(a dtos.Airport, q string) bool {
	return strings.Contains(strings.ToLower(a.IATA), q) ||
		strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.City), q)
}

type AirportService struct {
	source AirportSource
}

func NewAirportService(source AirportSource) *AirportService {
	return &AirportService{source: source}
}

// Search returns at most 10 airports whose IATA code, name or city contains q.
// Queries shorter than two characters return nothing without touching the source.
func (s *AirportService) Search(ctx context.Context, q string) ([]dtos.Airport, error) {
	q = strings.ToLower(q)
	if q == "" || utf8.RuneCountInString(q) < constants.AirportMinQueryLen {
		return []dtos.Airport{}, nil
	}

	airports, err := s.source.Search(ctx, q, constants.AirportSearchLimit)
	if err != nil {
		return nil, err
	}
	if airports == nil {
		airports = []dtos.Airport{}
	}
	return airports, nil
}
