package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations. Writes go through GORM,
// the search query through sqlx on the same pool.
type AirportRepository struct {
	db  *gormlib.DB
	sql *sqlx.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB, sql *sqlx.DB) *AirportRepository {
	return &AirportRepository{db: db, sql: sql}
}

// Search returns up to limit airports whose iata, name or city contains q
// (case-insensitive), in import order
func (r *AirportRepository) Search(ctx context.Context, q string, limit int) ([]dtos.Airport, error) {
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"

	var rows []gorm.Airport
	query := r.sql.Rebind(constants.SearchAirports)
	if err := r.sql.SelectContext(ctx, &rows, query, pattern, pattern, pattern, limit); err != nil {
		return nil, err
	}

	airports := make([]dtos.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, dtos.Airport{
			IATA:    row.IATA,
			Name:    row.Name,
			City:    row.City,
			Country: row.Country,
			Lat:     row.Latitude,
			Lon:     row.Longitude,
		})
	}
	return airports, nil
}

// ReplaceAll deletes existing airports and inserts the given ones in one transaction
func (r *AirportRepository) ReplaceAll(ctx context.Context, airports []gorm.Airport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where("1 = 1").Delete(&gorm.Airport{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(airports, 500).Error
	})
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}

// Ping checks the database connection
func (r *AirportRepository) Ping(ctx context.Context) error {
	return r.sql.PingContext(ctx)
}

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
