package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/inmoval/api/internal/database"
	"github.com/inmoval/api/internal/models"
)

// Maximum number of sales to pull into the in-memory candidate pool.
const maxPoolSize = 500

// SaleRepository defines the data access operations for the sales history.
type SaleRepository interface {
	// FindRecentSales returns comparable sales for a country sold on or
	// after the since date, optionally restricted to a set of property
	// type labels. Returns an empty slice if nothing matches (not an
	// error). Returns error only for actual database failures.
	FindRecentSales(ctx context.Context, country string, propertyTypes []string, since time.Time) ([]models.ComparableSale, error)
}

// saleRepository is the concrete pgx-backed implementation of SaleRepository.
type saleRepository struct {
	db *database.Database
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(db *database.Database) SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// FindRecentSales queries the comparable_sales table. Geographic narrowing
// happens in memory in the ranking package, so this query only applies the
// coarse country, type and recency filters.
func (r *saleRepository) FindRecentSales(ctx context.Context, country string, propertyTypes []string, since time.Time) ([]models.ComparableSale, error) {
	query := `
		SELECT
			id,
			address,
			property_type,
			total_area,
			price_usd,
			price_per_sqm_usd,
			latitude,
			longitude,
			sale_date,
			country,
			stratum
		FROM comparable_sales
		WHERE sale_date >= $1
		  AND ($2 = '' OR country = $2)
		  AND (cardinality($3::text[]) = 0 OR property_type = ANY($3::text[]))
		ORDER BY sale_date DESC
		LIMIT $4
	`

	if propertyTypes == nil {
		propertyTypes = []string{}
	}

	rows, err := r.db.Pool.Query(ctx, query, since, country, propertyTypes, maxPoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparable sales (country=%s, since=%s): %w",
			country, since.Format(time.DateOnly), err)
	}
	defer rows.Close()

	var results []models.ComparableSale

	for rows.Next() {
		var sale models.ComparableSale
		var stratum *string

		err := rows.Scan(
			&sale.ID,
			&sale.Address,
			&sale.PropertyType,
			&sale.TotalArea,
			&sale.PriceUSD,
			&sale.PricePerSqmUSD,
			&sale.Latitude,
			&sale.Longitude,
			&sale.SaleDate,
			&sale.Country,
			&stratum,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}

		if stratum != nil {
			s := models.Stratum(*stratum)
			sale.Stratum = &s
		}
		sale.Source = "database"

		results = append(results, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	// Return empty slice if no sales found (not an error)
	if results == nil {
		results = []models.ComparableSale{}
	}

	return results, nil
}
