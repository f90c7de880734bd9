package sources

import (
	"context"
	"time"

	"github.com/inmoval/api/internal/models"
	"github.com/inmoval/api/internal/repository"
)

// saleHistoryWindow mirrors the ranker's 24-month recency cutoff so the
// pool never carries rows the ranker would discard anyway.
const saleHistoryWindow = 24 * 30 * 24 * time.Hour

// DatabaseSource adapts the sales-history repository to the Source interface.
type DatabaseSource struct {
	repo repository.SaleRepository
}

// NewDatabaseSource creates a Source backed by the comparable_sales table.
func NewDatabaseSource(repo repository.SaleRepository) *DatabaseSource {
	return &DatabaseSource{repo: repo}
}

func (s *DatabaseSource) Name() string { return "database" }

// Fetch pulls recent sales for the query's country. Property type narrowing
// is left to the ranker, which also handles synonym-group fallback.
func (s *DatabaseSource) Fetch(ctx context.Context, q Query) ([]models.ComparableSale, error) {
	since := time.Now().Add(-saleHistoryWindow)
	return s.repo.FindRecentSales(ctx, q.Country, nil, since)
}
