package sources

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/models"
)

// DefaultFetchTimeout bounds each individual source fetch.
const DefaultFetchTimeout = 8 * time.Second

// maxConcurrentFetches caps the fan-out width.
const maxConcurrentFetches = 4

// Query describes what a source should fetch candidates for.
type Query struct {
	Latitude     float64
	Longitude    float64
	PropertyType string
	Area         float64
	Country      string
}

// Source supplies comparable sale candidates from one backing system, such
// as the local sales-history database or a scraped listing portal.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]models.ComparableSale, error)
}

// SourceReport describes the outcome of one source's fetch within a gather.
type SourceReport struct {
	Source     string `json:"source"`
	Count      int    `json:"count"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Gather fetches from every source concurrently with a per-source timeout
// and merges whatever succeeds. A failing or slow source contributes zero
// candidates and is recorded in its report; it never fails the gather.
// Duplicate IDs across sources are dropped, first occurrence wins.
func Gather(ctx context.Context, log *logger.Logger, srcs []Source, q Query, timeout time.Duration) ([]models.ComparableSale, []SourceReport) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	results := make([][]models.ComparableSale, len(srcs))
	reports := make([]SourceReport, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, src := range srcs {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			start := time.Now()
			sales, err := src.Fetch(fetchCtx, q)
			elapsed := time.Since(start)

			reports[i] = SourceReport{
				Source:     src.Name(),
				Count:      len(sales),
				DurationMs: elapsed.Milliseconds(),
			}

			if err != nil {
				// Partial success: record and move on.
				reports[i].Error = err.Error()
				reports[i].Count = 0
				log.Warn("Comparable source failed", map[string]interface{}{
					"source":      src.Name(),
					"error":       err.Error(),
					"duration_ms": elapsed.Milliseconds(),
				})
				return nil
			}

			results[i] = sales
			return nil
		})
	}

	// Workers only ever return nil; Wait is just the join point.
	_ = g.Wait()

	seen := make(map[string]bool)
	var merged []models.ComparableSale
	for _, sales := range results {
		for _, s := range sales {
			if s.ID != "" && seen[s.ID] {
				continue
			}
			if s.ID != "" {
				seen[s.ID] = true
			}
			merged = append(merged, s)
		}
	}

	if merged == nil {
		merged = []models.ComparableSale{}
	}

	return merged, reports
}
