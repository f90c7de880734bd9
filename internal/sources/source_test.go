package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/models"
)

// stubSource is a scriptable Source for fan-out tests.
type stubSource struct {
	name  string
	sales []models.ComparableSale
	err   error
	delay time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, q Query) ([]models.ComparableSale, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.sales, s.err
}

func testSale(id string) models.ComparableSale {
	return models.ComparableSale{ID: id, PropertyType: "house", Country: "CO"}
}

func TestGather_MergesAllSources(t *testing.T) {
	log := logger.New("test")
	srcs := []Source{
		&stubSource{name: "database", sales: []models.ComparableSale{testSale("a"), testSale("b")}},
		&stubSource{name: "portal", sales: []models.ComparableSale{testSale("c")}},
	}

	pool, reports := Gather(context.Background(), log, srcs, Query{Country: "CO"}, time.Second)

	assert.Len(t, pool, 3)
	require.Len(t, reports, 2)
	assert.Equal(t, "database", reports[0].Source)
	assert.Equal(t, 2, reports[0].Count)
	assert.Equal(t, "portal", reports[1].Source)
	assert.Equal(t, 1, reports[1].Count)
}

func TestGather_FailedSourceContributesZero(t *testing.T) {
	log := logger.New("test")
	srcs := []Source{
		&stubSource{name: "database", sales: []models.ComparableSale{testSale("a")}},
		&stubSource{name: "portal", err: errors.New("portal unavailable")},
	}

	pool, reports := Gather(context.Background(), log, srcs, Query{}, time.Second)

	// Partial success: the healthy source's results survive.
	assert.Len(t, pool, 1)
	require.Len(t, reports, 2)
	assert.Empty(t, reports[0].Error)
	assert.Equal(t, "portal unavailable", reports[1].Error)
	assert.Equal(t, 0, reports[1].Count)
}

func TestGather_SlowSourceTimesOut(t *testing.T) {
	log := logger.New("test")
	srcs := []Source{
		&stubSource{name: "fast", sales: []models.ComparableSale{testSale("a")}},
		&stubSource{name: "slow", sales: []models.ComparableSale{testSale("b")}, delay: 500 * time.Millisecond},
	}

	start := time.Now()
	pool, reports := Gather(context.Background(), log, srcs, Query{}, 50*time.Millisecond)
	elapsed := time.Since(start)

	assert.Len(t, pool, 1)
	assert.Equal(t, "a", pool[0].ID)
	require.Len(t, reports, 2)
	assert.NotEmpty(t, reports[1].Error)
	// The timeout bounds the slow branch; the gather must not wait the
	// full 500ms.
	assert.Less(t, elapsed, 400*time.Millisecond)
}

func TestGather_DeduplicatesByID(t *testing.T) {
	log := logger.New("test")
	srcs := []Source{
		&stubSource{name: "database", sales: []models.ComparableSale{testSale("dup"), testSale("a")}},
		&stubSource{name: "portal", sales: []models.ComparableSale{testSale("dup"), testSale("b")}},
	}

	pool, _ := Gather(context.Background(), log, srcs, Query{}, time.Second)

	ids := make(map[string]int)
	for _, s := range pool {
		ids[s.ID]++
	}
	assert.Equal(t, 1, ids["dup"])
	assert.Len(t, pool, 3)
}

func TestGather_NoSources(t *testing.T) {
	log := logger.New("test")

	pool, reports := Gather(context.Background(), log, nil, Query{}, time.Second)

	require.NotNil(t, pool)
	assert.Empty(t, pool)
	assert.Empty(t, reports)
}

func TestGather_ZeroTimeoutUsesDefault(t *testing.T) {
	log := logger.New("test")
	srcs := []Source{
		&stubSource{name: "database", sales: []models.ComparableSale{testSale("a")}},
	}

	pool, _ := Gather(context.Background(), log, srcs, Query{}, 0)

	assert.Len(t, pool, 1)
}
