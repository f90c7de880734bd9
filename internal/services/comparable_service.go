package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/models"
	"github.com/inmoval/api/internal/ranking"
	"github.com/inmoval/api/internal/sources"
)

// Coordinate validation constants
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Result-set sizes for the two search paths. The database-only location
// search returns more rows than the portal-enriched search.
const (
	locationSearchLimit = 5
	portalSearchLimit   = 3
)

// Search strategy names reported in metadata.
const (
	strategyLocationSearch = "location_search"
	strategyPortalSearch   = "portal_search"
)

// Service-level errors
var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// SearchQuery is the input to a comparable search.
type SearchQuery struct {
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	PropertyType   string  `json:"property_type"`
	Area           float64 `json:"area,omitempty"`
	Country        string  `json:"country,omitempty"`
	IncludePortals bool    `json:"include_portals,omitempty"`
}

// SearchTotals summarizes candidate counts across the search pipeline.
type SearchTotals struct {
	PoolSize  int                    `json:"pool_size"`
	Returned  int                    `json:"returned"`
	PerSource []sources.SourceReport `json:"per_source"`
}

// SearchMetadata describes how a search's results were produced.
type SearchMetadata struct {
	StrategyUsed     string       `json:"strategy_used"`
	RadiusUsedKm     float64      `json:"radius_used_km"`
	TypeMode         string       `json:"type_mode"`
	SearchParameters SearchQuery  `json:"search_parameters"`
	Totals           SearchTotals `json:"totals"`
}

// ComparableService defines the interface for comparable-sale searches.
type ComparableService interface {
	// Search gathers a candidate pool from the configured sources and
	// ranks it against the query point. Returns ErrInvalidCoordinates for
	// out-of-range lat/lng. An exhausted pool yields an empty result, not
	// an error; individual source failures are reported in the metadata.
	Search(ctx context.Context, q SearchQuery) ([]models.RankedComparable, SearchMetadata, error)
}

// comparableService is the concrete implementation of ComparableService.
type comparableService struct {
	dbSource      sources.Source
	portalSources []sources.Source
	fetchTimeout  time.Duration
	log           *logger.Logger
}

// NewComparableService creates a new instance of ComparableService. The
// database source is always consulted; portal sources are added only for
// portal-enriched searches.
func NewComparableService(dbSource sources.Source, portalSources []sources.Source, fetchTimeout time.Duration, log *logger.Logger) ComparableService {
	return &comparableService{
		dbSource:      dbSource,
		portalSources: portalSources,
		fetchTimeout:  fetchTimeout,
		log:           log,
	}
}

func (s *comparableService) Search(ctx context.Context, q SearchQuery) ([]models.RankedComparable, SearchMetadata, error) {
	if q.Latitude < MinLatitude || q.Latitude > MaxLatitude {
		s.log.Warn("Invalid latitude provided", map[string]interface{}{
			"lat": q.Latitude,
			"lng": q.Longitude,
		})
		return nil, SearchMetadata{}, fmt.Errorf("%w: latitude must be between %f and %f, got %f",
			ErrInvalidCoordinates, MinLatitude, MaxLatitude, q.Latitude)
	}
	if q.Longitude < MinLongitude || q.Longitude > MaxLongitude {
		s.log.Warn("Invalid longitude provided", map[string]interface{}{
			"lat": q.Latitude,
			"lng": q.Longitude,
		})
		return nil, SearchMetadata{}, fmt.Errorf("%w: longitude must be between %f and %f, got %f",
			ErrInvalidCoordinates, MinLongitude, MaxLongitude, q.Longitude)
	}

	srcs := []sources.Source{s.dbSource}
	strategy := strategyLocationSearch
	limit := locationSearchLimit
	if q.IncludePortals && len(s.portalSources) > 0 {
		srcs = append(srcs, s.portalSources...)
		strategy = strategyPortalSearch
		limit = portalSearchLimit
	}

	s.log.Info("Gathering comparable candidates", map[string]interface{}{
		"strategy":      strategy,
		"sources":       len(srcs),
		"lat":           q.Latitude,
		"lng":           q.Longitude,
		"property_type": q.PropertyType,
		"country":       q.Country,
	})

	pool, reports := sources.Gather(ctx, s.log, srcs, sources.Query{
		Latitude:     q.Latitude,
		Longitude:    q.Longitude,
		PropertyType: q.PropertyType,
		Area:         q.Area,
		Country:      q.Country,
	}, s.fetchTimeout)

	target := ranking.Target{
		Latitude:     q.Latitude,
		Longitude:    q.Longitude,
		PropertyType: q.PropertyType,
		Area:         q.Area,
		Country:      q.Country,
	}
	result := ranking.Rank(target, pool, limit, time.Now())

	s.log.Info("Comparable search complete", map[string]interface{}{
		"strategy":       strategy,
		"pool_size":      len(pool),
		"returned":       len(result.Comparables),
		"radius_used_km": result.RadiusUsedKm,
		"type_mode":      result.TypeMode,
	})

	meta := SearchMetadata{
		StrategyUsed:     strategy,
		RadiusUsedKm:     result.RadiusUsedKm,
		TypeMode:         result.TypeMode,
		SearchParameters: q,
		Totals: SearchTotals{
			PoolSize:  len(pool),
			Returned:  len(result.Comparables),
			PerSource: reports,
		},
	}

	return result.Comparables, meta, nil
}
