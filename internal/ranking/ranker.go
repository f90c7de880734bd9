package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/inmoval/api/internal/geo"
	"github.com/inmoval/api/internal/models"
)

// Type-matching modes reported in search metadata.
const (
	TypeModeExact   = "exact"
	TypeModeSynonym = "synonym"
)

// Search tuning constants.
const (
	// maxSaleAgeMonths drops candidates sold too long ago.
	maxSaleAgeMonths = 24
	// areaTolerance keeps candidates within ±30% of the target area.
	areaTolerance = 0.30
	// enoughCandidates stops the radius expansion once reached.
	enoughCandidates = 5
	// minExactMatches below which the search falls back to the synonym group.
	minExactMatches = 3
)

// searchRadiiKm is the progressive radius ladder, tried in order.
var searchRadiiKm = []float64{1, 2, 5, 10, 15, 20, 25}

// Overall score weights.
const (
	weightArea     = 0.5
	weightDistance = 0.3
	weightRecency  = 0.2
)

// Target describes what a comparable search is looking for.
type Target struct {
	Latitude     float64
	Longitude    float64
	PropertyType string
	Area         float64
	Country      string
}

// Result carries the ranked comparables plus how they were found.
type Result struct {
	Comparables  []models.RankedComparable
	RadiusUsedKm float64
	TypeMode     string
}

// Rank filters, scores and orders a candidate pool against the target.
// It is pure: the pool is already in memory, now is passed in for
// deterministic recency, and an empty or fully-filtered pool yields an empty
// result rather than an error.
func Rank(target Target, pool []models.ComparableSale, maxResults int, now time.Time) Result {
	if maxResults <= 0 || len(pool) == 0 {
		return Result{Comparables: []models.RankedComparable{}, TypeMode: TypeModeExact}
	}

	candidates := prefilter(target, pool, now)

	found, radius := radiusSearch(target, candidates, exactTypeMatcher(target.PropertyType))
	mode := TypeModeExact

	// Too few exact-type hits: widen to the synonym group and retry.
	if len(found) < minExactMatches {
		broader, broaderRadius := radiusSearch(target, candidates, synonymMatcher(target.PropertyType))
		if len(broader) > len(found) {
			found, radius, mode = broader, broaderRadius, TypeModeSynonym
		}
	}

	ranked := make([]models.RankedComparable, 0, len(found))
	for _, c := range found {
		ranked = append(ranked, score(target, c, now))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallSimilarityScore != ranked[j].OverallSimilarityScore {
			return ranked[i].OverallSimilarityScore > ranked[j].OverallSimilarityScore
		}
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].MonthsOld < ranked[j].MonthsOld
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return Result{Comparables: ranked, RadiusUsedKm: radius, TypeMode: mode}
}

// prefilter applies the non-geographic filters: country, sale recency and
// area tolerance.
func prefilter(target Target, pool []models.ComparableSale, now time.Time) []models.ComparableSale {
	out := make([]models.ComparableSale, 0, len(pool))
	for _, c := range pool {
		if target.Country != "" && !strings.EqualFold(c.Country, target.Country) {
			continue
		}
		if monthsBetween(c.SaleDate, now) > maxSaleAgeMonths {
			continue
		}
		if target.Area > 0 && c.TotalArea > 0 {
			diff := c.TotalArea - target.Area
			if diff < 0 {
				diff = -diff
			}
			if diff > target.Area*areaTolerance {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// radiusSearch walks the radius ladder, accumulating candidates that match
// the type matcher and fall inside the true circular radius. A bounding box
// rejects most points before the exact haversine check. Expansion stops once
// enough candidates have been accumulated.
func radiusSearch(target Target, candidates []models.ComparableSale, matches func(string) bool) ([]models.ComparableSale, float64) {
	var found []models.ComparableSale
	var radiusUsed float64

	seen := make(map[string]bool, len(candidates))

	for _, radius := range searchRadiiKm {
		box := geo.NewBoundingBox(target.Latitude, target.Longitude, radius)

		for _, c := range candidates {
			if seen[c.ID] {
				continue
			}
			if !matches(c.PropertyType) {
				continue
			}
			if !box.Contains(c.Latitude, c.Longitude) {
				continue
			}
			if geo.HaversineKm(target.Latitude, target.Longitude, c.Latitude, c.Longitude) > radius {
				continue
			}
			seen[c.ID] = true
			found = append(found, c)
		}

		radiusUsed = radius
		if len(found) >= enoughCandidates {
			break
		}
	}

	return found, radiusUsed
}

func score(target Target, c models.ComparableSale, now time.Time) models.RankedComparable {
	distance := geo.HaversineKm(target.Latitude, target.Longitude, c.Latitude, c.Longitude)
	months := monthsBetween(c.SaleDate, now)

	area := areaScore(target.Area, c.TotalArea)
	overall := weightArea*area +
		weightDistance*distanceScore(distance) +
		weightRecency*recencyScore(months)

	return models.RankedComparable{
		ComparableSale:         c,
		DistanceKm:             distance,
		MonthsOld:              months,
		AreaSimilarityScore:    area,
		OverallSimilarityScore: overall,
	}
}

// areaScore measures relative area similarity; without a target area it
// defaults to a neutral 0.5.
func areaScore(targetArea, candidateArea float64) float64 {
	if targetArea <= 0 || candidateArea <= 0 {
		return 0.5
	}
	diff := candidateArea - targetArea
	if diff < 0 {
		diff = -diff
	}
	max := candidateArea
	if targetArea > max {
		max = targetArea
	}
	s := 1 - diff/max
	if s < 0 {
		return 0
	}
	return s
}

func distanceScore(km float64) float64 {
	switch {
	case km <= 1:
		return 1.0
	case km <= 5:
		return 0.8
	case km <= 10:
		return 0.6
	case km <= 15:
		return 0.4
	default:
		return 0.2
	}
}

func recencyScore(months int) float64 {
	switch {
	case months <= 6:
		return 1.0
	case months <= 12:
		return 0.8
	case months <= 18:
		return 0.6
	case months <= 24:
		return 0.4
	default:
		return 0.2
	}
}

// monthsBetween approximates whole months elapsed between a sale date and
// now. Future-dated sales count as zero months old.
func monthsBetween(saleDate, now time.Time) int {
	if saleDate.After(now) {
		return 0
	}
	days := int(now.Sub(saleDate).Hours() / 24)
	return days / 30
}
