package valuation

// Land-size curve boundaries. Per-m² price holds steady below the lower bound,
// declines linearly across the interval, and bottoms out past the upper bound.
const (
	landSizeLowerBound  = 100.0
	landSizeUpperBound  = 2000.0
	landSizeFloorFactor = 0.50
)

// LandSizeFactor models economies of scale in land pricing as a
// piecewise-linear diminishing-returns curve:
//
//	area < 100 m²          → 1.0
//	100 m² ≤ area ≤ 2000 m² → linear from 1.0 down to 0.50
//	area > 2000 m²          → 0.50
func LandSizeFactor(area float64) float64 {
	switch {
	case area < landSizeLowerBound:
		return 1.0
	case area > landSizeUpperBound:
		return landSizeFloorFactor
	default:
		span := landSizeUpperBound - landSizeLowerBound
		return 1.0 - (area-landSizeLowerBound)/span*(1.0-landSizeFloorFactor)
	}
}
