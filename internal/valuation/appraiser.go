package valuation

import "github.com/inmoval/api/internal/models"

// Strategy names accepted by ByName and echoed in ValuationResult.Strategy.
const (
	StrategyQuality = "quality"
	StrategyStratum = "stratum"
)

// Appraiser computes an estimated value from property attributes. All
// implementations are pure and never fail: unrecognized enum values resolve
// to their table's documented fallback and malformed numeric inputs are
// sanitized to 0, so the worst-case output is a valuation of 0.
type Appraiser interface {
	Name() string
	Appraise(attrs models.PropertyAttributes) models.ValuationResult
}

// ByName resolves a strategy name to an Appraiser. Unknown or empty names
// resolve to the quality-tier strategy.
func ByName(name string) Appraiser {
	if name == StrategyStratum {
		return StratumAppraiser{}
	}
	return QualityAppraiser{}
}
