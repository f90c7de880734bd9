package services

import (
	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/models"
	"github.com/inmoval/api/internal/valuation"
)

// ValuationService defines the interface for property valuation operations.
type ValuationService interface {
	// Appraise computes an estimate for the given attributes using the
	// named strategy ("quality" or "stratum"; unknown names fall back to
	// quality). It never fails: malformed inputs degrade to documented
	// defaults inside the calculator, and the worst case is a zero value.
	Appraise(attrs models.PropertyAttributes, strategy string) models.ValuationResult
}

// valuationService is the concrete implementation of ValuationService.
type valuationService struct {
	log *logger.Logger
}

// NewValuationService creates a new instance of ValuationService.
func NewValuationService(log *logger.Logger) ValuationService {
	return &valuationService{
		log: log,
	}
}

func (s *valuationService) Appraise(attrs models.PropertyAttributes, strategy string) models.ValuationResult {
	appraiser := valuation.ByName(strategy)

	s.log.Info("Appraising property", map[string]interface{}{
		"strategy":      appraiser.Name(),
		"property_type": attrs.PropertyType,
		"built_area":    attrs.TotalBuiltArea(),
		"land_area":     attrs.LandArea,
		"country":       attrs.CountryCode,
	})

	result := appraiser.Appraise(attrs)

	s.log.Info("Appraisal complete", map[string]interface{}{
		"strategy":        result.Strategy,
		"estimated_usd":   result.EstimatedValueUSD,
		"estimated_local": result.EstimatedValueLocal,
		"currency":        result.Currency,
	})

	return result
}
