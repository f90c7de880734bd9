package valuation

import (
	"github.com/inmoval/api/internal/models"
)

// StratumAppraiser is the two-phase valuation strategy built on the 9-tier
// socioeconomic stratum classification. Phase one computes a comparative
// value from the per-country base rate, condition and economic factor; phase
// two applies the stratum adjustment on top. The final value is also
// converted to the country's local currency at a fixed rate.
type StratumAppraiser struct{}

func (StratumAppraiser) Name() string { return StrategyStratum }

func (StratumAppraiser) Appraise(attrs models.PropertyAttributes) models.ValuationResult {
	// Raw land has no built area; the comparative base falls back to the
	// parcel area.
	area := attrs.TotalBuiltArea()
	if attrs.PropertyType == models.PropertyLand {
		area = models.SanitizeArea(attrs.LandArea)
	}

	country := CountryFor(attrs.CountryCode)
	condition := ConditionFactor(attrs.GeneralCondition)
	adjustment := StratumAdjustment(attrs.Stratum)

	comparative := area * country.BasePricePerSqm * condition * country.EconomicFactor
	final := comparative * (1 + adjustment)

	return models.ValuationResult{
		Strategy:            StrategyStratum,
		ComparativeValueUSD: comparative,
		EstimatedValueUSD:   final,
		EstimatedValueLocal: final * country.ExchangeRate,
		Currency:            country.Currency,
		ExchangeRate:        country.ExchangeRate,
		AppliedFactors: []models.AppliedFactor{
			{Name: "country_base_price_per_sqm", Input: attrs.CountryCode, Value: country.BasePricePerSqm},
			{Name: "general_condition", Input: string(attrs.GeneralCondition), Value: condition},
			{Name: "economic_factor", Input: attrs.CountryCode, Value: country.EconomicFactor},
			{Name: "stratum_adjustment", Input: string(attrs.Stratum), Value: adjustment},
			{Name: "exchange_rate", Input: country.Currency, Value: country.ExchangeRate},
		},
	}
}
