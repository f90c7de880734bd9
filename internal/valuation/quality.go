package valuation

import (
	"github.com/inmoval/api/internal/models"
)

// QualityAppraiser is the single-chain valuation strategy built on the 5-tier
// location quality classification. Raw land is priced from a flat base rate
// with terrain and intended-use adjustments; improved property combines a
// construction component and a land component, then applies the land-size
// curve to the total.
type QualityAppraiser struct{}

func (QualityAppraiser) Name() string { return StrategyQuality }

func (a QualityAppraiser) Appraise(attrs models.PropertyAttributes) models.ValuationResult {
	if attrs.PropertyType == models.PropertyLand {
		return a.appraiseLand(attrs)
	}
	return a.appraiseImproved(attrs)
}

func (QualityAppraiser) appraiseLand(attrs models.PropertyAttributes) models.ValuationResult {
	landArea := models.SanitizeArea(attrs.LandArea)
	topo := TopographyFactor(attrs.Topography)
	purpose := PurposeFactor(attrs.ValuationPurpose)

	value := landArea * LandBasePricePerSqm * topo * purpose

	return models.ValuationResult{
		Strategy:            StrategyQuality,
		ComparativeValueUSD: value,
		EstimatedValueUSD:   value,
		EstimatedValueLocal: value,
		Currency:            "USD",
		ExchangeRate:        1.0,
		AppliedFactors: []models.AppliedFactor{
			{Name: "land_base_price_per_sqm", Value: LandBasePricePerSqm},
			{Name: "topography", Input: string(attrs.Topography), Value: topo},
			{Name: "valuation_purpose", Input: string(attrs.ValuationPurpose), Value: purpose},
		},
	}
}

func (QualityAppraiser) appraiseImproved(attrs models.PropertyAttributes) models.ValuationResult {
	builtArea := attrs.TotalBuiltArea()
	landArea := models.SanitizeArea(attrs.LandArea)

	rate := BuiltRate(attrs.PropertyType)
	location := LocationFactor(attrs.LocationQuality)
	condition := ConditionFactor(attrs.GeneralCondition)
	sizeFactor := LandSizeFactor(landArea)

	constructionValue := builtArea * rate * location * condition
	landValue := landArea * LandUnitRate * location
	value := (constructionValue + landValue) * sizeFactor

	return models.ValuationResult{
		Strategy:            StrategyQuality,
		ComparativeValueUSD: constructionValue + landValue,
		EstimatedValueUSD:   value,
		EstimatedValueLocal: value,
		Currency:            "USD",
		ExchangeRate:        1.0,
		AppliedFactors: []models.AppliedFactor{
			{Name: "built_rate_per_sqm", Input: string(attrs.PropertyType), Value: rate},
			{Name: "location_quality", Input: string(attrs.LocationQuality), Value: location},
			{Name: "general_condition", Input: string(attrs.GeneralCondition), Value: condition},
			{Name: "land_unit_rate", Value: LandUnitRate},
			{Name: "land_size_factor", Value: sizeFactor},
		},
	}
}
