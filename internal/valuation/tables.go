package valuation

import "github.com/inmoval/api/internal/models"

// Base rate constants shared by the quality-tier strategy.
const (
	// LandBasePricePerSqm is the flat USD/m² rate for the raw-land branch.
	// It deliberately ignores the per-country table used by the stratum
	// strategy; the two strategies keep separate pricing sources.
	LandBasePricePerSqm = 80.0

	// LandUnitRate is the smaller USD/m² rate applied to the land component
	// of an improved property.
	LandUnitRate = 120.0

	// GenericBuiltRate is the fallback USD/m² rate for an unrecognized
	// property type.
	GenericBuiltRate = 800.0
)

// builtRates maps property type to the construction base rate in USD/m².
var builtRates = map[models.PropertyType]float64{
	models.PropertyHouse:      850,
	models.PropertyApartment:  950,
	models.PropertyCommercial: 1100,
}

// locationFactors is the 5-tier location quality table. Unknown tiers fall
// back to the medium baseline (1.0).
var locationFactors = map[models.LocationQuality]float64{
	models.LocationExcellent: 1.25,
	models.LocationGood:      1.10,
	models.LocationMedium:    1.00,
	models.LocationRegular:   0.85,
	models.LocationPoor:      0.70,
}

// conditionFactors is the 9-tier depreciation table, monotonically
// non-increasing from new (1.15) to disposal (0.20). Unknown tiers fall back
// to the medium baseline.
var conditionFactors = map[models.Condition]float64{
	models.ConditionNew:           1.15,
	models.ConditionGood:          1.05,
	models.ConditionMedium:        0.95,
	models.ConditionRegular:       0.85,
	models.ConditionSimpleRepairs: 0.75,
	models.ConditionMediumRepairs: 0.60,
	models.ConditionMajorRepairs:  0.45,
	models.ConditionSevereDamage:  0.30,
	models.ConditionDisposal:      0.20,
}

// topographyFactors adjusts raw-land value for terrain. Unknown values fall
// back to neutral (1.0).
var topographyFactors = map[models.Topography]float64{
	models.TopographyFlat:          1.12,
	models.TopographyGentleSlope:   1.03,
	models.TopographyModerateSlope: 0.93,
	models.TopographySteepSlope:    0.80,
	models.TopographyIrregular:     0.75,
}

// purposeFactors adjusts raw-land value for intended use. Residential is the
// 0.65 baseline; unknown values fall back to it.
var purposeFactors = map[models.ValuationPurpose]float64{
	models.PurposeResidential:  0.65,
	models.PurposeCommercial:   1.28,
	models.PurposeIndustrial:   1.24,
	models.PurposeAgricultural: 0.43,
}

// stratumAdjustments is the second-phase adjustment applied by the stratum
// strategy as final = comparative * (1 + adjustment). The baseline is
// alto_bajo (0.00), not the highest tier; the table is a fixed lookup and
// must not be re-derived from tier ordering.
var stratumAdjustments = map[models.Stratum]float64{
	models.StratumBajoBajo:   -0.40,
	models.StratumBajoMedio:  -0.33,
	models.StratumBajoAlto:   -0.25,
	models.StratumMedioBajo:  -0.18,
	models.StratumMedioMedio: -0.10,
	models.StratumMedioAlto:  -0.05,
	models.StratumAltoBajo:   0.00,
	models.StratumAltoMedio:  0.04,
	models.StratumAltoAlto:   0.07,
}

// CountryEconomics holds the per-country pricing row used by the stratum
// strategy.
type CountryEconomics struct {
	BasePricePerSqm float64
	EconomicFactor  float64
	ExchangeRate    float64
	Currency        string
}

// countryTable keys are ISO 3166-1 alpha-2 codes.
var countryTable = map[string]CountryEconomics{
	"CO": {BasePricePerSqm: 650, EconomicFactor: 0.95, ExchangeRate: 4100, Currency: "COP"},
	"MX": {BasePricePerSqm: 780, EconomicFactor: 1.00, ExchangeRate: 17.20, Currency: "MXN"},
	"PE": {BasePricePerSqm: 620, EconomicFactor: 0.92, ExchangeRate: 3.75, Currency: "PEN"},
	"EC": {BasePricePerSqm: 580, EconomicFactor: 0.90, ExchangeRate: 1.00, Currency: "USD"},
	"PA": {BasePricePerSqm: 980, EconomicFactor: 1.05, ExchangeRate: 1.00, Currency: "PAB"},
	"DO": {BasePricePerSqm: 720, EconomicFactor: 0.93, ExchangeRate: 59.50, Currency: "DOP"},
	"US": {BasePricePerSqm: 1450, EconomicFactor: 1.20, ExchangeRate: 1.00, Currency: "USD"},
}

// defaultCountry is the fallback row for unrecognized country codes.
var defaultCountry = CountryEconomics{
	BasePricePerSqm: 700,
	EconomicFactor:  0.90,
	ExchangeRate:    1.00,
	Currency:        "USD",
}

// BuiltRate returns the construction base rate for a property type, falling
// back to the generic rate.
func BuiltRate(t models.PropertyType) float64 {
	if r, ok := builtRates[t]; ok {
		return r
	}
	return GenericBuiltRate
}

// LocationFactor returns the multiplier for a location quality tier, falling
// back to 1.0.
func LocationFactor(q models.LocationQuality) float64 {
	if f, ok := locationFactors[q]; ok {
		return f
	}
	return 1.0
}

// ConditionFactor returns the depreciation multiplier for a condition tier,
// falling back to the medium tier.
func ConditionFactor(c models.Condition) float64 {
	if f, ok := conditionFactors[c]; ok {
		return f
	}
	return conditionFactors[models.ConditionMedium]
}

// TopographyFactor returns the terrain multiplier, falling back to 1.0.
func TopographyFactor(t models.Topography) float64 {
	if f, ok := topographyFactors[t]; ok {
		return f
	}
	return 1.0
}

// PurposeFactor returns the intended-use multiplier, falling back to the
// residential baseline.
func PurposeFactor(p models.ValuationPurpose) float64 {
	if f, ok := purposeFactors[p]; ok {
		return f
	}
	return purposeFactors[models.PurposeResidential]
}

// StratumAdjustment returns the adjustment for a stratum tier, falling back
// to the alto_bajo baseline (0.00).
func StratumAdjustment(s models.Stratum) float64 {
	if a, ok := stratumAdjustments[s]; ok {
		return a
	}
	return 0.0
}

// CountryFor returns the economic row for a country code, falling back to the
// default row.
func CountryFor(code string) CountryEconomics {
	if c, ok := countryTable[code]; ok {
		return c
	}
	return defaultCountry
}
