package models

// PropertyType identifies which valuation branch and rate table applies.
type PropertyType string

const (
	PropertyHouse      PropertyType = "house"
	PropertyApartment  PropertyType = "apartment"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
)

// LocationQuality is the 5-tier ordinal location classification used by the
// quality-tier valuation strategy.
type LocationQuality string

const (
	LocationExcellent LocationQuality = "excellent"
	LocationGood      LocationQuality = "good"
	LocationMedium    LocationQuality = "medium"
	LocationRegular   LocationQuality = "regular"
	LocationPoor      LocationQuality = "poor"
)

// Condition is the 9-tier ordinal state-of-repair classification. Each tier
// maps to a fixed depreciation multiplier, monotonically non-increasing from
// ConditionNew down to ConditionDisposal.
type Condition string

const (
	ConditionNew           Condition = "new"
	ConditionGood          Condition = "good"
	ConditionMedium        Condition = "medium"
	ConditionRegular       Condition = "regular"
	ConditionSimpleRepairs Condition = "simple_repairs"
	ConditionMediumRepairs Condition = "medium_repairs"
	ConditionMajorRepairs  Condition = "major_repairs"
	ConditionSevereDamage  Condition = "severe_damage"
	ConditionDisposal      Condition = "disposal"
)

// Topography applies to raw land only.
type Topography string

const (
	TopographyFlat          Topography = "flat"
	TopographyGentleSlope   Topography = "gentle_slope"
	TopographyModerateSlope Topography = "moderate_slope"
	TopographySteepSlope    Topography = "steep_slope"
	TopographyIrregular     Topography = "irregular"
)

// ValuationPurpose applies to raw land only.
type ValuationPurpose string

const (
	PurposeResidential  ValuationPurpose = "residential"
	PurposeCommercial   ValuationPurpose = "commercial"
	PurposeIndustrial   ValuationPurpose = "industrial"
	PurposeAgricultural ValuationPurpose = "agricultural"
)

// Stratum is the 9-tier socioeconomic neighborhood classification used by the
// stratum valuation strategy: three main classes (bajo, medio, alto), each
// split into three sub-tiers.
type Stratum string

const (
	StratumBajoBajo   Stratum = "bajo_bajo"
	StratumBajoMedio  Stratum = "bajo_medio"
	StratumBajoAlto   Stratum = "bajo_alto"
	StratumMedioBajo  Stratum = "medio_bajo"
	StratumMedioMedio Stratum = "medio_medio"
	StratumMedioAlto  Stratum = "medio_alto"
	StratumAltoBajo   Stratum = "alto_bajo"
	StratumAltoMedio  Stratum = "alto_medio"
	StratumAltoAlto   Stratum = "alto_alto"
)

// PropertyAttributes is the input record for both valuation strategies.
// All lookups on enum fields degrade to a neutral default when the value is
// unset or unrecognized; numeric fields are sanitized (NaN and negatives
// become 0) before use.
type PropertyAttributes struct {
	PropertyType     PropertyType     `json:"propertyType"`
	BuiltAreas       []float64        `json:"builtAreas,omitempty"`
	LandArea         float64          `json:"landArea"`
	LocationQuality  LocationQuality  `json:"locationQuality,omitempty"`
	GeneralCondition Condition        `json:"generalCondition,omitempty"`
	Topography       Topography       `json:"topography,omitempty"`
	ValuationPurpose ValuationPurpose `json:"valuationPurpose,omitempty"`
	Stratum          Stratum          `json:"stratum,omitempty"`
	CountryCode      string           `json:"countryCode,omitempty"`
}

// AppliedFactor records one multiplier used during a valuation, kept for
// display and audit rather than just the final number.
type AppliedFactor struct {
	Name  string  `json:"name"`
	Input string  `json:"input,omitempty"`
	Value float64 `json:"value"`
}

// ValuationResult is the output of a valuation strategy.
type ValuationResult struct {
	Strategy            string          `json:"strategy"`
	ComparativeValueUSD float64         `json:"comparativeValueUsd"`
	EstimatedValueUSD   float64         `json:"estimatedValueUsd"`
	EstimatedValueLocal float64         `json:"estimatedValueLocal"`
	Currency            string          `json:"currency"`
	ExchangeRate        float64         `json:"exchangeRate"`
	AppliedFactors      []AppliedFactor `json:"appliedFactors"`
}

// TotalBuiltArea sums the per-level floor areas, ignoring NaN and negative
// entries.
func (p PropertyAttributes) TotalBuiltArea() float64 {
	var total float64
	for _, a := range p.BuiltAreas {
		total += SanitizeArea(a)
	}
	return total
}

// SanitizeArea clamps NaN and negative area inputs to 0.
func SanitizeArea(a float64) float64 {
	if a != a || a < 0 {
		return 0
	}
	return a
}
