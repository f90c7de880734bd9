package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inmoval/api/internal/models"
)

func TestStratumAppraiser_TwoPhaseComposition(t *testing.T) {
	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyApartment,
		BuiltAreas:       []float64{60, 25},
		GeneralCondition: models.ConditionGood,
		Stratum:          models.StratumMedioMedio,
		CountryCode:      "CO",
	}

	result := StratumAppraiser{}.Appraise(attrs)

	comparative := 85.0 * 650.0 * 1.05 * 0.95
	final := comparative * (1 - 0.10)

	assert.InDelta(t, comparative, result.ComparativeValueUSD, 1e-6)
	assert.InDelta(t, final, result.EstimatedValueUSD, 1e-6)
	assert.Equal(t, StrategyStratum, result.Strategy)
	assert.Equal(t, "COP", result.Currency)
}

func TestStratumAppraiser_LocalCurrencyRoundTrip(t *testing.T) {
	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyHouse,
		BuiltAreas:       []float64{140},
		GeneralCondition: models.ConditionNew,
		Stratum:          models.StratumAltoAlto,
		CountryCode:      "DO",
	}

	result := StratumAppraiser{}.Appraise(attrs)

	// Exact, no rounding beyond float arithmetic.
	assert.Equal(t, result.EstimatedValueUSD*result.ExchangeRate, result.EstimatedValueLocal)
	assert.Equal(t, 59.50, result.ExchangeRate)
}

func TestStratumAppraiser_BaselineStratumIsNeutral(t *testing.T) {
	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyApartment,
		BuiltAreas:       []float64{75},
		GeneralCondition: models.ConditionMedium,
		CountryCode:      "MX",
	}

	attrs.Stratum = models.StratumAltoBajo
	baseline := StratumAppraiser{}.Appraise(attrs)

	// alto_bajo is the zero-adjustment anchor: comparative == final.
	assert.Equal(t, baseline.ComparativeValueUSD, baseline.EstimatedValueUSD)

	attrs.Stratum = models.StratumBajoBajo
	lowest := StratumAppraiser{}.Appraise(attrs)
	assert.InDelta(t, baseline.ComparativeValueUSD*0.60, lowest.EstimatedValueUSD, 1e-6)
}

func TestStratumAppraiser_LandUsesParcelArea(t *testing.T) {
	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyLand,
		LandArea:         400,
		GeneralCondition: models.ConditionMedium,
		Stratum:          models.StratumAltoBajo,
		CountryCode:      "EC",
	}

	result := StratumAppraiser{}.Appraise(attrs)

	expected := 400.0 * 580.0 * 0.95 * 0.90
	assert.InDelta(t, expected, result.EstimatedValueUSD, 1e-6)
}

func TestStratumAppraiser_UnknownCountryFallsBack(t *testing.T) {
	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyApartment,
		BuiltAreas:       []float64{50},
		GeneralCondition: models.ConditionMedium,
		Stratum:          models.StratumAltoBajo,
		CountryCode:      "XX",
	}

	result := StratumAppraiser{}.Appraise(attrs)

	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, 1.0, result.ExchangeRate)
	assert.Equal(t, result.EstimatedValueUSD, result.EstimatedValueLocal)
}

func TestByName_StrategySelection(t *testing.T) {
	assert.Equal(t, StrategyQuality, ByName("quality").Name())
	assert.Equal(t, StrategyStratum, ByName("stratum").Name())
	// Unknown and empty both resolve to the default strategy.
	assert.Equal(t, StrategyQuality, ByName("").Name())
	assert.Equal(t, StrategyQuality, ByName("hedonic").Name())
}
