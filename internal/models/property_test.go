package models

import (
	"math"
	"testing"
)

func TestTotalBuiltArea_SumsLevels(t *testing.T) {
	attrs := PropertyAttributes{
		BuiltAreas: []float64{40, 80, 80, 20},
	}
	if got := attrs.TotalBuiltArea(); got != 220 {
		t.Errorf("Expected total built area 220, got %f", got)
	}
}

func TestTotalBuiltArea_IgnoresMalformedLevels(t *testing.T) {
	attrs := PropertyAttributes{
		BuiltAreas: []float64{100, math.NaN(), -50},
	}
	if got := attrs.TotalBuiltArea(); got != 100 {
		t.Errorf("Expected malformed levels sanitized to 0, got %f", got)
	}
}

func TestTotalBuiltArea_Empty(t *testing.T) {
	var attrs PropertyAttributes
	if got := attrs.TotalBuiltArea(); got != 0 {
		t.Errorf("Expected 0 for no levels, got %f", got)
	}
}

func TestSanitizeArea(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"positive passes through", 120.5, 120.5},
		{"zero passes through", 0, 0},
		{"negative clamps to zero", -10, 0},
		{"NaN clamps to zero", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeArea(tt.input); got != tt.expected {
				t.Errorf("SanitizeArea(%f) = %f, expected %f", tt.input, got, tt.expected)
			}
		})
	}
}
