package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/middleware"
	"github.com/inmoval/api/internal/services"
)

// setupValuationTestRouter creates a test router with middleware and the
// valuation handler backed by the real (pure) valuation service.
func setupValuationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")

	handler := NewValuationHandler(services.NewValuationService(log))

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.POST("/api/v1/valuations", handler.Appraise)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAppraise_QualityStrategy(t *testing.T) {
	router := setupValuationTestRouter()

	w := postJSON(t, router, "/api/v1/valuations", map[string]interface{}{
		"propertyType":     "house",
		"builtAreas":       []float64{120},
		"landArea":         200,
		"locationQuality":  "good",
		"generalCondition": "new",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ValuationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "quality", resp.Valuation.Strategy)
	assert.InDelta(t, 151400.0, resp.Valuation.EstimatedValueUSD, 200.0)
	assert.NotEmpty(t, resp.Valuation.AppliedFactors)
}

func TestAppraise_StratumStrategy(t *testing.T) {
	router := setupValuationTestRouter()

	w := postJSON(t, router, "/api/v1/valuations", map[string]interface{}{
		"propertyType":     "apartment",
		"builtAreas":       []float64{85},
		"generalCondition": "good",
		"stratum":          "medio_medio",
		"countryCode":      "CO",
		"strategy":         "stratum",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ValuationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stratum", resp.Valuation.Strategy)
	assert.Equal(t, "COP", resp.Valuation.Currency)
	assert.Equal(t, resp.Valuation.EstimatedValueUSD*resp.Valuation.ExchangeRate, resp.Valuation.EstimatedValueLocal)
}

func TestAppraise_MissingPropertyType(t *testing.T) {
	router := setupValuationTestRouter()

	w := postJSON(t, router, "/api/v1/valuations", map[string]interface{}{
		"builtAreas": []float64{120},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAppraise_InvalidStrategyRejected(t *testing.T) {
	router := setupValuationTestRouter()

	w := postJSON(t, router, "/api/v1/valuations", map[string]interface{}{
		"propertyType": "house",
		"strategy":     "hedonic",
	})

	// Strategy is constrained by the oneof binding tag.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppraise_UnknownEnumValuesDegradeGracefully(t *testing.T) {
	router := setupValuationTestRouter()

	w := postJSON(t, router, "/api/v1/valuations", map[string]interface{}{
		"propertyType":     "igloo",
		"builtAreas":       []float64{40},
		"locationQuality":  "arctic",
		"generalCondition": "frozen",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ValuationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Valuation.EstimatedValueUSD, 0.0)
}

func TestAppraise_MalformedBody(t *testing.T) {
	router := setupValuationTestRouter()

	req := httptest.NewRequest("POST", "/api/v1/valuations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
