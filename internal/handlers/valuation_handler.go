package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/inmoval/api/internal/errors"
	"github.com/inmoval/api/internal/middleware"
	"github.com/inmoval/api/internal/models"
	"github.com/inmoval/api/internal/services"
)

// ValuationHandler handles valuation HTTP requests.
type ValuationHandler struct {
	service services.ValuationService
}

// NewValuationHandler creates a new ValuationHandler instance.
func NewValuationHandler(service services.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		service: service,
	}
}

// ValuationRequest is the body for POST /api/v1/valuations. Enum fields are
// free strings on purpose: unrecognized values degrade to neutral defaults
// inside the calculator instead of rejecting the request.
type ValuationRequest struct {
	PropertyType     string    `json:"propertyType" binding:"required"`
	BuiltAreas       []float64 `json:"builtAreas,omitempty"`
	LandArea         float64   `json:"landArea,omitempty"`
	LocationQuality  string    `json:"locationQuality,omitempty"`
	GeneralCondition string    `json:"generalCondition,omitempty"`
	Topography       string    `json:"topography,omitempty"`
	ValuationPurpose string    `json:"valuationPurpose,omitempty"`
	Stratum          string    `json:"stratum,omitempty"`
	CountryCode      string    `json:"countryCode,omitempty"`
	Strategy         string    `json:"strategy,omitempty" binding:"omitempty,oneof=quality stratum"`
}

// ValuationResponse wraps the valuation result.
type ValuationResponse struct {
	Valuation models.ValuationResult `json:"valuation"`
}

// Appraise handles POST /api/v1/valuations.
func (h *ValuationHandler) Appraise(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing valuation request", map[string]interface{}{
			"property_type": req.PropertyType,
			"strategy":      req.Strategy,
			"country":       req.CountryCode,
		})
	}

	attrs := models.PropertyAttributes{
		PropertyType:     models.PropertyType(req.PropertyType),
		BuiltAreas:       req.BuiltAreas,
		LandArea:         req.LandArea,
		LocationQuality:  models.LocationQuality(req.LocationQuality),
		GeneralCondition: models.Condition(req.GeneralCondition),
		Topography:       models.Topography(req.Topography),
		ValuationPurpose: models.ValuationPurpose(req.ValuationPurpose),
		Stratum:          models.Stratum(req.Stratum),
		CountryCode:      req.CountryCode,
	}

	result := h.service.Appraise(attrs, req.Strategy)

	c.JSON(http.StatusOK, ValuationResponse{Valuation: result})
}
