package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/inmoval/api/internal/errors"
	"github.com/inmoval/api/internal/middleware"
	"github.com/inmoval/api/internal/models"
	"github.com/inmoval/api/internal/services"
)

// ComparableHandler handles comparable-search HTTP requests.
type ComparableHandler struct {
	service services.ComparableService
}

// NewComparableHandler creates a new ComparableHandler instance.
func NewComparableHandler(service services.ComparableService) *ComparableHandler {
	return &ComparableHandler{
		service: service,
	}
}

// SearchRequest is the body for POST /api/v1/comparables/search.
type SearchRequest struct {
	Lat            float64 `json:"lat" binding:"min=-90,max=90"`
	Lng            float64 `json:"lng" binding:"min=-180,max=180"`
	PropertyType   string  `json:"property_type" binding:"required"`
	Area           float64 `json:"area,omitempty" binding:"omitempty,gt=0"`
	Country        string  `json:"country,omitempty"`
	IncludePortals bool    `json:"include_portals,omitempty"`
}

// SearchResponse carries the ranked rows under data and everything about how
// they were found under metadata.
type SearchResponse struct {
	Data     []models.RankedComparable `json:"data"`
	Metadata services.SearchMetadata   `json:"metadata"`
}

// Search handles POST /api/v1/comparables/search.
func (h *ComparableHandler) Search(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing comparable search", map[string]interface{}{
			"lat":             req.Lat,
			"lng":             req.Lng,
			"property_type":   req.PropertyType,
			"country":         req.Country,
			"include_portals": req.IncludePortals,
		})
	}

	comparables, metadata, err := h.service.Search(c.Request.Context(), services.SearchQuery{
		Latitude:       req.Lat,
		Longitude:      req.Lng,
		PropertyType:   req.PropertyType,
		Area:           req.Area,
		Country:        req.Country,
		IncludePortals: req.IncludePortals,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCoordinates) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to search comparables", err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Data:     comparables,
		Metadata: metadata,
	})
}
