// handlers/property.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	apperrors "property-lookup/internal/errors"
	"property-lookup/internal/models"

	"github.com/gin-gonic/gin"
)

// PropertyLookupService is what the property handler needs from the service layer
type PropertyLookupService interface {
	LookupProperty(ctx context.Context, req *models.LookupRequest) (*models.PropertyResult, error)
}

type PropertyHandler struct {
	propertyService PropertyLookupService
}

func NewPropertyHandler(propertyService PropertyLookupService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// LookupProperty godoc
// @Summary Look up a Redfin listing
// @Description Resolve a Redfin listing URL and return its address plus the full listing details
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body models.LookupRequest true "Listing URL"
// @Success 201 {object} models.LookupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/property [post]
func (h *PropertyHandler) LookupProperty(c *gin.Context) {
	var req models.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidationError(fmt.Sprintf("invalid lookup body: %v", err), err))
		return
	}

	// Provider calls are not aborted when the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.propertyService.LookupProperty(ctx, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, models.LookupResponse{
		Status: "success",
		Data:   result,
	})
}
