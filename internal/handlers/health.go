package handlers

import (
	"net/http"
	"time"

	"property-lookup/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health godoc
// @Summary Health check
// @Description Report that the service is up
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}
