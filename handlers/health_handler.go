package handlers

import (
	"net/http"

	"github.com/AsbestosServicesHampshire/ash-backend/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the liveness endpoint.
type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// CheckHealth returns the current service health.
// @Summary Health check
// @Produce json
// @Success 200 {object} types.HealthCheck
// @Router /health [get]
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.CheckHealth(c.Request.Context()))
}
