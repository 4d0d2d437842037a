package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/platform", h.PlatformStats)
}

func (h *AnalyticsHandler) PlatformStats(c *gin.Context) {
	resp, err := h.analyticsService.PlatformStats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
