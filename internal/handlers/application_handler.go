package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	candidate := rg.Group("/applications")
	candidate.Use(middleware.RequireRoles(models.UserRoleCandidate))
	{
		candidate.POST("", h.Apply)
		candidate.GET("/mine", h.ListOwn)
		candidate.DELETE("/:id", h.Withdraw)
	}

	industry := rg.Group("/applications")
	industry.Use(middleware.RequireRoles(models.UserRoleIndustry))
	{
		industry.PATCH("/:id/status", h.UpdateStatus)
		industry.GET("/opportunity/:id", h.ListForOpportunity)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(userID, middleware.IsPremium(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application withdrawn"})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListForOpportunity(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	limit, offset := ParsePagination(c)
	resp, err := h.applicationService.ListForOpportunity(userID, c.Param("id"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	limit, offset := ParsePagination(c)
	resp, err := h.applicationService.ListOwn(userID, middleware.IsPremium(c), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
