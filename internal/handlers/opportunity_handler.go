package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

type OpportunityHandler struct {
	*BaseHandler
	opportunityService services.OpportunityService
}

func NewOpportunityHandler(base *BaseHandler, opportunityService services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{BaseHandler: base, opportunityService: opportunityService}
}

func (h *OpportunityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	opps := rg.Group("/opportunities")
	{
		opps.GET("", h.List)
		opps.GET("/:id", h.Get)
	}

	industry := rg.Group("/opportunities")
	industry.Use(middleware.RequireRoles(models.UserRoleIndustry))
	{
		industry.POST("", h.Create)
		industry.PUT("/:id", h.Update)
		industry.GET("/mine/list", h.ListOwn)
		industry.GET("/mine/quota", h.QuotaStatus)
	}

	del := rg.Group("/opportunities")
	del.Use(middleware.RequireRoles(models.UserRoleIndustry, models.UserRoleAdmin))
	{
		del.DELETE("/:id", h.Delete)
	}
}

func (h *OpportunityHandler) Create(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.opportunityService.Create(userID, middleware.IsPremium(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OpportunityHandler) Update(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.opportunityService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) Delete(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	isAdmin := middleware.GetRole(c) == models.UserRoleAdmin
	if err := h.opportunityService.Delete(userID, isAdmin, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity deleted"})
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	resp, err := h.opportunityService.Get(c.Param("id"), middleware.IsPremium(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) List(c *gin.Context) {
	var req dto.ListOpportunitiesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.opportunityService.List(&req, middleware.IsPremium(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) ListOwn(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	limit, offset := ParsePagination(c)
	resp, err := h.opportunityService.ListOwn(userID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) QuotaStatus(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.opportunityService.QuotaStatus(userID, middleware.IsPremium(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
