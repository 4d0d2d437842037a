package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{BaseHandler: base, subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	{
		subs.GET("/plans", h.ListPlans)
		subs.POST("", h.Subscribe)
		subs.GET("/mine", h.GetOwn)
		subs.DELETE("/mine", h.Cancel)
	}

	admin := rg.Group("/subscriptions")
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/plans", h.CreatePlan)
	}
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.subscriptionService.CreatePlan(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.subscriptionService.Subscribe(userID, req.PlanID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SubscriptionHandler) GetOwn(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.GetOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.subscriptionService.Cancel(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription cancelled, premium lasts until the period ends"})
}
