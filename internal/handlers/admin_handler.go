package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

// AdminHandler is the moderation and platform-settings surface. All routes
// are mounted behind the admin role check.
type AdminHandler struct {
	*BaseHandler
	moderationService services.ModerationService
	settingsService   services.SettingsService
}

func NewAdminHandler(base *BaseHandler, moderationService services.ModerationService, settingsService services.SettingsService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       base,
		moderationService: moderationService,
		settingsService:   settingsService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	moderation := rg.Group("/moderation")
	{
		moderation.GET("/opportunities", h.ListPendingOpportunities)
		moderation.POST("/opportunities/:id/approve", h.ApproveOpportunity)
		moderation.POST("/opportunities/:id/reject", h.RejectOpportunity)
		moderation.DELETE("/opportunities/:id", h.DeleteOpportunity)

		moderation.GET("/industries", h.ListUnverifiedIndustries)
		moderation.POST("/industries/:id/approve", h.ApproveIndustry)
		moderation.POST("/industries/:id/reject", h.RejectIndustry)

		moderation.GET("/institutes", h.ListUnverifiedInstitutes)
		moderation.POST("/institutes/:id/approve", h.ApproveInstitute)
		moderation.POST("/institutes/:id/reject", h.RejectInstitute)
	}

	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.PATCH("/:id/status", h.SetUserStatus)
		users.DELETE("/:id", h.DeleteUser)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.GET("/:key", h.GetSetting)
		settings.PUT("/:key", h.UpdateSetting)
	}
}

// Opportunities

func (h *AdminHandler) ListPendingOpportunities(c *gin.Context) {
	limit, offset := ParsePagination(c)
	resp, err := h.moderationService.ListPendingOpportunities(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveOpportunity(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.moderationService.ApproveOpportunity(adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity approved"})
}

func (h *AdminHandler) RejectOpportunity(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.ModerationDecisionRequest
	// Body is optional, a bare rejection is fine.
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.RejectOpportunity(adminID, c.Param("id"), req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity rejected"})
}

func (h *AdminHandler) DeleteOpportunity(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.moderationService.DeleteOpportunity(adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity removed"})
}

// Verification

func (h *AdminHandler) ListUnverifiedIndustries(c *gin.Context) {
	limit, offset := ParsePagination(c)
	profiles, err := h.moderationService.ListUnverifiedIndustries(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AdminHandler) ListUnverifiedInstitutes(c *gin.Context) {
	limit, offset := ParsePagination(c)
	profiles, err := h.moderationService.ListUnverifiedInstitutes(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AdminHandler) ApproveIndustry(c *gin.Context) {
	h.verifyIndustry(c, true)
}

func (h *AdminHandler) RejectIndustry(c *gin.Context) {
	h.verifyIndustry(c, false)
}

func (h *AdminHandler) verifyIndustry(c *gin.Context, approve bool) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.ModerationDecisionRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.VerifyIndustry(adminID, c.Param("id"), approve, req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification decision recorded"})
}

func (h *AdminHandler) ApproveInstitute(c *gin.Context) {
	h.verifyInstitute(c, true)
}

func (h *AdminHandler) RejectInstitute(c *gin.Context) {
	h.verifyInstitute(c, false)
}

func (h *AdminHandler) verifyInstitute(c *gin.Context, approve bool) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.ModerationDecisionRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.VerifyInstitute(adminID, c.Param("id"), approve, req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification decision recorded"})
}

// Accounts

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := ParsePagination(c)
	resp, err := h.moderationService.ListUsers(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Status models.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.moderationService.SetUserStatus(adminID, c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.moderationService.DeleteUser(adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// Settings

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *AdminHandler) GetSetting(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	adminID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	setting, err := h.settingsService.Update(c.Request.Context(), adminID, c.Param("key"), req.Value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
