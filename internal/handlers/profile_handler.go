package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("/me", h.GetOwn)
		profiles.PUT("/me", h.UpdateOwn)
		profiles.GET("/industries/:id", h.GetIndustry)
		profiles.GET("/candidates/:id", h.GetCandidate)
	}
}

// GetOwn returns the caller's profile for their role.
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	switch middleware.GetRole(c) {
	case models.UserRoleIndustry:
		resp, err := h.profileService.GetOwnIndustryProfile(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case models.UserRoleInstitute:
		resp, err := h.profileService.GetOwnInstituteProfile(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	default:
		resp, err := h.profileService.GetOwnCandidateProfile(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	switch middleware.GetRole(c) {
	case models.UserRoleIndustry:
		var req dto.UpdateIndustryProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		resp, err := h.profileService.UpdateIndustryProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case models.UserRoleInstitute:
		var req dto.UpdateInstituteProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		resp, err := h.profileService.UpdateInstituteProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	default:
		var req dto.UpdateCandidateProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		resp, err := h.profileService.UpdateCandidateProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetIndustry shows an industry profile to any authenticated viewer, with the
// company name disclosed per the viewer's premium status.
func (h *ProfileHandler) GetIndustry(c *gin.Context) {
	resp, err := h.profileService.GetIndustryProfile(c.Param("id"), middleware.IsPremium(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetCandidate(c *gin.Context) {
	resp, err := h.profileService.GetCandidateProfile(c.Param("id"), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
