package dto

import (
	"time"

	"internhub_backend/internal/models"
)

type CreateOpportunityRequest struct {
	Title       string                 `json:"title" binding:"required" validate:"required,min=3"`
	Description string                 `json:"description,omitempty"`
	Type        models.OpportunityType `json:"type" binding:"required" validate:"required,oneof=internship project freelancing"`
	CategoryID  string                 `json:"category_id,omitempty"`
	LocationID  string                 `json:"location_id,omitempty"`
	Stipend     *float64               `json:"stipend,omitempty" validate:"omitempty,min=0"`
	Remote      bool                   `json:"remote"`
}

type UpdateOpportunityRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	LocationID  *string  `json:"location_id,omitempty"`
	Stipend     *float64 `json:"stipend,omitempty" validate:"omitempty,min=0"`
	Remote      *bool    `json:"remote,omitempty"`
}

type ListOpportunitiesRequest struct {
	Type       models.OpportunityType `form:"type" validate:"omitempty,oneof=internship project freelancing"`
	CategoryID string                 `form:"category_id"`
	LocationID string                 `form:"location_id"`
	Page       int                    `form:"page" validate:"omitempty,min=1"`
	PageSize   int                    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// OpportunityResponse discloses the company name through the visibility
// policy: CompanyName may be the real name or the redacted label.
type OpportunityResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Type        models.OpportunityType `json:"type"`
	IsActive    bool                   `json:"is_active"`
	CompanyName string                 `json:"company_name"`
	IndustryID  string                 `json:"industry_id"`
	CategoryID  string                 `json:"category_id,omitempty"`
	LocationID  string                 `json:"location_id,omitempty"`
	Stipend     *float64               `json:"stipend,omitempty"`
	Remote      bool                   `json:"remote"`
	Views       int                    `json:"views"`
	CreatedAt   time.Time              `json:"created_at"`
}

type OpportunityListResponse struct {
	Opportunities []OpportunityResponse `json:"opportunities"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// QuotaStatusResponse reports remaining monthly quota per opportunity type.
type QuotaStatusResponse struct {
	Premium   bool           `json:"premium"`
	Remaining map[string]int `json:"remaining"`
}
