package dto

import (
	"time"

	"internhub_backend/internal/models"
)

type UpdateIndustryProfileRequest struct {
	CompanyName     *string `json:"company_name,omitempty"`
	ContactPerson   *string `json:"contact_person,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Website         *string `json:"website,omitempty" validate:"omitempty,url"`
	City            *string `json:"city,omitempty"`
	Description     *string `json:"description,omitempty"`
	ShowCompanyName *bool   `json:"show_company_name,omitempty"`
}

// IndustryProfileResponse is the owner's own view; DisclosedName carries what
// other viewers see given their premium status.
type IndustryProfileResponse struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"company_name,omitempty"`
	DisclosedName string     `json:"disclosed_name"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Website       string     `json:"website,omitempty"`
	City          string     `json:"city,omitempty"`
	Description   string     `json:"description,omitempty"`
	IsVerified    bool       `json:"is_verified"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	ShowCompanyName bool     `json:"show_company_name,omitempty"`
}

type SkillInput struct {
	Name            string `json:"name" binding:"required" validate:"required"`
	Level           int    `json:"level" validate:"min=0,max=10"`
	YearsExperience int    `json:"years_experience" validate:"min=0"`
}

type UpdateCandidateProfileRequest struct {
	FirstName *string      `json:"first_name,omitempty"`
	LastName  *string      `json:"last_name,omitempty"`
	Phone     *string      `json:"phone,omitempty"`
	City      *string      `json:"city,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	Languages []string     `json:"languages,omitempty"`
	IsPublic  *bool        `json:"is_public,omitempty"`
	Skills    []SkillInput `json:"skills,omitempty"`
}

type SkillResponse struct {
	Name            string                  `json:"name"`
	Level           int                     `json:"level"`
	Proficiency     models.SkillProficiency `json:"proficiency"`
	YearsExperience int                     `json:"years_experience"`
}

type CandidateProfileResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	City      string          `json:"city,omitempty"`
	Bio       string          `json:"bio,omitempty"`
	Languages []string        `json:"languages,omitempty"`
	IsPublic  bool            `json:"is_public"`
	Skills    []SkillResponse `json:"skills"`
}

type UpdateInstituteProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Website *string `json:"website,omitempty" validate:"omitempty,url"`
	City    *string `json:"city,omitempty"`
}

type InstituteProfileResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Website    string     `json:"website,omitempty"`
	City       string     `json:"city,omitempty"`
	IsVerified bool       `json:"is_verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}
