package dto

import (
	"time"

	"internhub_backend/internal/models"
)

type CreateApplicationRequest struct {
	OpportunityID string `json:"opportunity_id" binding:"required" validate:"required,uuid"`
	CoverLetter   string `json:"cover_letter,omitempty" validate:"omitempty,max=4000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"required,oneof=pending reviewed shortlisted selected rejected"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	OpportunityID string                   `json:"opportunity_id"`
	CandidateID   string                   `json:"candidate_id"`
	Status        models.ApplicationStatus `json:"status"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	CandidateName string                   `json:"candidate_name,omitempty"`
	Opportunity   *OpportunityResponse     `json:"opportunity,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
}
