package dto

import (
	"time"

	"internhub_backend/internal/models"
)

type CreatePlanRequest struct {
	Name         string   `json:"name" binding:"required" validate:"required,min=2"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"min=0"`
	DurationDays int      `json:"duration_days" binding:"required" validate:"required,min=1"`
	Features     []string `json:"features,omitempty"`
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required" validate:"required,uuid"`
}

type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"duration_days"`
	Features     []string `json:"features,omitempty"`
}

type SubscriptionResponse struct {
	ID        string                    `json:"id"`
	PlanID    string                    `json:"plan_id"`
	PlanName  string                    `json:"plan_name,omitempty"`
	Status    models.SubscriptionStatus `json:"status"`
	StartDate time.Time                 `json:"start_date"`
	EndDate   time.Time                 `json:"end_date"`
}
