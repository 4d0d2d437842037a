package dto

import "time"

type ModerationDecisionRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required" validate:"required"`
}

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Version   int       `json:"version"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserSummaryResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserSummaryResponse `json:"users"`
	Total int64                 `json:"total"`
}

type AuditLogResponse struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
