package dto

import "internhub_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,oneof=candidate industry institute"`

	// Role-specific profile fields
	CompanyName   string `json:"company_name,omitempty"`
	InstituteName string `json:"institute_name,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	City          string `json:"city,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	UserID       string          `json:"user_id"`
	Role         models.UserRole `json:"role"`
	Premium      bool            `json:"premium"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required" validate:"required"`
}
