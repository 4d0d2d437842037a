package services

import (
	"internhub_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	OpportunityService  OpportunityService
	ApplicationService  ApplicationService
	ChatService         ChatService
	SubscriptionService SubscriptionService
	NotificationService NotificationService
	ModerationService   ModerationService
	AnalyticsService    AnalyticsService
	SettingsService     SettingsService
	EmailService        email.Provider
}
