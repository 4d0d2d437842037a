package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	OpportunityHandler  *OpportunityHandler
	ApplicationHandler  *ApplicationHandler
	ChatHandler         *ChatHandler
	SubscriptionHandler *SubscriptionHandler
	NotificationHandler *NotificationHandler
	AdminHandler        *AdminHandler
	AnalyticsHandler    *AnalyticsHandler
	HealthHandler       *HealthHandler
}
