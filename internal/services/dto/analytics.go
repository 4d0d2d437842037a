package dto

type RegistrationStatsResponse struct {
	Total     int64            `json:"total"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"this_week"`
	ThisMonth int64            `json:"this_month"`
	ByRole    map[string]int64 `json:"by_role"`
}

type PlatformStatsResponse struct {
	Registrations        RegistrationStatsResponse `json:"registrations"`
	OpportunitiesByType  map[string]int64          `json:"opportunities_by_type"`
	ActiveOpportunities  int64                     `json:"active_opportunities"`
	ApplicationsByStatus map[string]int64          `json:"applications_by_status"`
	ActiveSubscriptions  int64                     `json:"active_subscriptions"`
	MessagesTotal        int64                     `json:"messages_total"`
}
