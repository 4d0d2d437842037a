package services

import (
	"context"
	"time"

	"internhub_backend/internal/cache"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

const statsCacheTTL = 5 * time.Minute

type AnalyticsService interface {
	PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
	oppRepo       repositories.OpportunityRepository
	appRepo       repositories.ApplicationRepository
	subRepo       repositories.SubscriptionRepository
	msgRepo       repositories.MessageRepository
	cache         *cache.Cache
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	oppRepo repositories.OpportunityRepository,
	appRepo repositories.ApplicationRepository,
	subRepo repositories.SubscriptionRepository,
	msgRepo repositories.MessageRepository,
	c *cache.Cache,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		oppRepo:       oppRepo,
		appRepo:       appRepo,
		subRepo:       subRepo,
		msgRepo:       msgRepo,
		cache:         c,
	}
}

// PlatformStats aggregates the admin dashboard counters. Results are cached
// for a short window, the dashboard tolerates slightly stale numbers.
func (s *AnalyticsServiceImpl) PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	var cached dto.PlatformStatsResponse
	if err := s.cache.Get(ctx, "analytics:platform", &cached); err == nil {
		return &cached, nil
	}

	regs, err := s.analyticsRepo.GetRegistrationStats(time.Now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byType, err := s.analyticsRepo.CountOpportunitiesByType()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeOpps, err := s.oppRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byStatus, err := s.analyticsRepo.CountApplicationsByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeSubs, err := s.subRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	messages, err := s.msgRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PlatformStatsResponse{
		Registrations: dto.RegistrationStatsResponse{
			Total:     regs.Total,
			Today:     regs.Today,
			ThisWeek:  regs.ThisWeek,
			ThisMonth: regs.ThisMonth,
			ByRole:    regs.ByRole,
		},
		OpportunitiesByType:  byType,
		ActiveOpportunities:  activeOpps,
		ApplicationsByStatus: byStatus,
		ActiveSubscriptions:  activeSubs,
		MessagesTotal:        messages,
	}

	s.cache.Set(ctx, "analytics:platform", resp, statsCacheTTL)
	return resp, nil
}
