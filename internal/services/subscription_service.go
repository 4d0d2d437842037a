package services

import (
	"encoding/json"
	"errors"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

type SubscriptionService interface {
	ListPlans() ([]dto.PlanResponse, error)
	CreatePlan(req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	Subscribe(userID, planID string) (*dto.SubscriptionResponse, error)
	Cancel(userID string) error
	GetOwn(userID string) (*dto.SubscriptionResponse, error)

	// ExpireOverdue sweeps subscriptions past their end date and clears the
	// premium flag for affected users. Run by the background worker.
	ExpireOverdue() (int, error)
}

type SubscriptionServiceImpl struct {
	subRepo  repositories.SubscriptionRepository
	userRepo repositories.UserRepository
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository, userRepo repositories.UserRepository) SubscriptionService {
	return &SubscriptionServiceImpl{subRepo: subRepo, userRepo: userRepo}
}

func (s *SubscriptionServiceImpl) ListPlans() ([]dto.PlanResponse, error) {
	plans, err := s.subRepo.ListPlans(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, planResponse(&plans[i]))
	}
	return out, nil
}

func (s *SubscriptionServiceImpl) CreatePlan(req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	plan := &models.SubscriptionPlan{
		Name:     req.Name,
		Price:    req.Price,
		Duration: durationLabel(req.DurationDays),
		IsActive: true,
	}
	if len(req.Features) > 0 {
		raw, err := json.Marshal(map[string]interface{}{"list": req.Features, "duration_days": req.DurationDays})
		if err == nil {
			plan.Features = raw
		}
	} else {
		raw, _ := json.Marshal(map[string]interface{}{"duration_days": req.DurationDays})
		plan.Features = raw
	}

	if err := s.subRepo.CreatePlan(plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := planResponse(plan)
	return &resp, nil
}

func (s *SubscriptionServiceImpl) Subscribe(userID, planID string) (*dto.SubscriptionResponse, error) {
	plan, err := s.subRepo.FindPlanByID(planID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if existing, err := s.subRepo.FindActiveByUserID(userID); err == nil && existing != nil {
		return nil, apperrors.ErrConflict(nil, "subscription", "an active subscription already exists")
	}

	now := time.Now()
	end := now.AddDate(0, 0, planDurationDays(plan))
	sub := &models.UserSubscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    models.SubscriptionStatusActive,
		StartDate: now,
		EndDate:   end,
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetPremium(userID, true, &end); err != nil {
		logger.Error("premium flag not set after subscribe", "user_id", userID, "error", err)
	}

	sub.Plan = *plan
	return subscriptionResponse(sub), nil
}

func (s *SubscriptionServiceImpl) Cancel(userID string) error {
	sub, err := s.subRepo.FindActiveByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrNoActiveSubscription
		}
		return apperrors.InternalError(err)
	}

	if err := s.subRepo.Cancel(sub.ID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	// Premium survives until the paid period ends; the worker clears the flag.
	return nil
}

func (s *SubscriptionServiceImpl) GetOwn(userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindActiveByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNoActiveSubscription
		}
		return nil, apperrors.InternalError(err)
	}
	return subscriptionResponse(sub), nil
}

func (s *SubscriptionServiceImpl) ExpireOverdue() (int, error) {
	expired, err := s.subRepo.FindExpired()
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range expired {
		sub := &expired[i]
		if err := s.subRepo.MarkExpired(sub.ID); err != nil {
			logger.Error("subscription not marked expired", "subscription_id", sub.ID, "error", err)
			continue
		}
		if err := s.userRepo.SetPremium(sub.UserID, false, nil); err != nil {
			logger.Error("premium flag not cleared", "user_id", sub.UserID, "error", err)
		}
		n++
	}
	return n, nil
}

func planResponse(p *models.SubscriptionPlan) dto.PlanResponse {
	resp := dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		DurationDays: planDurationDays(p),
	}
	if len(p.Features) > 0 {
		var features struct {
			List []string `json:"list"`
		}
		if err := json.Unmarshal(p.Features, &features); err == nil {
			resp.Features = features.List
		}
	}
	return resp
}

func subscriptionResponse(sub *models.UserSubscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:        sub.ID,
		PlanID:    sub.PlanID,
		PlanName:  sub.Plan.Name,
		Status:    sub.Status,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
	}
}

// planDurationDays reads the day count stored in the plan features, falling
// back on the duration label.
func planDurationDays(p *models.SubscriptionPlan) int {
	if len(p.Features) > 0 {
		var features struct {
			DurationDays int `json:"duration_days"`
		}
		if err := json.Unmarshal(p.Features, &features); err == nil && features.DurationDays > 0 {
			return features.DurationDays
		}
	}
	if p.Duration == "yearly" {
		return 365
	}
	return 30
}

func durationLabel(days int) string {
	if days >= 365 {
		return "yearly"
	}
	return "monthly"
}
