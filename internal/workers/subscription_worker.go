package workers

import (
	"context"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services"

	"gorm.io/gorm"
)

// SubscriptionWorker runs the periodic maintenance loops: expiring overdue
// subscriptions and resetting the advisory monthly post counters.
type SubscriptionWorker struct {
	db             *gorm.DB
	subscriptions  services.SubscriptionService
	userRepo       repositories.UserRepository
	expiryInterval time.Duration
}

func NewSubscriptionWorker(db *gorm.DB, subscriptions services.SubscriptionService, userRepo repositories.UserRepository) *SubscriptionWorker {
	return &SubscriptionWorker{
		db:             db,
		subscriptions:  subscriptions,
		userRepo:       userRepo,
		expiryInterval: 6 * time.Hour,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.expireSubscriptions(ctx)
	go w.resetMonthlyCounters(ctx)
	go w.cleanRefreshTokens(ctx)
}

// expireSubscriptions sweeps subscriptions past their end date and clears the
// premium flag on the affected accounts.
func (w *SubscriptionWorker) expireSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(w.expiryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("subscription worker stopped")
			return
		case <-ticker.C:
			n, err := w.subscriptions.ExpireOverdue()
			logger.WorkerLog("subscription", "expire_overdue", err)
			if n > 0 {
				logger.Info("subscriptions expired", "count", n)
			}
		}
	}
}

// resetMonthlyCounters zeroes the advisory current_month_posts counter when a
// new calendar month starts. Quota decisions recount from the store, so this
// counter is informational only and a late reset is harmless.
func (w *SubscriptionWorker) resetMonthlyCounters(ctx context.Context) {
	for {
		now := time.Now()
		monthStart, _ := policy.MonthWindow(now)
		next := monthStart.AddDate(0, 1, 0)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			result := w.db.Exec(`
				UPDATE industry_profiles
				SET current_month_posts = 0, updated_at = NOW()
				WHERE current_month_posts <> 0
			`)
			if result.Error != nil {
				logger.Error("monthly counter reset failed", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("monthly post counters reset", "profiles", result.RowsAffected)
			}
		}
	}
}

// cleanRefreshTokens drops expired refresh tokens once a day.
func (w *SubscriptionWorker) cleanRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.userRepo.CleanExpiredRefreshTokens()
			logger.WorkerLog("subscription", "clean_refresh_tokens", err)
		}
	}
}
