package workers

import (
	"context"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/repositories"
)

const notificationRetention = 90 * 24 * time.Hour

// CleanupWorker prunes old read notifications.
type CleanupWorker struct {
	notifRepo repositories.NotificationRepository
}

func NewCleanupWorker(notifRepo repositories.NotificationRepository) *CleanupWorker {
	return &CleanupWorker{notifRepo: notifRepo}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *CleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.notifRepo.DeleteOld(time.Now().Add(-notificationRetention))
			logger.WorkerLog("cleanup", "delete_old_notifications", err)
			if n > 0 {
				logger.Info("old notifications pruned", "count", n)
			}
		}
	}
}
