package repositories

import (
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

// RegistrationStats summarizes sign-ups for the admin dashboard.
type RegistrationStats struct {
	Total     int64            `json:"total"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"this_week"`
	ThisMonth int64            `json:"this_month"`
	ByRole    map[string]int64 `json:"by_role"`
}

type AnalyticsRepository interface {
	GetRegistrationStats(now time.Time) (*RegistrationStats, error)
	CountOpportunitiesByType() (map[string]int64, error)
	CountApplicationsByStatus() (map[string]int64, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) GetRegistrationStats(now time.Time) (*RegistrationStats, error) {
	stats := &RegistrationStats{ByRole: make(map[string]int64)}

	if err := r.db.Model(&models.User{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", dayStart).Count(&stats.Today).Error; err != nil {
		return nil, err
	}

	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", weekStart).Count(&stats.ThisWeek).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&stats.ThisMonth).Error; err != nil {
		return nil, err
	}

	type roleCount struct {
		Role  string
		Count int64
	}
	var rows []roleCount
	if err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByRole[row.Role] = row.Count
	}

	return stats, nil
}

func (r *AnalyticsRepositoryImpl) CountOpportunitiesByType() (map[string]int64, error) {
	type typeCount struct {
		Type  string
		Count int64
	}
	var rows []typeCount
	if err := r.db.Model(&models.Opportunity{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Type] = row.Count
	}
	return result, nil
}

func (r *AnalyticsRepositoryImpl) CountApplicationsByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
