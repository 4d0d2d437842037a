package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPlanNotFound         = errors.New("subscription plan not found")
)

type SubscriptionRepository interface {
	// Plans
	CreatePlan(plan *models.SubscriptionPlan) error
	FindPlanByID(id string) (*models.SubscriptionPlan, error)
	ListPlans(activeOnly bool) ([]models.SubscriptionPlan, error)
	UpdatePlan(plan *models.SubscriptionPlan) error

	// Subscriptions
	Create(sub *models.UserSubscription) error
	FindActiveByUserID(userID string) (*models.UserSubscription, error)
	Cancel(id string, at time.Time) error
	FindExpired() ([]models.UserSubscription, error)
	MarkExpired(id string) error
	CountActive() (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

// Plans

func (r *SubscriptionRepositoryImpl) CreatePlan(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *SubscriptionRepositoryImpl) FindPlanByID(id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) ListPlans(activeOnly bool) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	query := r.db.Order("price ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepositoryImpl) UpdatePlan(plan *models.SubscriptionPlan) error {
	result := r.db.Model(plan).Updates(map[string]interface{}{
		"name":       plan.Name,
		"price":      plan.Price,
		"currency":   plan.Currency,
		"duration":   plan.Duration,
		"features":   plan.Features,
		"limits":     plan.Limits,
		"is_active":  plan.IsActive,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Subscriptions

func (r *SubscriptionRepositoryImpl) Create(sub *models.UserSubscription) error {
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) FindActiveByUserID(userID string) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := r.db.Preload("Plan").
		Where("user_id = ? AND status = ? AND end_date > ?", userID, models.SubscriptionStatusActive, time.Now()).
		Order("end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) Cancel(id string, at time.Time) error {
	result := r.db.Model(&models.UserSubscription{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       models.SubscriptionStatusCancelled,
		"auto_renew":   false,
		"cancelled_at": at,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) FindExpired() ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := r.db.Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, time.Now()).
		Order("end_date ASC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) MarkExpired(id string) error {
	result := r.db.Model(&models.UserSubscription{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.SubscriptionStatusExpired,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSubscription{}).
		Where("status = ?", models.SubscriptionStatusActive).
		Count(&count).Error
	return count, err
}
