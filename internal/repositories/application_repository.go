package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	Exists(opportunityID, candidateID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error

	ListByOpportunity(opportunityID string, limit, offset int) ([]models.Application, error)
	ListByCandidate(candidateID string, limit, offset int) ([]models.Application, error)
	CountByStatus(status models.ApplicationStatus) (int64, error)
	CountByOpportunity(opportunityID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Opportunity").Preload("Opportunity.Industry").Preload("Candidate").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Exists(opportunityID, candidateID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("opportunity_id = ? AND candidate_id = ?", opportunityID, candidateID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByOpportunity(opportunityID string, limit, offset int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Candidate").Preload("Candidate.Skills").
		Where("opportunity_id = ?", opportunityID).
		Order("applied_at DESC").Limit(limit).Offset(offset).
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string, limit, offset int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Opportunity").Preload("Opportunity.Industry").
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC").Limit(limit).Offset(offset).
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByOpportunity(opportunityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("opportunity_id = ?", opportunityID).Count(&count).Error
	return count, err
}
