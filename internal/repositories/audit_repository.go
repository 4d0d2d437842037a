package repositories

import (
	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

type AuditRepository interface {
	Create(entry *models.AuditLog) error
	ListByEntity(entity, entityID string, limit, offset int) ([]models.AuditLog, error)
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *AuditRepositoryImpl) ListByEntity(entity, entityID string, limit, offset int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&entries).Error
	return entries, err
}
