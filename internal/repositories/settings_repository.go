package repositories

import (
	"errors"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingsRepository interface {
	Get(key string) (*models.PlatformSetting, error)
	GetAll() ([]models.PlatformSetting, error)

	// Upsert writes the setting, bumping the version on update. Settings are
	// read per request; nothing is cached in process state.
	Upsert(key, value, updatedBy string) (*models.PlatformSetting, error)
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) Get(key string) (*models.PlatformSetting, error) {
	var setting models.PlatformSetting
	err := r.db.First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingsRepositoryImpl) GetAll() ([]models.PlatformSetting, error) {
	var settings []models.PlatformSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingsRepositoryImpl) Upsert(key, value, updatedBy string) (*models.PlatformSetting, error) {
	var setting models.PlatformSetting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&setting, "key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = models.PlatformSetting{
				Key:       key,
				Value:     value,
				Version:   1,
				UpdatedBy: updatedBy,
			}
			return tx.Create(&setting).Error
		}
		if err != nil {
			return err
		}

		setting.Value = value
		setting.Version++
		setting.UpdatedBy = updatedBy
		return tx.Save(&setting).Error
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
