package services

import (
	"context"
	"errors"
	"time"

	"internhub_backend/internal/cache"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

const settingsCacheTTL = 5 * time.Minute

type SettingsService interface {
	Get(ctx context.Context, key string) (*dto.SettingResponse, error)
	GetAll(ctx context.Context) ([]dto.SettingResponse, error)
	Update(ctx context.Context, adminID, key, value string) (*dto.SettingResponse, error)
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
	auditRepo    repositories.AuditRepository
	cache        *cache.Cache
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, auditRepo repositories.AuditRepository, c *cache.Cache) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo, auditRepo: auditRepo, cache: c}
}

func settingCacheKey(key string) string {
	return "settings:" + key
}

func (s *SettingsServiceImpl) Get(ctx context.Context, key string) (*dto.SettingResponse, error) {
	var cached dto.SettingResponse
	if err := s.cache.Get(ctx, settingCacheKey(key), &cached); err == nil {
		return &cached, nil
	}

	setting, err := s.settingsRepo.Get(key)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := settingResponse(setting)
	s.cache.Set(ctx, settingCacheKey(key), resp, settingsCacheTTL)
	return resp, nil
}

func (s *SettingsServiceImpl) GetAll(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := s.settingsRepo.GetAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.SettingResponse, 0, len(settings))
	for i := range settings {
		out = append(out, *settingResponse(&settings[i]))
	}
	return out, nil
}

// Update writes a setting through the versioned upsert, so concurrent admin
// edits never interleave values and versions.
func (s *SettingsServiceImpl) Update(ctx context.Context, adminID, key, value string) (*dto.SettingResponse, error) {
	setting, err := s.settingsRepo.Upsert(key, value, adminID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.cache.Invalidate(ctx, settingCacheKey(key))

	if s.auditRepo != nil {
		_ = s.auditRepo.Create(&models.AuditLog{
			ActorID:  adminID,
			Action:   "settings.update",
			Entity:   "platform_setting",
			EntityID: setting.Key,
		})
	}
	return settingResponse(setting), nil
}

func settingResponse(s *models.PlatformSetting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		Version:   s.Version,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
}
