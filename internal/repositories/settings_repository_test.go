package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

func setupSettingsDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&models.PlatformSetting{})
	require.NoError(t, err, "failed to migrate settings table")

	return db
}

func TestSettingsRepository_UpsertBumpsVersion(t *testing.T) {
	db := setupSettingsDB(t)
	repo := NewSettingsRepository(db)

	created, err := repo.Upsert(models.SettingRegistrationOpen, "true", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, "true", created.Value)

	updated, err := repo.Upsert(models.SettingRegistrationOpen, "false", "admin-2")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "false", updated.Value)
	assert.Equal(t, "admin-2", updated.UpdatedBy)

	got, err := repo.Get(models.SettingRegistrationOpen)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	db := setupSettingsDB(t)
	repo := NewSettingsRepository(db)

	_, err := repo.Get("nonexistent")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
