package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"internhub_backend/internal/config"
	"internhub_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (or reuses) the GORM connection from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CandidateProfile{},
		&models.CandidateSkill{},
		&models.IndustryProfile{},
		&models.InstituteProfile{},
		&models.Category{},
		&models.Location{},
		&models.Opportunity{},
		&models.Application{},
		&models.Message{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&models.Notification{},
		&models.PlatformSetting{},
		&models.AuditLog{},
	)
}
