package models

// PlatformSetting is a persisted, versioned configuration record. Handlers read
// it per request instead of holding shared mutable process state.
type PlatformSetting struct {
	BaseModel
	Key       string `gorm:"not null;uniqueIndex"`
	Value     string `gorm:"not null"`
	Version   int    `gorm:"default:1"`
	UpdatedBy string
}

// Setting keys known to the platform.
const (
	SettingMaintenanceMode      = "maintenance_mode"
	SettingRegistrationOpen     = "registration_open"
	SettingDefaultMonthlyLimit  = "default_monthly_post_limit"
	SettingSupportEmail         = "support_email"
)
