package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "new_application", "new_message", "application_status"
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"opportunity_id": "...", "sender_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
