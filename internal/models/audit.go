package models

import "gorm.io/datatypes"

// AuditLog records mutating actions as a best-effort side channel. A failed
// audit write never fails the primary operation.
type AuditLog struct {
	BaseModel
	ActorID  string `gorm:"index"`
	Action   string `gorm:"not null"` // "profile.update", "opportunity.approve", ...
	Entity   string `gorm:"not null"`
	EntityID string `gorm:"index"`
	Detail   datatypes.JSON `gorm:"type:jsonb"`
}
