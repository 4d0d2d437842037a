package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Name     string  `gorm:"not null"`
	Price    float64 `gorm:"not null"`
	Currency string  `gorm:"default:'USD'"`
	Duration string  `gorm:"not null"`   // "monthly", "yearly"
	Features datatypes.JSON `gorm:"type:jsonb"` // {"show_company_names": true, ...}
	Limits   datatypes.JSON `gorm:"type:jsonb"` // {"internship": 3, "project": 3}
	IsActive bool           `gorm:"default:true"`
}

type UserSubscription struct {
	BaseModel
	UserID      string             `gorm:"not null;index"`
	PlanID      string             `gorm:"not null;index"`
	Status      SubscriptionStatus `gorm:"default:'active'"`
	StartDate   time.Time
	EndDate     time.Time
	AutoRenew   bool `gorm:"default:true"`
	CancelledAt *time.Time

	Plan SubscriptionPlan `gorm:"foreignKey:PlanID"`
}
