package models

import (
	"time"

	"github.com/lib/pq"
)

type IndustryProfile struct {
	BaseModel
	UserID      string `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"not null"`
	// Stable identifier used to build the redacted company label.
	AnonymousID     string `gorm:"not null;uniqueIndex"`
	ContactPerson   string
	Phone           string
	Website         string
	City            string
	Description     string
	ShowCompanyName bool `gorm:"default:false"`
	IsVerified      bool `gorm:"default:false"`
	VerifiedAt      *time.Time
	// Advisory counter kept by the monthly reset worker. Quota decisions
	// recount opportunities from the store, see internal/policy.
	CurrentMonthPosts int `gorm:"default:0"`
	MonthlyPostLimit  int `gorm:"default:3"`
}

type CandidateProfile struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex"`
	FirstName string
	LastName  string
	Phone     string
	City      string
	Bio       string
	Languages pq.StringArray `gorm:"type:text[]" json:"languages"`
	IsPublic  bool           `gorm:"default:true"`

	Skills []CandidateSkill `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

type CandidateSkill struct {
	BaseModel
	ProfileID string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	// 0-10 self-assessed level, projected onto a proficiency tier in responses.
	Level           int `gorm:"not null"`
	YearsExperience int
}

type InstituteProfile struct {
	BaseModel
	UserID     string `gorm:"not null;uniqueIndex"`
	Name       string `gorm:"not null"`
	Website    string
	City       string
	IsVerified bool `gorm:"default:false"`
	VerifiedAt *time.Time
}
