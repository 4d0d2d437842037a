package models

import "time"

type Opportunity struct {
	BaseModel
	IndustryID  string          `gorm:"not null;index"`
	Title       string          `gorm:"not null"`
	Description string
	Type        OpportunityType `gorm:"type:varchar(20);not null;index"`
	// New opportunities start inactive and go live through admin moderation.
	IsActive   bool `gorm:"default:false"`
	CategoryID string
	LocationID string
	Stipend    *float64
	Remote     bool `gorm:"default:false"`
	Views      int  `gorm:"default:0"`

	Industry *IndustryProfile `gorm:"foreignKey:IndustryID"`
}

type Category struct {
	BaseModel
	Name string `gorm:"not null;uniqueIndex"`
}

type Location struct {
	BaseModel
	City    string `gorm:"not null"`
	Country string `gorm:"not null"`
}

type Application struct {
	BaseModel
	OpportunityID string            `gorm:"not null;index:idx_app_opportunity_candidate,unique"`
	CandidateID   string            `gorm:"not null;index:idx_app_opportunity_candidate,unique"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`
	CoverLetter   string
	AppliedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	Opportunity *Opportunity      `gorm:"foreignKey:OpportunityID"`
	Candidate   *CandidateProfile `gorm:"foreignKey:CandidateID"`
}
