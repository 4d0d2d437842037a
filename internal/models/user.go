package models

import "time"

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null"`
	// Empty for accounts authenticated by an external identity provider.
	PasswordHash      string
	Role              UserRole   `gorm:"type:varchar(20);not null"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified        bool       `gorm:"default:false"`
	IsPremium         bool       `gorm:"default:false"`
	PremiumExpiresAt  *time.Time
	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Relations
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	IndustryProfile  *IndustryProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	InstituteProfile *InstituteProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Subscription     *UserSubscription `gorm:"foreignKey:UserID"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// HasActivePremium reports whether the premium flag is set and not past its expiry.
func (u *User) HasActivePremium(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumExpiresAt == nil {
		return true
	}
	return u.PremiumExpiresAt.After(now)
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
