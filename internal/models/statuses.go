package models

type UserStatus string
type UserRole string
type OpportunityType string
type ApplicationStatus string
type SubscriptionStatus string
type SkillProficiency string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCandidate UserRole = "candidate"
	UserRoleIndustry  UserRole = "industry"
	UserRoleInstitute UserRole = "institute"
	UserRoleAdmin     UserRole = "admin"

	OpportunityTypeInternship  OpportunityType = "internship"
	OpportunityTypeProject     OpportunityType = "project"
	OpportunityTypeFreelancing OpportunityType = "freelancing"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"

	SkillProficiencyBeginner     SkillProficiency = "beginner"
	SkillProficiencyIntermediate SkillProficiency = "intermediate"
	SkillProficiencyAdvanced     SkillProficiency = "advanced"
	SkillProficiencyExpert       SkillProficiency = "expert"
)

// ValidOpportunityType reports whether t is one of the known opportunity types.
func ValidOpportunityType(t OpportunityType) bool {
	switch t {
	case OpportunityTypeInternship, OpportunityTypeProject, OpportunityTypeFreelancing:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is one of the known application statuses.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	}
	return false
}

// ProficiencyFromLevel maps a 0-10 skill level onto a named tier.
func ProficiencyFromLevel(level int) SkillProficiency {
	switch {
	case level >= 9:
		return SkillProficiencyExpert
	case level >= 7:
		return SkillProficiencyAdvanced
	case level >= 4:
		return SkillProficiencyIntermediate
	default:
		return SkillProficiencyBeginner
	}
}
