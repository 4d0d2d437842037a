package services

import (
	"errors"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

// ModerationService is the admin surface: opportunity approval, profile
// verification and account state changes.
type ModerationService interface {
	// Opportunities. Approve activates the posting; reject returns it to the
	// pending pool so the owner may edit and it can be re-reviewed; delete is
	// terminal.
	ListPendingOpportunities(limit, offset int) (*dto.OpportunityListResponse, error)
	ApproveOpportunity(adminID, opportunityID string) error
	RejectOpportunity(adminID, opportunityID, reason string) error
	DeleteOpportunity(adminID, opportunityID string) error

	// Profile verification. Approval stamps the verified flag and time;
	// rejection leaves the profile unverified, only the owner is notified.
	ListUnverifiedIndustries(limit, offset int) ([]dto.IndustryProfileResponse, error)
	ListUnverifiedInstitutes(limit, offset int) ([]dto.InstituteProfileResponse, error)
	VerifyIndustry(adminID, profileID string, approve bool, reason string) error
	VerifyInstitute(adminID, profileID string, approve bool, reason string) error

	// Accounts
	ListUsers(limit, offset int) (*dto.UserListResponse, error)
	SetUserStatus(adminID, userID string, status models.UserStatus) error
	DeleteUser(adminID, userID string) error
}

type ModerationServiceImpl struct {
	oppRepo     repositories.OpportunityRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	auditRepo   repositories.AuditRepository
	notifier    NotificationService
}

func NewModerationService(
	oppRepo repositories.OpportunityRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditRepository,
	notifier NotificationService,
) ModerationService {
	return &ModerationServiceImpl{
		oppRepo:     oppRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		notifier:    notifier,
	}
}

// Opportunities

func (s *ModerationServiceImpl) ListPendingOpportunities(limit, offset int) (*dto.OpportunityListResponse, error) {
	if limit < 1 {
		limit = 20
	}
	items, err := s.oppRepo.ListPending(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.OpportunityListResponse{
		Opportunities: make([]dto.OpportunityResponse, 0, len(items)),
		Total:         int64(len(items)),
		PageSize:      limit,
	}
	for i := range items {
		// Moderators see the real company name.
		resp.Opportunities = append(resp.Opportunities, *opportunityResponse(&items[i], true))
	}
	return resp, nil
}

func (s *ModerationServiceImpl) ApproveOpportunity(adminID, opportunityID string) error {
	opp, err := s.oppRepo.FindByID(opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.oppRepo.SetActive(opportunityID, true); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit(adminID, "opportunity.approve", "opportunity", opportunityID)
	if s.notifier != nil && opp.Industry != nil {
		s.notifier.Notify(
			opp.Industry.UserID,
			NotificationTypeModeration,
			"Posting approved",
			opp.Title+" is now live",
			map[string]interface{}{"opportunity_id": opp.ID},
		)
	}
	return nil
}

func (s *ModerationServiceImpl) RejectOpportunity(adminID, opportunityID, reason string) error {
	opp, err := s.oppRepo.FindByID(opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// Back to pending: the owner can edit and resubmit.
	if err := s.oppRepo.SetActive(opportunityID, false); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit(adminID, "opportunity.reject", "opportunity", opportunityID)
	if s.notifier != nil && opp.Industry != nil {
		body := opp.Title + " was not approved"
		if reason != "" {
			body += ": " + reason
		}
		s.notifier.Notify(
			opp.Industry.UserID,
			NotificationTypeModeration,
			"Posting rejected",
			body,
			map[string]interface{}{"opportunity_id": opp.ID},
		)
	}
	return nil
}

func (s *ModerationServiceImpl) DeleteOpportunity(adminID, opportunityID string) error {
	if err := s.oppRepo.Delete(opportunityID); err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	s.audit(adminID, "opportunity.remove", "opportunity", opportunityID)
	return nil
}

// Verification

func (s *ModerationServiceImpl) ListUnverifiedIndustries(limit, offset int) ([]dto.IndustryProfileResponse, error) {
	if limit < 1 {
		limit = 20
	}
	profiles, err := s.profileRepo.ListUnverifiedIndustries(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.IndustryProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *industryResponse(&profiles[i], true))
	}
	return out, nil
}

func (s *ModerationServiceImpl) ListUnverifiedInstitutes(limit, offset int) ([]dto.InstituteProfileResponse, error) {
	if limit < 1 {
		limit = 20
	}
	profiles, err := s.profileRepo.ListUnverifiedInstitutes(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.InstituteProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *instituteResponse(&profiles[i]))
	}
	return out, nil
}

func (s *ModerationServiceImpl) VerifyIndustry(adminID, profileID string, approve bool, reason string) error {
	profile, err := s.profileRepo.FindIndustryByID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if approve {
		if err := s.profileRepo.MarkIndustryVerified(profileID, time.Now()); err != nil {
			return apperrors.InternalError(err)
		}
		s.audit(adminID, "verification.approve", "industry_profile", profileID)
	} else {
		// No state change on rejection, the profile simply stays unverified.
		s.audit(adminID, "verification.reject", "industry_profile", profileID)
	}

	s.notifyVerification(profile.UserID, approve, reason)
	return nil
}

func (s *ModerationServiceImpl) VerifyInstitute(adminID, profileID string, approve bool, reason string) error {
	profile, err := s.profileRepo.FindInstituteByID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if approve {
		if err := s.profileRepo.MarkInstituteVerified(profileID, time.Now()); err != nil {
			return apperrors.InternalError(err)
		}
		s.audit(adminID, "verification.approve", "institute_profile", profileID)
	} else {
		s.audit(adminID, "verification.reject", "institute_profile", profileID)
	}

	s.notifyVerification(profile.UserID, approve, reason)
	return nil
}

func (s *ModerationServiceImpl) notifyVerification(userID string, approve bool, reason string) {
	if s.notifier == nil {
		return
	}
	if approve {
		s.notifier.Notify(userID, NotificationTypeModeration, "Verification approved", "Your organization is now verified", nil)
		return
	}
	body := "Your verification request was declined"
	if reason != "" {
		body += ": " + reason
	}
	s.notifier.Notify(userID, NotificationTypeModeration, "Verification declined", body, nil)
}

// Accounts

func (s *ModerationServiceImpl) ListUsers(limit, offset int) (*dto.UserListResponse, error) {
	if limit < 1 {
		limit = 20
	}
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserSummaryResponse, 0, len(users)),
		Total: total,
	}
	now := time.Now()
	for i := range users {
		u := &users[i]
		resp.Users = append(resp.Users, dto.UserSummaryResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      string(u.Role),
			IsActive:  u.Status == models.UserStatusActive,
			IsPremium: u.HasActivePremium(now),
			CreatedAt: u.CreatedAt,
		})
	}
	return resp, nil
}

func (s *ModerationServiceImpl) SetUserStatus(adminID, userID string, status models.UserStatus) error {
	switch status {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned:
	default:
		return apperrors.NewBadRequestError("unknown user status")
	}

	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	s.audit(adminID, "user."+string(status), "user", userID)
	return nil
}

func (s *ModerationServiceImpl) DeleteUser(adminID, userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	s.audit(adminID, "user.delete", "user", userID)
	return nil
}

func (s *ModerationServiceImpl) audit(actorID, action, entity, entityID string) {
	if s.auditRepo == nil {
		return
	}
	entry := &models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		logger.Warn("audit write failed", "action", action, "entity", entity, "error", err)
	}
}
