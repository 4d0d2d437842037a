package services

import (
	"errors"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

type OpportunityService interface {
	Create(userID string, premium bool, req *dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error)
	Update(userID, opportunityID string, req *dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error)
	Delete(userID string, isAdmin bool, opportunityID string) error
	Get(opportunityID string, viewerPremium bool) (*dto.OpportunityResponse, error)
	List(req *dto.ListOpportunitiesRequest, viewerPremium bool) (*dto.OpportunityListResponse, error)
	ListOwn(userID string, limit, offset int) (*dto.OpportunityListResponse, error)
	QuotaStatus(userID string, premium bool) (*dto.QuotaStatusResponse, error)
}

type OpportunityServiceImpl struct {
	oppRepo     repositories.OpportunityRepository
	profileRepo repositories.ProfileRepository
	auditRepo   repositories.AuditRepository
}

func NewOpportunityService(
	oppRepo repositories.OpportunityRepository,
	profileRepo repositories.ProfileRepository,
	auditRepo repositories.AuditRepository,
) OpportunityService {
	return &OpportunityServiceImpl{
		oppRepo:     oppRepo,
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
	}
}

// Create posts a new opportunity after a quota check. The quota recounts the
// industry's creations inside the current calendar month from the store, so a
// stale advisory counter can never grant extra posts.
func (s *OpportunityServiceImpl) Create(userID string, premium bool, req *dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if !models.ValidOpportunityType(req.Type) {
		return nil, apperrors.ErrInvalidOpportunityType
	}

	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	from, to := policy.MonthWindow(now)
	count, err := s.oppRepo.CountByIndustryTypeBetween(profile.ID, req.Type, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	decision := policy.CheckQuota(req.Type, premium, int(count))
	if !decision.Allowed {
		return nil, apperrors.ErrQuotaExceeded.WithDetails(map[string]interface{}{
			"type":      req.Type,
			"allowance": decision.Allowance,
			"remaining": decision.Remaining,
		})
	}

	opp := &models.Opportunity{
		IndustryID:  profile.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		Stipend:     req.Stipend,
		Remote:      req.Remote,
		// Goes live only through moderation.
		IsActive: false,
	}
	if err := s.oppRepo.Create(opp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	opp.Industry = profile

	s.audit(userID, "opportunity.create", opp.ID)
	// Owner view, no redaction.
	return opportunityResponse(opp, true), nil
}

func (s *OpportunityServiceImpl) Update(userID, opportunityID string, req *dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	opp, profile, err := s.findOwned(userID, opportunityID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		opp.Title = *req.Title
	}
	if req.Description != nil {
		opp.Description = *req.Description
	}
	if req.CategoryID != nil {
		opp.CategoryID = *req.CategoryID
	}
	if req.LocationID != nil {
		opp.LocationID = *req.LocationID
	}
	if req.Stipend != nil {
		opp.Stipend = req.Stipend
	}
	if req.Remote != nil {
		opp.Remote = *req.Remote
	}

	if err := s.oppRepo.Update(opp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	opp.Industry = profile

	s.audit(userID, "opportunity.update", opp.ID)
	return opportunityResponse(opp, true), nil
}

func (s *OpportunityServiceImpl) Delete(userID string, isAdmin bool, opportunityID string) error {
	if isAdmin {
		if err := s.oppRepo.Delete(opportunityID); err != nil {
			if errors.Is(err, repositories.ErrOpportunityNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		s.audit(userID, "opportunity.delete", opportunityID)
		return nil
	}

	if _, _, err := s.findOwned(userID, opportunityID); err != nil {
		return err
	}
	if err := s.oppRepo.Delete(opportunityID); err != nil {
		return apperrors.InternalError(err)
	}
	s.audit(userID, "opportunity.delete", opportunityID)
	return nil
}

func (s *OpportunityServiceImpl) Get(opportunityID string, viewerPremium bool) (*dto.OpportunityResponse, error) {
	opp, err := s.oppRepo.FindByID(opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.oppRepo.IncrementViews(opportunityID); err != nil {
		logger.Warn("view counter not bumped", "opportunity_id", opportunityID, "error", err)
	}

	return opportunityResponse(opp, viewerPremium), nil
}

func (s *OpportunityServiceImpl) List(req *dto.ListOpportunitiesRequest, viewerPremium bool) (*dto.OpportunityListResponse, error) {
	if req.Type != "" && !models.ValidOpportunityType(req.Type) {
		return nil, apperrors.ErrInvalidOpportunityType
	}

	filter := repositories.OpportunityFilter{
		Type:       req.Type,
		CategoryID: req.CategoryID,
		LocationID: req.LocationID,
		ActiveOnly: true,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	items, total, err := s.oppRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.OpportunityListResponse{
		Opportunities: make([]dto.OpportunityResponse, 0, len(items)),
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize < 1 {
		resp.PageSize = 20
	}
	for i := range items {
		resp.Opportunities = append(resp.Opportunities, *opportunityResponse(&items[i], viewerPremium))
	}
	return resp, nil
}

func (s *OpportunityServiceImpl) ListOwn(userID string, limit, offset int) (*dto.OpportunityListResponse, error) {
	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if limit < 1 {
		limit = 20
	}
	items, err := s.oppRepo.ListByIndustry(profile.ID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.OpportunityListResponse{
		Opportunities: make([]dto.OpportunityResponse, 0, len(items)),
		Total:         int64(len(items)),
		PageSize:      limit,
	}
	for i := range items {
		items[i].Industry = profile
		resp.Opportunities = append(resp.Opportunities, *opportunityResponse(&items[i], true))
	}
	return resp, nil
}

// QuotaStatus reports how many more posts of each type the industry may
// create this month, recounted from the store.
func (s *OpportunityServiceImpl) QuotaStatus(userID string, premium bool) (*dto.QuotaStatusResponse, error) {
	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	from, to := policy.MonthWindow(time.Now())
	resp := &dto.QuotaStatusResponse{
		Premium:   premium,
		Remaining: make(map[string]int, 3),
	}
	for _, t := range []models.OpportunityType{
		models.OpportunityTypeInternship,
		models.OpportunityTypeProject,
		models.OpportunityTypeFreelancing,
	} {
		count, err := s.oppRepo.CountByIndustryTypeBetween(profile.ID, t, from, to)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Remaining[string(t)] = policy.CheckQuota(t, premium, int(count)).Remaining
	}
	return resp, nil
}

// findOwned loads the opportunity and verifies it belongs to userID's industry.
func (s *OpportunityServiceImpl) findOwned(userID, opportunityID string) (*models.Opportunity, *models.IndustryProfile, error) {
	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotResourceOwner
		}
		return nil, nil, apperrors.InternalError(err)
	}

	opp, err := s.oppRepo.FindByID(opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if opp.IndustryID != profile.ID {
		return nil, nil, apperrors.ErrNotResourceOwner
	}
	return opp, profile, nil
}

func (s *OpportunityServiceImpl) audit(actorID, action, entityID string) {
	if s.auditRepo == nil {
		return
	}
	entry := &models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "opportunity",
		EntityID: entityID,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		logger.Warn("audit write failed", "action", action, "error", err)
	}
}

// opportunityResponse maps an opportunity for a viewer, disclosing the
// company name through the visibility policy.
func opportunityResponse(opp *models.Opportunity, viewerPremium bool) *dto.OpportunityResponse {
	resp := &dto.OpportunityResponse{
		ID:          opp.ID,
		Title:       opp.Title,
		Description: opp.Description,
		Type:        opp.Type,
		IsActive:    opp.IsActive,
		IndustryID:  opp.IndustryID,
		CategoryID:  opp.CategoryID,
		LocationID:  opp.LocationID,
		Stipend:     opp.Stipend,
		Remote:      opp.Remote,
		Views:       opp.Views,
		CreatedAt:   opp.CreatedAt,
	}
	if opp.Industry != nil {
		resp.CompanyName = policy.DiscloseCompanyName(
			opp.Industry.ShowCompanyName,
			opp.Industry.AnonymousID,
			opp.Industry.CompanyName,
			viewerPremium,
		)
	}
	return resp
}
