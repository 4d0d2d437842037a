package services

import (
	"errors"

	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(userID string, viewerPremium bool, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Withdraw(userID, applicationID string) error
	UpdateStatus(userID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
	ListForOpportunity(userID, opportunityID string, limit, offset int) (*dto.ApplicationListResponse, error)
	ListOwn(userID string, viewerPremium bool, limit, offset int) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo     repositories.ApplicationRepository
	oppRepo     repositories.OpportunityRepository
	profileRepo repositories.ProfileRepository
	notifier    NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	oppRepo repositories.OpportunityRepository,
	profileRepo repositories.ProfileRepository,
	notifier NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		oppRepo:     oppRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

func (s *ApplicationServiceImpl) Apply(userID string, viewerPremium bool, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	candidate, err := s.profileRepo.FindCandidateByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	opp, err := s.oppRepo.FindByID(req.OpportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !opp.IsActive {
		return nil, apperrors.ErrOpportunityInactive
	}

	exists, err := s.appRepo.Exists(opp.ID, candidate.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		OpportunityID: opp.ID,
		CandidateID:   candidate.ID,
		Status:        models.ApplicationStatusPending,
		CoverLetter:   req.CoverLetter,
	}
	if err := s.appRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Opportunity = opp
	application.Candidate = candidate

	s.notifyIndustry(opp, candidate)

	return applicationResponse(application, true, viewerPremium), nil
}

// notifyIndustry tells the opportunity owner about a new application. The
// candidate appears under their display name, never their account identity.
func (s *ApplicationServiceImpl) notifyIndustry(opp *models.Opportunity, candidate *models.CandidateProfile) {
	if s.notifier == nil || opp.Industry == nil {
		return
	}
	name := policy.CandidateDisplayName(candidate.FirstName, candidate.LastName)
	s.notifier.Notify(
		opp.Industry.UserID,
		NotificationTypeNewApplication,
		"New application",
		name+" applied to "+opp.Title,
		map[string]interface{}{"opportunity_id": opp.ID},
	)
}

func (s *ApplicationServiceImpl) Withdraw(userID, applicationID string) error {
	candidate, err := s.profileRepo.FindCandidateByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotResourceOwner
		}
		return apperrors.InternalError(err)
	}

	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if application.CandidateID != candidate.ID {
		return apperrors.ErrNotResourceOwner
	}

	if err := s.appRepo.Delete(applicationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) UpdateStatus(userID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown application status")
	}

	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Only the opportunity owner moves an application through the pipeline.
	industry, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrNotResourceOwner
	}
	if application.Opportunity == nil || application.Opportunity.IndustryID != industry.ID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if err := s.appRepo.UpdateStatus(applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	if s.notifier != nil && application.Candidate != nil {
		s.notifier.Notify(
			application.Candidate.UserID,
			NotificationTypeApplicationStatus,
			"Application update",
			"Your application for "+application.Opportunity.Title+" is now "+string(status),
			map[string]interface{}{"application_id": application.ID},
		)
	}

	return applicationResponse(application, false, false), nil
}

func (s *ApplicationServiceImpl) ListForOpportunity(userID, opportunityID string, limit, offset int) (*dto.ApplicationListResponse, error) {
	industry, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrNotResourceOwner
	}
	opp, err := s.oppRepo.FindByID(opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if opp.IndustryID != industry.ID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if limit < 1 {
		limit = 20
	}
	items, err := s.appRepo.ListByOpportunity(opportunityID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.appRepo.CountByOpportunity(opportunityID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationListResponse{
		Applications: make([]dto.ApplicationResponse, 0, len(items)),
		Total:        total,
	}
	for i := range items {
		resp.Applications = append(resp.Applications, *applicationResponse(&items[i], false, false))
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) ListOwn(userID string, viewerPremium bool, limit, offset int) (*dto.ApplicationListResponse, error) {
	candidate, err := s.profileRepo.FindCandidateByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if limit < 1 {
		limit = 20
	}
	items, err := s.appRepo.ListByCandidate(candidate.ID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationListResponse{
		Applications: make([]dto.ApplicationResponse, 0, len(items)),
		Total:        int64(len(items)),
	}
	for i := range items {
		resp.Applications = append(resp.Applications, *applicationResponse(&items[i], true, viewerPremium))
	}
	return resp, nil
}

// applicationResponse maps an application. candidateView controls whether the
// nested opportunity is included (candidate listings) or the candidate's
// display name (industry listings); viewerPremium drives the company-name
// disclosure on the nested opportunity.
func applicationResponse(a *models.Application, candidateView, viewerPremium bool) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:            a.ID,
		OpportunityID: a.OpportunityID,
		CandidateID:   a.CandidateID,
		Status:        a.Status,
		CoverLetter:   a.CoverLetter,
		CreatedAt:     a.CreatedAt,
	}
	if candidateView {
		if a.Opportunity != nil {
			resp.Opportunity = opportunityResponse(a.Opportunity, viewerPremium)
		}
	} else if a.Candidate != nil {
		resp.CandidateName = policy.CandidateDisplayName(a.Candidate.FirstName, a.Candidate.LastName)
	}
	return resp
}
