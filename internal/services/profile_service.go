package services

import (
	"errors"

	"github.com/lib/pq"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

type ProfileService interface {
	// Industry
	GetOwnIndustryProfile(userID string) (*dto.IndustryProfileResponse, error)
	GetIndustryProfile(id string, viewerPremium bool) (*dto.IndustryProfileResponse, error)
	UpdateIndustryProfile(userID string, req *dto.UpdateIndustryProfileRequest) (*dto.IndustryProfileResponse, error)

	// Candidate
	GetOwnCandidateProfile(userID string) (*dto.CandidateProfileResponse, error)
	GetCandidateProfile(id string, viewerRole models.UserRole) (*dto.CandidateProfileResponse, error)
	UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)

	// Institute
	GetOwnInstituteProfile(userID string) (*dto.InstituteProfileResponse, error)
	UpdateInstituteProfile(userID string, req *dto.UpdateInstituteProfileRequest) (*dto.InstituteProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	auditRepo   repositories.AuditRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, auditRepo repositories.AuditRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, auditRepo: auditRepo}
}

// Industry

func (s *ProfileServiceImpl) GetOwnIndustryProfile(userID string) (*dto.IndustryProfileResponse, error) {
	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return industryResponse(profile, true), nil
}

func (s *ProfileServiceImpl) GetIndustryProfile(id string, viewerPremium bool) (*dto.IndustryProfileResponse, error) {
	profile, err := s.profileRepo.FindIndustryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := industryResponse(profile, false)
	resp.DisclosedName = policy.DiscloseCompanyName(profile.ShowCompanyName, profile.AnonymousID, profile.CompanyName, viewerPremium)
	if resp.DisclosedName != profile.CompanyName {
		// Redacted views never carry identifying fields.
		resp.CompanyName = ""
		resp.ContactPerson = ""
		resp.Phone = ""
		resp.Website = ""
	}
	return resp, nil
}

func (s *ProfileServiceImpl) UpdateIndustryProfile(userID string, req *dto.UpdateIndustryProfileRequest) (*dto.IndustryProfileResponse, error) {
	profile, err := s.profileRepo.FindIndustryByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.ContactPerson != nil {
		profile.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.ShowCompanyName != nil {
		profile.ShowCompanyName = *req.ShowCompanyName
	}

	if err := s.profileRepo.UpdateIndustry(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit(userID, "profile.update", "industry_profile", profile.ID)
	return industryResponse(profile, true), nil
}

// Candidate

func (s *ProfileServiceImpl) GetOwnCandidateProfile(userID string) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return candidateResponse(profile), nil
}

func (s *ProfileServiceImpl) GetCandidateProfile(id string, viewerRole models.UserRole) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !profile.IsPublic && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrProfileNotPublic
	}
	return candidateResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Languages != nil {
		profile.Languages = pq.StringArray(req.Languages)
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.profileRepo.UpdateCandidate(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Skills != nil {
		skills := make([]models.CandidateSkill, 0, len(req.Skills))
		for _, in := range req.Skills {
			skills = append(skills, models.CandidateSkill{
				Name:            in.Name,
				Level:           in.Level,
				YearsExperience: in.YearsExperience,
			})
		}
		if err := s.profileRepo.ReplaceSkills(profile.ID, skills); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Skills = skills
	}

	s.audit(userID, "profile.update", "candidate_profile", profile.ID)
	return candidateResponse(profile), nil
}

// Institute

func (s *ProfileServiceImpl) GetOwnInstituteProfile(userID string) (*dto.InstituteProfileResponse, error) {
	profile, err := s.profileRepo.FindInstituteByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return instituteResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateInstituteProfile(userID string, req *dto.UpdateInstituteProfileRequest) (*dto.InstituteProfileResponse, error) {
	profile, err := s.profileRepo.FindInstituteByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.City != nil {
		profile.City = *req.City
	}

	if err := s.profileRepo.UpdateInstitute(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit(userID, "profile.update", "institute_profile", profile.ID)
	return instituteResponse(profile), nil
}

// audit records the action as a side channel; failures are logged and swallowed.
func (s *ProfileServiceImpl) audit(actorID, action, entity, entityID string) {
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

// mapping

func industryResponse(p *models.IndustryProfile, owner bool) *dto.IndustryProfileResponse {
	resp := &dto.IndustryProfileResponse{
		ID:              p.ID,
		CompanyName:     p.CompanyName,
		DisclosedName:   p.CompanyName,
		ContactPerson:   p.ContactPerson,
		Phone:           p.Phone,
		Website:         p.Website,
		City:            p.City,
		Description:     p.Description,
		IsVerified:      p.IsVerified,
		VerifiedAt:      p.VerifiedAt,
		ShowCompanyName: p.ShowCompanyName,
	}
	if !owner {
		resp.ShowCompanyName = false
	}
	return resp
}

func candidateResponse(p *models.CandidateProfile) *dto.CandidateProfileResponse {
	skills := make([]dto.SkillResponse, 0, len(p.Skills))
	for _, sk := range p.Skills {
		skills = append(skills, dto.SkillResponse{
			Name:            sk.Name,
			Level:           sk.Level,
			Proficiency:     models.ProficiencyFromLevel(sk.Level),
			YearsExperience: sk.YearsExperience,
		})
	}
	return &dto.CandidateProfileResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		City:      p.City,
		Bio:       p.Bio,
		Languages: p.Languages,
		IsPublic:  p.IsPublic,
		Skills:    skills,
	}
}

func instituteResponse(p *models.InstituteProfile) *dto.InstituteProfileResponse {
	return &dto.InstituteProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Website:    p.Website,
		City:       p.City,
		IsVerified: p.IsVerified,
		VerifiedAt: p.VerifiedAt,
	}
}
