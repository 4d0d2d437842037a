package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// Industry
	CreateIndustry(profile *models.IndustryProfile) error
	FindIndustryByID(id string) (*models.IndustryProfile, error)
	FindIndustryByUserID(userID string) (*models.IndustryProfile, error)
	UpdateIndustry(profile *models.IndustryProfile) error
	MarkIndustryVerified(id string, at time.Time) error
	ListIndustries(limit, offset int) ([]models.IndustryProfile, error)
	ListUnverifiedIndustries(limit, offset int) ([]models.IndustryProfile, error)

	// Candidate
	CreateCandidate(profile *models.CandidateProfile) error
	FindCandidateByID(id string) (*models.CandidateProfile, error)
	FindCandidateByUserID(userID string) (*models.CandidateProfile, error)
	UpdateCandidate(profile *models.CandidateProfile) error
	ReplaceSkills(profileID string, skills []models.CandidateSkill) error

	// Institute
	CreateInstitute(profile *models.InstituteProfile) error
	FindInstituteByID(id string) (*models.InstituteProfile, error)
	FindInstituteByUserID(userID string) (*models.InstituteProfile, error)
	UpdateInstitute(profile *models.InstituteProfile) error
	MarkInstituteVerified(id string, at time.Time) error
	ListUnverifiedInstitutes(limit, offset int) ([]models.InstituteProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Industry

func (r *ProfileRepositoryImpl) CreateIndustry(profile *models.IndustryProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindIndustryByID(id string) (*models.IndustryProfile, error) {
	var profile models.IndustryProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindIndustryByUserID(userID string) (*models.IndustryProfile, error) {
	var profile models.IndustryProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateIndustry(profile *models.IndustryProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"company_name":       profile.CompanyName,
		"contact_person":     profile.ContactPerson,
		"phone":              profile.Phone,
		"website":            profile.Website,
		"city":               profile.City,
		"description":        profile.Description,
		"show_company_name":  profile.ShowCompanyName,
		"monthly_post_limit": profile.MonthlyPostLimit,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) MarkIndustryVerified(id string, at time.Time) error {
	result := r.db.Model(&models.IndustryProfile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_verified": true,
		"verified_at": at,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ListIndustries(limit, offset int) ([]models.IndustryProfile, error) {
	var profiles []models.IndustryProfile
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) ListUnverifiedIndustries(limit, offset int) ([]models.IndustryProfile, error) {
	var profiles []models.IndustryProfile
	err := r.db.Where("is_verified = ?", false).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}

// Candidate

func (r *ProfileRepositoryImpl) CreateCandidate(profile *models.CandidateProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCandidateByID(id string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.Preload("Skills").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCandidateByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCandidate(profile *models.CandidateProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"phone":      profile.Phone,
		"city":       profile.City,
		"bio":        profile.Bio,
		"languages":  profile.Languages,
		"is_public":  profile.IsPublic,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ReplaceSkills(profileID string, skills []models.CandidateSkill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.CandidateSkill{}).Error; err != nil {
			return err
		}
		for i := range skills {
			skills[i].ProfileID = profileID
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
}

// Institute

func (r *ProfileRepositoryImpl) CreateInstitute(profile *models.InstituteProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindInstituteByID(id string) (*models.InstituteProfile, error) {
	var profile models.InstituteProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindInstituteByUserID(userID string) (*models.InstituteProfile, error) {
	var profile models.InstituteProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateInstitute(profile *models.InstituteProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"name":       profile.Name,
		"website":    profile.Website,
		"city":       profile.City,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) MarkInstituteVerified(id string, at time.Time) error {
	result := r.db.Model(&models.InstituteProfile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_verified": true,
		"verified_at": at,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ListUnverifiedInstitutes(limit, offset int) ([]models.InstituteProfile, error) {
	var profiles []models.InstituteProfile
	err := r.db.Where("is_verified = ?", false).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}
