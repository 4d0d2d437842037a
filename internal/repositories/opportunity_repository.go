package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

// OpportunityFilter narrows list queries.
type OpportunityFilter struct {
	Type       models.OpportunityType
	CategoryID string
	LocationID string
	ActiveOnly bool
	Page       int
	PageSize   int
}

type OpportunityRepository interface {
	Create(opportunity *models.Opportunity) error
	FindByID(id string) (*models.Opportunity, error)
	Update(opportunity *models.Opportunity) error
	Delete(id string) error
	SetActive(id string, active bool) error
	IncrementViews(id string) error

	List(filter OpportunityFilter) ([]models.Opportunity, int64, error)
	ListByIndustry(industryID string, limit, offset int) ([]models.Opportunity, error)
	ListPending(limit, offset int) ([]models.Opportunity, error)

	// CountByIndustryTypeBetween counts opportunities an industry created in
	// [from, to], inclusive on both ends. Quota checks use the calendar-month
	// window from internal/policy.
	CountByIndustryTypeBetween(industryID string, t models.OpportunityType, from, to time.Time) (int64, error)
	CountByType(t models.OpportunityType) (int64, error)
	CountActive() (int64, error)
}

type OpportunityRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &OpportunityRepositoryImpl{db: db}
}

func (r *OpportunityRepositoryImpl) Create(opportunity *models.Opportunity) error {
	return r.db.Create(opportunity).Error
}

func (r *OpportunityRepositoryImpl) FindByID(id string) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := r.db.Preload("Industry").First(&opp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}
	return &opp, nil
}

func (r *OpportunityRepositoryImpl) Update(opportunity *models.Opportunity) error {
	result := r.db.Model(opportunity).Updates(map[string]interface{}{
		"title":       opportunity.Title,
		"description": opportunity.Description,
		"category_id": opportunity.CategoryID,
		"location_id": opportunity.LocationID,
		"stipend":     opportunity.Stipend,
		"remote":      opportunity.Remote,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Opportunity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) SetActive(id string, active bool) error {
	result := r.db.Model(&models.Opportunity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Opportunity{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *OpportunityRepositoryImpl) List(filter OpportunityFilter) ([]models.Opportunity, int64, error) {
	query := r.db.Model(&models.Opportunity{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var opportunities []models.Opportunity
	err := query.Preload("Industry").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&opportunities).Error

	return opportunities, total, err
}

func (r *OpportunityRepositoryImpl) ListByIndustry(industryID string, limit, offset int) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	err := r.db.Where("industry_id = ?", industryID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepositoryImpl) ListPending(limit, offset int) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	err := r.db.Preload("Industry").Where("is_active = ?", false).
		Order("created_at ASC").Limit(limit).Offset(offset).
		Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepositoryImpl) CountByIndustryTypeBetween(industryID string, t models.OpportunityType, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).
		Where("industry_id = ? AND type = ? AND created_at >= ? AND created_at <= ?", industryID, t, from, to).
		Count(&count).Error
	return count, err
}

func (r *OpportunityRepositoryImpl) CountByType(t models.OpportunityType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).Where("type = ?", t).Count(&count).Error
	return count, err
}

func (r *OpportunityRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
