package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

func industryFixture() *models.IndustryProfile {
	p := &models.IndustryProfile{
		UserID:      "user-1",
		CompanyName: "Acme Robotics",
		AnonymousID: "IND-84F2C9",
	}
	p.ID = "industry-1"
	return p
}

func TestOpportunityService_Create_WithinQuota(t *testing.T) {
	profile := industryFixture()
	var created *models.Opportunity

	svc := NewOpportunityService(
		&mockOpportunityRepo{
			countByIndustryTypeBetween: func(industryID string, typ models.OpportunityType, from, to time.Time) (int64, error) {
				assert.Equal(t, profile.ID, industryID)
				// The window must span the current calendar month.
				start, end := policy.MonthWindow(time.Now())
				assert.Equal(t, start, from)
				assert.Equal(t, end, to)
				return 2, nil
			},
			create: func(opp *models.Opportunity) error {
				opp.ID = "opp-1"
				created = opp
				return nil
			},
		},
		&mockProfileRepo{
			findIndustryByUserID: func(userID string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{},
	)

	resp, err := svc.Create("user-1", false, &dto.CreateOpportunityRequest{
		Title: "Backend intern",
		Type:  models.OpportunityTypeInternship,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.False(t, created.IsActive, "new postings must await moderation")
	assert.Equal(t, "Backend intern", resp.Title)
	assert.Equal(t, "Acme Robotics", resp.CompanyName, "owner sees the real name")
}

func TestOpportunityService_Create_QuotaExhausted(t *testing.T) {
	profile := industryFixture()

	svc := NewOpportunityService(
		&mockOpportunityRepo{
			countByIndustryTypeBetween: func(string, models.OpportunityType, time.Time, time.Time) (int64, error) {
				return 3, nil
			},
			create: func(*models.Opportunity) error {
				t.Fatal("create must not be reached past an exhausted quota")
				return nil
			},
		},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{},
	)

	_, err := svc.Create("user-1", false, &dto.CreateOpportunityRequest{
		Title: "One too many",
		Type:  models.OpportunityTypeInternship,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrQuotaExceeded.Code, appErr.Code)
}

func TestOpportunityService_Create_FreelancingNeedsPremium(t *testing.T) {
	profile := industryFixture()

	oppRepo := &mockOpportunityRepo{
		countByIndustryTypeBetween: func(string, models.OpportunityType, time.Time, time.Time) (int64, error) {
			return 0, nil
		},
		create: func(opp *models.Opportunity) error { return nil },
	}
	svc := NewOpportunityService(
		oppRepo,
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{},
	)

	req := &dto.CreateOpportunityRequest{Title: "Freelance gig", Type: models.OpportunityTypeFreelancing}

	_, err := svc.Create("user-1", false, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrQuotaExceeded.Code, appErr.Code)

	_, err = svc.Create("user-1", true, req)
	assert.NoError(t, err)
}

func TestOpportunityService_Create_PremiumIgnoresCount(t *testing.T) {
	profile := industryFixture()

	svc := NewOpportunityService(
		&mockOpportunityRepo{
			countByIndustryTypeBetween: func(string, models.OpportunityType, time.Time, time.Time) (int64, error) {
				return 250, nil
			},
			create: func(opp *models.Opportunity) error { return nil },
		},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{},
	)

	_, err := svc.Create("user-1", true, &dto.CreateOpportunityRequest{
		Title: "Always room for one more",
		Type:  models.OpportunityTypeProject,
	})
	assert.NoError(t, err)
}

func TestOpportunityService_Create_UnknownType(t *testing.T) {
	svc := NewOpportunityService(&mockOpportunityRepo{}, &mockProfileRepo{}, &mockAuditRepo{})

	_, err := svc.Create("user-1", false, &dto.CreateOpportunityRequest{
		Title: "Mystery role",
		Type:  models.OpportunityType("apprenticeship"),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrInvalidOpportunityType.Code, appErr.Code)
}

func TestOpportunityService_Create_AuditFailureSwallowed(t *testing.T) {
	profile := industryFixture()

	svc := NewOpportunityService(
		&mockOpportunityRepo{
			countByIndustryTypeBetween: func(string, models.OpportunityType, time.Time, time.Time) (int64, error) {
				return 0, nil
			},
			create: func(opp *models.Opportunity) error { return nil },
		},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{fail: assert.AnError},
	)

	_, err := svc.Create("user-1", false, &dto.CreateOpportunityRequest{
		Title: "Audit is a side channel",
		Type:  models.OpportunityTypeInternship,
	})
	assert.NoError(t, err)
}

func TestOpportunityService_QuotaStatus(t *testing.T) {
	profile := industryFixture()
	counts := map[models.OpportunityType]int64{
		models.OpportunityTypeInternship:  1,
		models.OpportunityTypeProject:     3,
		models.OpportunityTypeFreelancing: 0,
	}

	svc := NewOpportunityService(
		&mockOpportunityRepo{
			countByIndustryTypeBetween: func(_ string, typ models.OpportunityType, _, _ time.Time) (int64, error) {
				return counts[typ], nil
			},
		},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return profile, nil },
		},
		&mockAuditRepo{},
	)

	status, err := svc.QuotaStatus("user-1", false)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Remaining["internship"])
	assert.Equal(t, 0, status.Remaining["project"])
	assert.Equal(t, 0, status.Remaining["freelancing"])

	premium, err := svc.QuotaStatus("user-1", true)
	require.NoError(t, err)
	assert.Equal(t, policy.UnlimitedQuota, premium.Remaining["internship"])
	assert.Equal(t, policy.UnlimitedQuota, premium.Remaining["freelancing"])
}

func TestOpportunityResponse_Disclosure(t *testing.T) {
	profile := industryFixture()
	opp := &models.Opportunity{
		IndustryID: profile.ID,
		Title:      "Backend intern",
		Type:       models.OpportunityTypeInternship,
		Industry:   profile,
	}
	opp.ID = "opp-1"

	free := opportunityResponse(opp, false)
	assert.True(t, strings.HasPrefix(free.CompanyName, policy.RedactedPrefix))
	assert.Equal(t, "Company #2C9", free.CompanyName)

	premium := opportunityResponse(opp, true)
	assert.Equal(t, "Acme Robotics", premium.CompanyName)

	profile.ShowCompanyName = true
	optedIn := opportunityResponse(opp, false)
	assert.Equal(t, "Acme Robotics", optedIn.CompanyName)
}
