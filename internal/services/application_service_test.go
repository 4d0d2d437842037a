package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/models"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

func candidateFixture() *models.CandidateProfile {
	p := &models.CandidateProfile{
		UserID:    "candidate-user",
		FirstName: "Aigerim",
		LastName:  "Bekova",
	}
	p.ID = "candidate-1"
	return p
}

func activeOpportunity() *models.Opportunity {
	opp := pendingOpportunity()
	opp.IsActive = true
	return opp
}

func TestApplicationService_Apply(t *testing.T) {
	candidate := candidateFixture()
	opp := activeOpportunity()
	notifier := &recordingNotifier{}

	svc := NewApplicationService(
		&mockApplicationRepo{
			exists: func(opportunityID, candidateID string) (bool, error) { return false, nil },
			create: func(app *models.Application) error {
				app.ID = "app-1"
				return nil
			},
		},
		&mockOpportunityRepo{
			findByID: func(string) (*models.Opportunity, error) { return opp, nil },
		},
		&mockProfileRepo{
			findCandidateByUserID: func(string) (*models.CandidateProfile, error) { return candidate, nil },
		},
		notifier,
	)

	resp, err := svc.Apply("candidate-user", false, &dto.CreateApplicationRequest{OpportunityID: opp.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)

	// The owner is notified under the candidate's display name.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, opp.Industry.UserID, notifier.sent[0].UserID)
	assert.Contains(t, notifier.sent[0].Body, "Aigerim Bekova")
}

func TestApplicationService_Apply_InactiveOpportunity(t *testing.T) {
	candidate := candidateFixture()
	opp := pendingOpportunity()

	svc := NewApplicationService(
		&mockApplicationRepo{},
		&mockOpportunityRepo{
			findByID: func(string) (*models.Opportunity, error) { return opp, nil },
		},
		&mockProfileRepo{
			findCandidateByUserID: func(string) (*models.CandidateProfile, error) { return candidate, nil },
		},
		&recordingNotifier{},
	)

	_, err := svc.Apply("candidate-user", false, &dto.CreateApplicationRequest{OpportunityID: opp.ID})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrOpportunityInactive.Code, appErr.Code)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	candidate := candidateFixture()
	opp := activeOpportunity()

	svc := NewApplicationService(
		&mockApplicationRepo{
			exists: func(string, string) (bool, error) { return true, nil },
		},
		&mockOpportunityRepo{
			findByID: func(string) (*models.Opportunity, error) { return opp, nil },
		},
		&mockProfileRepo{
			findCandidateByUserID: func(string) (*models.CandidateProfile, error) { return candidate, nil },
		},
		&recordingNotifier{},
	)

	_, err := svc.Apply("candidate-user", false, &dto.CreateApplicationRequest{OpportunityID: opp.ID})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrAlreadyApplied.Code, appErr.Code)
}

func TestApplicationService_UpdateStatus_OnlyOwner(t *testing.T) {
	opp := activeOpportunity()
	application := &models.Application{
		OpportunityID: opp.ID,
		CandidateID:   "candidate-1",
		Status:        models.ApplicationStatusPending,
		Opportunity:   opp,
		Candidate:     candidateFixture(),
	}
	application.ID = "app-1"

	otherIndustry := &models.IndustryProfile{UserID: "other-user", CompanyName: "Other Co", AnonymousID: "IND-FFFF"}
	otherIndustry.ID = "industry-2"

	svc := NewApplicationService(
		&mockApplicationRepo{
			findByID: func(string) (*models.Application, error) { return application, nil },
		},
		&mockOpportunityRepo{},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return otherIndustry, nil },
		},
		&recordingNotifier{},
	)

	_, err := svc.UpdateStatus("other-user", "app-1", models.ApplicationStatusShortlisted)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotResourceOwner.Code, appErr.Code)
}

func TestApplicationService_UpdateStatus_NotifiesCandidate(t *testing.T) {
	opp := activeOpportunity()
	application := &models.Application{
		OpportunityID: opp.ID,
		CandidateID:   "candidate-1",
		Status:        models.ApplicationStatusPending,
		Opportunity:   opp,
		Candidate:     candidateFixture(),
	}
	application.ID = "app-1"

	var updated models.ApplicationStatus
	notifier := &recordingNotifier{}

	svc := NewApplicationService(
		&mockApplicationRepo{
			findByID: func(string) (*models.Application, error) { return application, nil },
			updateStatus: func(_ string, status models.ApplicationStatus) error {
				updated = status
				return nil
			},
		},
		&mockOpportunityRepo{},
		&mockProfileRepo{
			findIndustryByUserID: func(string) (*models.IndustryProfile, error) { return opp.Industry, nil },
		},
		notifier,
	)

	resp, err := svc.UpdateStatus("user-1", "app-1", models.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated)
	assert.Equal(t, models.ApplicationStatusShortlisted, resp.Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "candidate-user", notifier.sent[0].UserID)
	assert.Contains(t, notifier.sent[0].Body, "shortlisted")
}

// The candidate's own list goes through the disclosure rule: a premium viewer
// sees the company name even when the industry has not opted in.
func TestApplicationService_ListOwn_DisclosesByViewerPremium(t *testing.T) {
	candidate := candidateFixture()
	opp := activeOpportunity()

	newService := func() ApplicationService {
		return NewApplicationService(
			&mockApplicationRepo{
				listByCandidate: func(string, int, int) ([]models.Application, error) {
					app := models.Application{
						OpportunityID: opp.ID,
						CandidateID:   candidate.ID,
						Status:        models.ApplicationStatusPending,
						Opportunity:   opp,
					}
					app.ID = "app-1"
					return []models.Application{app}, nil
				},
			},
			&mockOpportunityRepo{},
			&mockProfileRepo{
				findCandidateByUserID: func(string) (*models.CandidateProfile, error) { return candidate, nil },
			},
			&recordingNotifier{},
		)
	}

	resp, err := newService().ListOwn("candidate-user", false, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	require.NotNil(t, resp.Applications[0].Opportunity)
	assert.Equal(t, "Company #2C9", resp.Applications[0].Opportunity.CompanyName)

	resp, err = newService().ListOwn("candidate-user", true, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	require.NotNil(t, resp.Applications[0].Opportunity)
	assert.Equal(t, "Acme Robotics", resp.Applications[0].Opportunity.CompanyName)
}
