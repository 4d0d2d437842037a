package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/models"
)

func pendingOpportunity() *models.Opportunity {
	profile := industryFixture()
	opp := &models.Opportunity{
		IndustryID: profile.ID,
		Title:      "Backend intern",
		Type:       models.OpportunityTypeInternship,
		IsActive:   false,
		Industry:   profile,
	}
	opp.ID = "opp-1"
	return opp
}

func TestModerationService_ApproveActivates(t *testing.T) {
	opp := pendingOpportunity()
	var activated *bool

	audit := &mockAuditRepo{}
	notifier := &recordingNotifier{}
	svc := NewModerationService(
		&mockOpportunityRepo{
			findByID: func(id string) (*models.Opportunity, error) { return opp, nil },
			setActive: func(id string, active bool) error {
				activated = &active
				return nil
			},
		},
		&mockProfileRepo{},
		&mockUserRepo{},
		audit,
		notifier,
	)

	require.NoError(t, svc.ApproveOpportunity("admin-1", "opp-1"))
	require.NotNil(t, activated)
	assert.True(t, *activated)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "opportunity.approve", audit.entries[0].Action)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, opp.Industry.UserID, notifier.sent[0].UserID)
}

func TestModerationService_RejectReturnsToPending(t *testing.T) {
	opp := pendingOpportunity()
	var activated *bool

	notifier := &recordingNotifier{}
	svc := NewModerationService(
		&mockOpportunityRepo{
			findByID: func(string) (*models.Opportunity, error) { return opp, nil },
			setActive: func(_ string, active bool) error {
				activated = &active
				return nil
			},
		},
		&mockProfileRepo{},
		&mockUserRepo{},
		&mockAuditRepo{},
		notifier,
	)

	require.NoError(t, svc.RejectOpportunity("admin-1", "opp-1", "too vague"))
	require.NotNil(t, activated)
	assert.False(t, *activated, "rejection keeps the posting editable, not deleted")

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Body, "too vague")
}

func TestModerationService_VerifyIndustryApprove(t *testing.T) {
	profile := industryFixture()
	var stamped *time.Time

	svc := NewModerationService(
		&mockOpportunityRepo{},
		&mockProfileRepo{
			findIndustryByID: func(string) (*models.IndustryProfile, error) { return profile, nil },
			markIndustryVerified: func(_ string, at time.Time) error {
				stamped = &at
				return nil
			},
		},
		&mockUserRepo{},
		&mockAuditRepo{},
		&recordingNotifier{},
	)

	require.NoError(t, svc.VerifyIndustry("admin-1", profile.ID, true, ""))
	require.NotNil(t, stamped)
	assert.WithinDuration(t, time.Now(), *stamped, time.Minute)
}

func TestModerationService_VerifyIndustryRejectLeavesStateAlone(t *testing.T) {
	profile := industryFixture()

	audit := &mockAuditRepo{}
	notifier := &recordingNotifier{}
	svc := NewModerationService(
		&mockOpportunityRepo{},
		&mockProfileRepo{
			findIndustryByID: func(string) (*models.IndustryProfile, error) { return profile, nil },
			markIndustryVerified: func(string, time.Time) error {
				t.Fatal("rejection must not stamp the verified flag")
				return nil
			},
		},
		&mockUserRepo{},
		audit,
		notifier,
	)

	require.NoError(t, svc.VerifyIndustry("admin-1", profile.ID, false, "papers missing"))

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "verification.reject", audit.entries[0].Action)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Body, "papers missing")
}
