package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
)

func setupOpportunityDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&models.Opportunity{}, &models.IndustryProfile{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func createOpportunityAt(t *testing.T, db *gorm.DB, industryID string, typ models.OpportunityType, at time.Time) {
	t.Helper()
	opp := &models.Opportunity{
		IndustryID: industryID,
		Title:      "Test opportunity",
		Type:       typ,
	}
	require.NoError(t, db.Create(opp).Error)
	// CreatedAt is set by the hook; pin it to the scenario's timestamp.
	require.NoError(t, db.Model(opp).UpdateColumn("created_at", at).Error)
}

func TestOpportunityRepository_CountByIndustryTypeBetween(t *testing.T) {
	db := setupOpportunityDB(t)
	repo := NewOpportunityRepository(db)

	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
	start, end := policy.MonthWindow(now)

	// Two internships this month, one last month, one project this month.
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, now)
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, now.AddDate(0, 0, 5))
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, now.AddDate(0, -1, 0))
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeProject, now)
	// Another industry's post does not count.
	createOpportunityAt(t, db, "ind-2", models.OpportunityTypeInternship, now)

	count, err := repo.CountByIndustryTypeBetween("ind-1", models.OpportunityTypeInternship, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByIndustryTypeBetween("ind-1", models.OpportunityTypeProject, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOpportunityRepository_CountWindowBoundsInclusive(t *testing.T) {
	db := setupOpportunityDB(t)
	repo := NewOpportunityRepository(db)

	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
	start, end := policy.MonthWindow(now)

	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, start)
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, end)
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, start.Add(-time.Second))
	createOpportunityAt(t, db, "ind-1", models.OpportunityTypeInternship, end.Add(time.Second))

	count, err := repo.CountByIndustryTypeBetween("ind-1", models.OpportunityTypeInternship, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOpportunityRepository_SetActiveAndDelete(t *testing.T) {
	db := setupOpportunityDB(t)
	repo := NewOpportunityRepository(db)

	opp := &models.Opportunity{IndustryID: "ind-1", Title: "Backend intern", Type: models.OpportunityTypeInternship}
	require.NoError(t, repo.Create(opp))
	assert.False(t, opp.IsActive)

	require.NoError(t, repo.SetActive(opp.ID, true))
	got, err := repo.FindByID(opp.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	require.NoError(t, repo.SetActive(opp.ID, false))
	got, err = repo.FindByID(opp.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.Delete(opp.ID))
	_, err = repo.FindByID(opp.ID)
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
}
