package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"internhub_backend/internal/models"
)

func TestCheckQuota_NonPremium(t *testing.T) {
	t.Run("fresh month gives full internship allowance", func(t *testing.T) {
		d := CheckQuota(models.OpportunityTypeInternship, false, 0)
		assert.True(t, d.Allowed)
		assert.Equal(t, 3, d.Remaining)
	})

	t.Run("allowance exhausted after three posts", func(t *testing.T) {
		d := CheckQuota(models.OpportunityTypeInternship, false, 3)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("count past allowance clamps at zero", func(t *testing.T) {
		d := CheckQuota(models.OpportunityTypeProject, false, 7)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("freelancing is never allowed without premium", func(t *testing.T) {
		d := CheckQuota(models.OpportunityTypeFreelancing, false, 0)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})
}

func TestCheckQuota_Premium(t *testing.T) {
	for _, typ := range []models.OpportunityType{
		models.OpportunityTypeInternship,
		models.OpportunityTypeProject,
		models.OpportunityTypeFreelancing,
	} {
		d := CheckQuota(typ, true, 500)
		assert.True(t, d.Allowed, "type %s", typ)
		assert.Equal(t, UnlimitedQuota, d.Remaining, "type %s", typ)
	}
}

func TestMonthWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Almaty")
	assert.NoError(t, err)

	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, loc)
	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 0, loc), end)

	// Bounds are inclusive: a post on the last second of the month counts.
	lastSecond := time.Date(2025, time.March, 31, 23, 59, 59, 0, loc)
	assert.False(t, lastSecond.After(end))
	assert.False(t, lastSecond.Before(start))
}

func TestMonthWindow_February(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	_, end := MonthWindow(now)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), end)
}
