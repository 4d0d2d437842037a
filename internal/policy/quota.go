package policy

import (
	"time"

	"internhub_backend/internal/models"
)

// UnlimitedQuota is the sentinel remaining count reported for premium industries.
const UnlimitedQuota = 999

// Monthly allowances for non-premium industries, per opportunity type.
var monthlyAllowance = map[models.OpportunityType]int{
	models.OpportunityTypeInternship:  3,
	models.OpportunityTypeProject:     3,
	models.OpportunityTypeFreelancing: 0,
}

// QuotaDecision is the outcome of a quota check. The policy only counts, it
// never reserves: the caller re-runs the check before accepting a creation.
type QuotaDecision struct {
	Allowed   bool
	Remaining int
	Allowance int
}

// Allowance returns the monthly allowance for a non-premium industry.
// Unknown types get no allowance.
func Allowance(t models.OpportunityType) int {
	return monthlyAllowance[t]
}

// CheckQuota decides whether an industry may create another opportunity of the
// given type this month. countThisMonth is the number of opportunities of that
// type the industry already created inside the current calendar month.
func CheckQuota(t models.OpportunityType, ownerPremium bool, countThisMonth int) QuotaDecision {
	if ownerPremium {
		return QuotaDecision{Allowed: true, Remaining: UnlimitedQuota, Allowance: UnlimitedQuota}
	}
	allowance := Allowance(t)
	remaining := allowance - countThisMonth
	if remaining < 0 {
		remaining = 0
	}
	return QuotaDecision{Allowed: remaining > 0, Remaining: remaining, Allowance: allowance}
}

// MonthWindow returns the inclusive bounds of the calendar month containing
// now, in now's location: the first instant of the month and the end-of-month
// day at 23:59:59.
func MonthWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
