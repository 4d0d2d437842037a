// Package policy holds the marketplace's access rules as pure functions:
// company-name disclosure, monthly posting quotas and conversation initiation.
// Policies never touch the store; callers load the inputs and act on the
// returned decision.
package policy

// RedactedPrefix is the fixed prefix of an anonymized company label.
const RedactedPrefix = "Company #"

// DiscloseCompanyName returns the company name a viewer is allowed to see.
// The real name is disclosed when the industry opted in (showCompanyName) or
// the viewer holds premium status. Otherwise the label is the fixed prefix
// plus the last three characters of the industry's anonymous id; shorter ids
// are used in full.
func DiscloseCompanyName(showCompanyName bool, anonymousID, companyName string, viewerPremium bool) string {
	if showCompanyName || viewerPremium {
		return companyName
	}
	suffix := anonymousID
	if len(suffix) > 3 {
		suffix = suffix[len(suffix)-3:]
	}
	return RedactedPrefix + suffix
}
