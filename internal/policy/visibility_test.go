package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscloseCompanyName(t *testing.T) {
	tests := []struct {
		name            string
		showCompanyName bool
		anonymousID     string
		companyName     string
		viewerPremium   bool
		want            string
	}{
		{
			name:        "hidden name and free viewer get redacted label",
			anonymousID: "IND-84F2C9", companyName: "Acme Robotics",
			want: "Company #2C9",
		},
		{
			name:            "owner opted in",
			showCompanyName: true,
			anonymousID:     "IND-84F2C9", companyName: "Acme Robotics",
			want: "Acme Robotics",
		},
		{
			name:        "premium viewer sees through redaction",
			anonymousID: "IND-84F2C9", companyName: "Acme Robotics",
			viewerPremium: true,
			want:          "Acme Robotics",
		},
		{
			name:            "both flags set still discloses verbatim",
			showCompanyName: true, viewerPremium: true,
			anonymousID: "IND-84F2C9", companyName: "Acme Robotics",
			want: "Acme Robotics",
		},
		{
			name:        "short anonymous id used in full",
			anonymousID: "7F", companyName: "Acme Robotics",
			want: "Company #7F",
		},
		{
			name:        "empty anonymous id does not fail",
			anonymousID: "", companyName: "Acme Robotics",
			want: "Company #",
		},
		{
			name:        "exactly three characters",
			anonymousID: "9AB", companyName: "Acme Robotics",
			want: "Company #9AB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscloseCompanyName(tt.showCompanyName, tt.anonymousID, tt.companyName, tt.viewerPremium)
			assert.Equal(t, tt.want, got)
		})
	}
}
