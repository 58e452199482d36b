package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   interface{ Validate() error }
		wantErr bool
	}{
		{"briefing id present", GetBriefingQuery{BriefingID: "2026-02-09"}, false},
		{"briefing id missing", GetBriefingQuery{}, true},
		{"meeting id positive", GetMeetingQuery{MeetingID: 1}, false},
		{"meeting id zero", GetMeetingQuery{}, true},
		{"meeting id negative", GetMeetingQuery{MeetingID: -5}, true},
		{"contact id positive", GetContactQuery{ContactID: 7}, false},
		{"contact id zero", GetContactQuery{}, true},
		{"organization id positive", GetOrganizationQuery{OrganizationID: 3}, false},
		{"organization id zero", GetOrganizationQuery{}, true},
		{"list briefings has nothing to validate", ListBriefingsQuery{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
