package queries

import "presidia-backend/pkg/utils"

// GetBriefingQuery represents a query for one briefing day: header, meetings,
// and the merged daily timeline.
type GetBriefingQuery struct {
	BriefingID string `validate:"required"`
}

// Validate validates the GetBriefingQuery
func (q GetBriefingQuery) Validate() error {
	return utils.ValidateStruct(q)
}
