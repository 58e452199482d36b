package queries

import "presidia-backend/pkg/utils"

// GetMeetingQuery represents a query for a single meeting's detail view,
// including the contact's research collections.
type GetMeetingQuery struct {
	MeetingID int64 `validate:"required,gt=0"`
}

// Validate validates the GetMeetingQuery
func (q GetMeetingQuery) Validate() error {
	return utils.ValidateStruct(q)
}
