package queries

import "presidia-backend/pkg/utils"

// GetContactQuery represents a query for a contact's profile page.
type GetContactQuery struct {
	ContactID int64 `validate:"required,gt=0"`
}

// Validate validates the GetContactQuery
func (q GetContactQuery) Validate() error {
	return utils.ValidateStruct(q)
}
