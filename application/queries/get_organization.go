package queries

import "presidia-backend/pkg/utils"

// GetOrganizationQuery represents a query for an organization's profile page.
type GetOrganizationQuery struct {
	OrganizationID int64 `validate:"required,gt=0"`
}

// Validate validates the GetOrganizationQuery
func (q GetOrganizationQuery) Validate() error {
	return utils.ValidateStruct(q)
}
