package queries

import "presidia-backend/domain/model"

// ListBriefingsQuery represents a query for the briefing index shown on the
// dashboard.
type ListBriefingsQuery struct{}

// Validate validates the ListBriefingsQuery
func (q ListBriefingsQuery) Validate() error {
	return nil
}

// ListBriefingsResult represents the result of listing briefings
type ListBriefingsResult struct {
	Briefings []model.Briefing `json:"briefings"`
}
