// Package composer assembles the denormalized view objects each page needs
// from the raw rows the store returns. It is pure and stateless: every
// operation is a synchronous transform with no I/O, so callers can fan out
// their fetches however they like and compose once everything is in hand.
package composer

import "presidia-backend/domain/model"

// MeetingDetailView is the full meeting page payload: the joined meeting row
// with its JSON text columns decoded, plus the contact's five research
// collections. Collection fields are always present, empty when there is no
// data, never null.
type MeetingDetailView struct {
	ID                      int64                 `json:"id"`
	BriefingID              string                `json:"briefingId"`
	Time                    string                `json:"time"`
	Hour                    float64               `json:"hour"`
	TalkingPoints           []string              `json:"talkingPoints"`
	RecentNews              *string               `json:"recentNews,omitempty"`
	Summary                 *string               `json:"summary,omitempty"`
	Context                 *string               `json:"context,omitempty"`
	Notes                   []string              `json:"notes"`
	ContactID               int64                 `json:"contactId"`
	ContactName             string                `json:"contactName"`
	ContactRole             *string               `json:"contactRole,omitempty"`
	ContactImage            *string               `json:"contactImage,omitempty"`
	ContactBio              *string               `json:"contactBio,omitempty"`
	ContactLinkedin         *string               `json:"contactLinkedin,omitempty"`
	OrganizationID          *int64                `json:"organizationId,omitempty"`
	OrganizationName        *string               `json:"organizationName,omitempty"`
	OrganizationDescription *string               `json:"organizationDescription,omitempty"`
	Links                   []model.ContactLink   `json:"links"`
	Career                  []model.CareerEntry   `json:"career"`
	News                    []model.NewsItem      `json:"news"`
	LifeEvents              []model.LifeEvent     `json:"lifeEvents"`
	Timeline                []model.TimelineEntry `json:"timeline"`
}

// ContactProfileView is the contact page payload: the contact joined with its
// organization, every meeting the contact appears in (with parent briefing
// display fields), and four research collections.
type ContactProfileView struct {
	ID               int64                  `json:"id"`
	Name             string                 `json:"name"`
	Role             *string                `json:"role,omitempty"`
	ImageURL         *string                `json:"imageUrl,omitempty"`
	Bio              *string                `json:"bio,omitempty"`
	LinkedinURL      *string                `json:"linkedinUrl,omitempty"`
	OrganizationID   *int64                 `json:"organizationId,omitempty"`
	OrganizationName *string                `json:"organizationName,omitempty"`
	Meetings         []model.ContactMeeting `json:"meetings"`
	Links            []model.ContactLink    `json:"links"`
	Career           []model.CareerEntry    `json:"career"`
	News             []model.NewsItem       `json:"news"`
	LifeEvents       []model.LifeEvent      `json:"lifeEvents"`
}

// OrganizationProfileView is the organization page payload: the organization,
// its member contacts, and every meeting involving any of them.
type OrganizationProfileView struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Contacts    []model.Contact    `json:"contacts"`
	Meetings    []model.OrgMeeting `json:"meetings"`
}

// BriefingView is the briefing page payload: the briefing header, its
// meetings in hour order, the merged daily timeline, and the dashboard
// header counts.
type BriefingView struct {
	ID       string                  `json:"id"`
	Date     string                  `json:"date"`
	Title    string                  `json:"title"`
	Meetings []model.BriefingMeeting `json:"meetings"`
	Timeline []TimelineItem          `json:"timeline"`
	Stats    BriefingStats           `json:"stats"`
}

// BriefingStats are the meeting/company/people counts shown on the briefing
// header.
type BriefingStats struct {
	Meetings  int `json:"meetings"`
	Companies int `json:"companies"`
	People    int `json:"people"`
}
