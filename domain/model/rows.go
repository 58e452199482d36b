package model

// Joined row shapes returned by the store. Each mirrors one of the read
// queries the pages need, so the composer never issues a second round trip
// for contact or briefing display fields.

// BriefingMeeting is a meeting joined with its contact and, when the contact
// belongs to one, its organization. The store returns these ordered by hour.
type BriefingMeeting struct {
	ID               int64   `json:"id"`
	Time             string  `json:"time"`
	Hour             float64 `json:"hour"`
	TalkingPoints    *string `json:"talkingPoints,omitempty"`
	RecentNews       *string `json:"recentNews,omitempty"`
	ContactID        int64   `json:"contactId"`
	ContactName      string  `json:"contactName"`
	ContactRole      *string `json:"contactRole,omitempty"`
	ContactImage     *string `json:"contactImage,omitempty"`
	ContactBio       *string `json:"contactBio,omitempty"`
	ContactLinkedin  *string `json:"contactLinkedin,omitempty"`
	OrganizationID   *int64  `json:"organizationId,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
}

// MeetingRow is the full single-meeting shape: everything in BriefingMeeting
// plus the meeting's own prep fields and the organization description.
type MeetingRow struct {
	BriefingMeeting
	BriefingID              string  `json:"briefingId"`
	Summary                 *string `json:"summary,omitempty"`
	Context                 *string `json:"context,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
	OrganizationDescription *string `json:"organizationDescription,omitempty"`
}

// ContactRow is a contact joined with its organization name.
type ContactRow struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Role             *string `json:"role,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	LinkedinURL      *string `json:"linkedinUrl,omitempty"`
	OrganizationID   *int64  `json:"organizationId,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
}

// ContactMeeting is a meeting joined with its parent briefing's display date
// and title, for the contact profile page.
type ContactMeeting struct {
	ID            int64   `json:"id"`
	BriefingID    string  `json:"briefingId"`
	Time          string  `json:"time"`
	Hour          float64 `json:"hour"`
	TalkingPoints *string `json:"talkingPoints,omitempty"`
	RecentNews    *string `json:"recentNews,omitempty"`
	BriefingDate  string  `json:"briefingDate"`
	BriefingTitle string  `json:"briefingTitle"`
}

// OrgMeeting is a meeting reached through an organization's contacts, joined
// with contact display fields and the parent briefing date.
type OrgMeeting struct {
	ID           int64   `json:"id"`
	BriefingID   string  `json:"briefingId"`
	Time         string  `json:"time"`
	Hour         float64 `json:"hour"`
	ContactID    int64   `json:"contactId"`
	ContactName  string  `json:"contactName"`
	ContactImage *string `json:"contactImage,omitempty"`
	BriefingDate string  `json:"briefingDate"`
}
