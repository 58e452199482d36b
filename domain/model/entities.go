// Package model defines the entities behind the briefing schema: organizations,
// contacts and their research collections, briefings, and scheduled meetings.
// All rows are created by out-of-band seeding and treated as immutable by the
// read path.
package model

// Organization is a company a contact belongs to.
type Organization struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Contact is a person profile. A contact belongs to at most one organization.
type Contact struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Role           *string `json:"role,omitempty"`
	OrganizationID *int64  `json:"organizationId,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	LinkedinURL    *string `json:"linkedinUrl,omitempty"`
}

// LinkType categorizes a contact link.
type LinkType string

const (
	LinkLinkedin    LinkType = "linkedin"
	LinkTwitter     LinkType = "twitter"
	LinkInstagram   LinkType = "instagram"
	LinkGithub      LinkType = "github"
	LinkWebsite     LinkType = "website"
	LinkSubstack    LinkType = "substack"
	LinkYCombinator LinkType = "ycombinator"
	LinkOther       LinkType = "other"
)

// ContactLink is an external profile or site associated with a contact.
type ContactLink struct {
	ID        int64    `json:"id"`
	ContactID int64    `json:"contactId"`
	Type      LinkType `json:"type"`
	URL       string   `json:"url"`
	Label     *string  `json:"label,omitempty"`
}

// CareerEntry is one position in a contact's career history. Dates are
// free-text display strings ("Jan 2022", "Present") and are never parsed.
type CareerEntry struct {
	ID          int64   `json:"id"`
	ContactID   int64   `json:"contactId"`
	Role        string  `json:"role"`
	Company     string  `json:"company"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCurrent   bool    `json:"isCurrent"`
	SourceURL   *string `json:"sourceUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// NewsItem is a news mention gathered for a contact.
type NewsItem struct {
	ID        int64   `json:"id"`
	ContactID int64   `json:"contactId"`
	Title     string  `json:"title"`
	Source    *string `json:"source,omitempty"`
	URL       *string `json:"url,omitempty"`
	Date      string  `json:"date"`
	Summary   *string `json:"summary,omitempty"`
}

// LifeEvent is a personal milestone gathered for a contact.
type LifeEvent struct {
	ID          int64   `json:"id"`
	ContactID   int64   `json:"contactId"`
	Event       string  `json:"event"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	SourceURL   *string `json:"sourceUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// InteractionType categorizes a timeline entry.
type InteractionType string

const (
	InteractionEmail   InteractionType = "email"
	InteractionCall    InteractionType = "call"
	InteractionMeeting InteractionType = "meeting"
	InteractionIntro   InteractionType = "intro"
	InteractionNote    InteractionType = "note"
)

// Direction marks an email as inbound or outbound. Meaningful only for
// email-type timeline entries.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// TimelineEntry is a historical interaction with a contact, distinct from a
// scheduled meeting.
type TimelineEntry struct {
	ID          int64           `json:"id"`
	ContactID   int64           `json:"contactId"`
	Type        InteractionType `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Date        string          `json:"date"`
	Direction   *Direction      `json:"direction,omitempty"`
	FromAddress *string         `json:"fromAddress,omitempty"`
	ToAddress   *string         `json:"toAddress,omitempty"`
	Duration    *string         `json:"duration,omitempty"`
	Channel     *string         `json:"channel,omitempty"`
}

// Briefing is the collection of meetings scheduled for one calendar day. The
// ID is a date-derived key such as "2026-02-09"; Date is the display form.
type Briefing struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
}

// Meeting is a scheduled interaction with one contact on one briefing day.
// Hour is the canonical sort key (10.5 means 10:30); Time is the display
// string kept consistent with it at write time and never parsed back.
// TalkingPoints and Notes hold JSON-encoded string arrays.
type Meeting struct {
	ID            int64   `json:"id"`
	BriefingID    string  `json:"briefingId"`
	ContactID     int64   `json:"contactId"`
	Time          string  `json:"time"`
	Hour          float64 `json:"hour"`
	TalkingPoints *string `json:"talkingPoints,omitempty"`
	RecentNews    *string `json:"recentNews,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	Context       *string `json:"context,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}
