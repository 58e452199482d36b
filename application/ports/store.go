// Package ports defines the interfaces the application layer depends on.
// The store is a port: the read path never knows which adapter is behind it.
package ports

import (
	"context"

	"presidia-backend/domain/model"
)

// Reader is the read side of the store: every query the pages need.
// Single-row lookups return (nil, nil) when no row matches; deciding what a
// missing entity means is the caller's job.
type Reader interface {
	// GetBriefing retrieves a briefing by its date-derived ID.
	GetBriefing(ctx context.Context, id string) (*model.Briefing, error)

	// ListBriefings returns all briefings, most recent first.
	ListBriefings(ctx context.Context) ([]model.Briefing, error)

	// MeetingsForBriefing returns a briefing's meetings joined with contact
	// and organization, ordered ascending by hour.
	MeetingsForBriefing(ctx context.Context, briefingID string) ([]model.BriefingMeeting, error)

	// GetMeeting retrieves one meeting joined with contact and organization.
	GetMeeting(ctx context.Context, id int64) (*model.MeetingRow, error)

	// GetContact retrieves a contact joined with its organization.
	GetContact(ctx context.Context, id int64) (*model.ContactRow, error)

	// MeetingsForContact returns a contact's meetings joined with parent
	// briefing display fields, ordered by briefing ID.
	MeetingsForContact(ctx context.Context, contactID int64) ([]model.ContactMeeting, error)

	// GetOrganization retrieves an organization by ID.
	GetOrganization(ctx context.Context, id int64) (*model.Organization, error)

	// ContactsForOrganization returns an organization's member contacts.
	ContactsForOrganization(ctx context.Context, orgID int64) ([]model.Contact, error)

	// MeetingsForOrganization returns all meetings involving any of an
	// organization's contacts, ordered by briefing ID.
	MeetingsForOrganization(ctx context.Context, orgID int64) ([]model.OrgMeeting, error)

	// LinksForContact returns a contact's links.
	LinksForContact(ctx context.Context, contactID int64) ([]model.ContactLink, error)

	// CareerForContact returns a contact's career history.
	CareerForContact(ctx context.Context, contactID int64) ([]model.CareerEntry, error)

	// NewsForContact returns a contact's news items.
	NewsForContact(ctx context.Context, contactID int64) ([]model.NewsItem, error)

	// LifeEventsForContact returns a contact's life events.
	LifeEventsForContact(ctx context.Context, contactID int64) ([]model.LifeEvent, error)

	// TimelineForContact returns a contact's interaction timeline.
	TimelineForContact(ctx context.Context, contactID int64) ([]model.TimelineEntry, error)
}

// Seeder is the write side used only by the seeding CLI. The server's read
// path never writes.
type Seeder interface {
	CreateOrganization(ctx context.Context, org *model.Organization) error
	CreateContact(ctx context.Context, contact *model.Contact) error
	CreateContactLink(ctx context.Context, link *model.ContactLink) error
	CreateCareerEntry(ctx context.Context, entry *model.CareerEntry) error
	CreateNewsItem(ctx context.Context, item *model.NewsItem) error
	CreateLifeEvent(ctx context.Context, event *model.LifeEvent) error
	CreateTimelineEntry(ctx context.Context, entry *model.TimelineEntry) error
	CreateBriefing(ctx context.Context, briefing *model.Briefing) error
	CreateMeeting(ctx context.Context, meeting *model.Meeting) error
}

// Store is the full persistence interface. Two adapters implement it: an
// embedded SQLite database and a networked Postgres database, selected by
// configuration at process start.
type Store interface {
	Reader
	Seeder

	// Migrate creates the schema if it does not exist.
	Migrate(ctx context.Context) error

	// Ping verifies the connection for readiness checks.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}
