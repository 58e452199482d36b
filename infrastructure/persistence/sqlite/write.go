package sqlite

import (
	"context"
	"fmt"

	"presidia-backend/domain/model"
)

// The write path exists for seeding only. IDs are assigned by the database
// and written back to the passed entity so seed code can wire foreign keys.

// CreateOrganization inserts an organization.
func (s *Store) CreateOrganization(ctx context.Context, org *model.Organization) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO organizations (name, description) VALUES (?, ?)
	`, org.Name, nullStr(org.Description))
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	org.ID, err = res.LastInsertId()
	return err
}

// CreateContact inserts a contact.
func (s *Store) CreateContact(ctx context.Context, contact *model.Contact) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (name, role, organization_id, image_url, bio, linkedin_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, contact.Name, nullStr(contact.Role), nullInt(contact.OrganizationID),
		nullStr(contact.ImageURL), nullStr(contact.Bio), nullStr(contact.LinkedinURL))
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	contact.ID, err = res.LastInsertId()
	return err
}

// CreateContactLink inserts a contact link.
func (s *Store) CreateContactLink(ctx context.Context, link *model.ContactLink) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_links (contact_id, type, url, label) VALUES (?, ?, ?, ?)
	`, link.ContactID, string(link.Type), link.URL, nullStr(link.Label))
	if err != nil {
		return fmt.Errorf("insert contact link: %w", err)
	}
	link.ID, err = res.LastInsertId()
	return err
}

// CreateCareerEntry inserts a career history entry.
func (s *Store) CreateCareerEntry(ctx context.Context, entry *model.CareerEntry) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO career_history (contact_id, role, company, start_date, end_date,
			description, is_current, source_url, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ContactID, entry.Role, entry.Company, nullStr(entry.StartDate),
		nullStr(entry.EndDate), nullStr(entry.Description), entry.IsCurrent,
		nullStr(entry.SourceURL), nullStr(entry.Source))
	if err != nil {
		return fmt.Errorf("insert career entry: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	return err
}

// CreateNewsItem inserts a news item.
func (s *Store) CreateNewsItem(ctx context.Context, item *model.NewsItem) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_news (contact_id, title, source, url, date, summary)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ContactID, item.Title, nullStr(item.Source), nullStr(item.URL),
		item.Date, nullStr(item.Summary))
	if err != nil {
		return fmt.Errorf("insert news item: %w", err)
	}
	item.ID, err = res.LastInsertId()
	return err
}

// CreateLifeEvent inserts a life event.
func (s *Store) CreateLifeEvent(ctx context.Context, event *model.LifeEvent) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_life_events (contact_id, event, date, description, source_url, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ContactID, event.Event, event.Date, nullStr(event.Description),
		nullStr(event.SourceURL), nullStr(event.Source))
	if err != nil {
		return fmt.Errorf("insert life event: %w", err)
	}
	event.ID, err = res.LastInsertId()
	return err
}

// CreateTimelineEntry inserts a timeline entry.
func (s *Store) CreateTimelineEntry(ctx context.Context, entry *model.TimelineEntry) error {
	var direction *string
	if entry.Direction != nil {
		d := string(*entry.Direction)
		direction = &d
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_timeline (contact_id, type, title, description, date,
			direction, from_address, to_address, duration, channel)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ContactID, string(entry.Type), entry.Title, nullStr(entry.Description),
		entry.Date, nullStr(direction), nullStr(entry.FromAddress),
		nullStr(entry.ToAddress), nullStr(entry.Duration), nullStr(entry.Channel))
	if err != nil {
		return fmt.Errorf("insert timeline entry: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	return err
}

// CreateBriefing inserts a briefing. The caller supplies the date-derived ID.
func (s *Store) CreateBriefing(ctx context.Context, briefing *model.Briefing) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO briefings (id, date, title) VALUES (?, ?, ?)
	`, briefing.ID, briefing.Date, briefing.Title)
	if err != nil {
		return fmt.Errorf("insert briefing: %w", err)
	}
	return nil
}

// CreateMeeting inserts a meeting.
func (s *Store) CreateMeeting(ctx context.Context, meeting *model.Meeting) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO meetings (briefing_id, contact_id, time, hour, talking_points,
			recent_news, summary, context, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, meeting.BriefingID, meeting.ContactID, meeting.Time, meeting.Hour,
		nullStr(meeting.TalkingPoints), nullStr(meeting.RecentNews),
		nullStr(meeting.Summary), nullStr(meeting.Context), nullStr(meeting.Notes))
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	meeting.ID, err = res.LastInsertId()
	return err
}
