package postgres

import (
	"context"
	"fmt"

	"presidia-backend/domain/model"
)

// The write path exists for seeding only. lib/pq does not support
// LastInsertId, so inserts use RETURNING to report the assigned ID.

// CreateOrganization inserts an organization.
func (s *Store) CreateOrganization(ctx context.Context, org *model.Organization) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO organizations (name, description) VALUES ($1, $2) RETURNING id
	`, org.Name, nullStr(org.Description)).Scan(&org.ID)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// CreateContact inserts a contact.
func (s *Store) CreateContact(ctx context.Context, contact *model.Contact) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, role, organization_id, image_url, bio, linkedin_url)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
	`, contact.Name, nullStr(contact.Role), nullInt(contact.OrganizationID),
		nullStr(contact.ImageURL), nullStr(contact.Bio), nullStr(contact.LinkedinURL)).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// CreateContactLink inserts a contact link.
func (s *Store) CreateContactLink(ctx context.Context, link *model.ContactLink) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_links (contact_id, type, url, label)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, link.ContactID, string(link.Type), link.URL, nullStr(link.Label)).Scan(&link.ID)
	if err != nil {
		return fmt.Errorf("insert contact link: %w", err)
	}
	return nil
}

// CreateCareerEntry inserts a career history entry.
func (s *Store) CreateCareerEntry(ctx context.Context, entry *model.CareerEntry) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO career_history (contact_id, role, company, start_date, end_date,
			description, is_current, source_url, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id
	`, entry.ContactID, entry.Role, entry.Company, nullStr(entry.StartDate),
		nullStr(entry.EndDate), nullStr(entry.Description), entry.IsCurrent,
		nullStr(entry.SourceURL), nullStr(entry.Source)).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert career entry: %w", err)
	}
	return nil
}

// CreateNewsItem inserts a news item.
func (s *Store) CreateNewsItem(ctx context.Context, item *model.NewsItem) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_news (contact_id, title, source, url, date, summary)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
	`, item.ContactID, item.Title, nullStr(item.Source), nullStr(item.URL),
		item.Date, nullStr(item.Summary)).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert news item: %w", err)
	}
	return nil
}

// CreateLifeEvent inserts a life event.
func (s *Store) CreateLifeEvent(ctx context.Context, event *model.LifeEvent) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_life_events (contact_id, event, date, description, source_url, source)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
	`, event.ContactID, event.Event, event.Date, nullStr(event.Description),
		nullStr(event.SourceURL), nullStr(event.Source)).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert life event: %w", err)
	}
	return nil
}

// CreateTimelineEntry inserts a timeline entry.
func (s *Store) CreateTimelineEntry(ctx context.Context, entry *model.TimelineEntry) error {
	var direction *string
	if entry.Direction != nil {
		d := string(*entry.Direction)
		direction = &d
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_timeline (contact_id, type, title, description, date,
			direction, from_address, to_address, duration, channel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id
	`, entry.ContactID, string(entry.Type), entry.Title, nullStr(entry.Description),
		entry.Date, nullStr(direction), nullStr(entry.FromAddress),
		nullStr(entry.ToAddress), nullStr(entry.Duration), nullStr(entry.Channel)).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert timeline entry: %w", err)
	}
	return nil
}

// CreateBriefing inserts a briefing. The caller supplies the date-derived ID.
func (s *Store) CreateBriefing(ctx context.Context, briefing *model.Briefing) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO briefings (id, date, title) VALUES ($1, $2, $3)
	`, briefing.ID, briefing.Date, briefing.Title)
	if err != nil {
		return fmt.Errorf("insert briefing: %w", err)
	}
	return nil
}

// CreateMeeting inserts a meeting.
func (s *Store) CreateMeeting(ctx context.Context, meeting *model.Meeting) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO meetings (briefing_id, contact_id, time, hour, talking_points,
			recent_news, summary, context, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id
	`, meeting.BriefingID, meeting.ContactID, meeting.Time, meeting.Hour,
		nullStr(meeting.TalkingPoints), nullStr(meeting.RecentNews),
		nullStr(meeting.Summary), nullStr(meeting.Context), nullStr(meeting.Notes)).Scan(&meeting.ID)
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	return nil
}
