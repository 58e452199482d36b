package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"presidia-backend/domain/model"
)

// GetBriefing retrieves a briefing by its date-derived ID.
func (s *Store) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, title FROM briefings WHERE id = ?
	`, id)

	var b model.Briefing
	if err := row.Scan(&b.ID, &b.Date, &b.Title); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan briefing: %w", err)
	}
	return &b, nil
}

// ListBriefings returns all briefings, most recent first. Briefing IDs are
// date-derived, so ordering by ID orders by day.
func (s *Store) ListBriefings(ctx context.Context) ([]model.Briefing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, title FROM briefings ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query briefings: %w", err)
	}
	defer rows.Close()

	var briefings []model.Briefing
	for rows.Next() {
		var b model.Briefing
		if err := rows.Scan(&b.ID, &b.Date, &b.Title); err != nil {
			return nil, fmt.Errorf("scan briefing: %w", err)
		}
		briefings = append(briefings, b)
	}
	return briefings, rows.Err()
}

// MeetingsForBriefing returns a briefing's meetings joined with contact and
// organization, ordered ascending by hour.
func (s *Store) MeetingsForBriefing(ctx context.Context, briefingID string) ([]model.BriefingMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.time, m.hour, m.talking_points, m.recent_news,
		       c.id, c.name, c.role, c.image_url, c.bio, c.linkedin_url,
		       o.id, o.name
		FROM meetings m
		JOIN contacts c ON m.contact_id = c.id
		LEFT JOIN organizations o ON c.organization_id = o.id
		WHERE m.briefing_id = ?
		ORDER BY m.hour
	`, briefingID)
	if err != nil {
		return nil, fmt.Errorf("query briefing meetings: %w", err)
	}
	defer rows.Close()

	var meetings []model.BriefingMeeting
	for rows.Next() {
		m, err := scanBriefingMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func scanBriefingMeeting(rows *sql.Rows) (model.BriefingMeeting, error) {
	var m model.BriefingMeeting
	var talkingPoints, recentNews, role, image, bio, linkedin, orgName sql.NullString
	var orgID sql.NullInt64
	if err := rows.Scan(&m.ID, &m.Time, &m.Hour, &talkingPoints, &recentNews,
		&m.ContactID, &m.ContactName, &role, &image, &bio, &linkedin,
		&orgID, &orgName); err != nil {
		return m, fmt.Errorf("scan briefing meeting: %w", err)
	}
	m.TalkingPoints = strPtr(talkingPoints)
	m.RecentNews = strPtr(recentNews)
	m.ContactRole = strPtr(role)
	m.ContactImage = strPtr(image)
	m.ContactBio = strPtr(bio)
	m.ContactLinkedin = strPtr(linkedin)
	m.OrganizationID = intPtr(orgID)
	m.OrganizationName = strPtr(orgName)
	return m, nil
}

// GetMeeting retrieves one meeting joined with contact and organization,
// including the meeting's own free-text fields.
func (s *Store) GetMeeting(ctx context.Context, id int64) (*model.MeetingRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT m.id, m.briefing_id, m.time, m.hour, m.talking_points,
		       m.recent_news, m.summary, m.context, m.notes,
		       c.id, c.name, c.role, c.image_url, c.bio, c.linkedin_url,
		       o.id, o.name, o.description
		FROM meetings m
		JOIN contacts c ON m.contact_id = c.id
		LEFT JOIN organizations o ON c.organization_id = o.id
		WHERE m.id = ?
	`, id)

	var m model.MeetingRow
	var talkingPoints, recentNews, summary, meetingContext, notes sql.NullString
	var role, image, bio, linkedin, orgName, orgDesc sql.NullString
	var orgID sql.NullInt64
	if err := row.Scan(&m.ID, &m.BriefingID, &m.Time, &m.Hour, &talkingPoints,
		&recentNews, &summary, &meetingContext, &notes,
		&m.ContactID, &m.ContactName, &role, &image, &bio, &linkedin,
		&orgID, &orgName, &orgDesc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan meeting: %w", err)
	}
	m.TalkingPoints = strPtr(talkingPoints)
	m.RecentNews = strPtr(recentNews)
	m.Summary = strPtr(summary)
	m.Context = strPtr(meetingContext)
	m.Notes = strPtr(notes)
	m.ContactRole = strPtr(role)
	m.ContactImage = strPtr(image)
	m.ContactBio = strPtr(bio)
	m.ContactLinkedin = strPtr(linkedin)
	m.OrganizationID = intPtr(orgID)
	m.OrganizationName = strPtr(orgName)
	m.OrganizationDescription = strPtr(orgDesc)
	return &m, nil
}

// GetContact retrieves a contact joined with its organization.
func (s *Store) GetContact(ctx context.Context, id int64) (*model.ContactRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.name, c.role, c.image_url, c.bio, c.linkedin_url,
		       o.id, o.name
		FROM contacts c
		LEFT JOIN organizations o ON c.organization_id = o.id
		WHERE c.id = ?
	`, id)

	var c model.ContactRow
	var role, image, bio, linkedin, orgName sql.NullString
	var orgID sql.NullInt64
	if err := row.Scan(&c.ID, &c.Name, &role, &image, &bio, &linkedin,
		&orgID, &orgName); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	c.Role = strPtr(role)
	c.ImageURL = strPtr(image)
	c.Bio = strPtr(bio)
	c.LinkedinURL = strPtr(linkedin)
	c.OrganizationID = intPtr(orgID)
	c.OrganizationName = strPtr(orgName)
	return &c, nil
}

// MeetingsForContact returns a contact's meetings joined with the parent
// briefing's display date and title, ordered by briefing ID.
func (s *Store) MeetingsForContact(ctx context.Context, contactID int64) ([]model.ContactMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.briefing_id, m.time, m.hour, m.talking_points,
		       m.recent_news, b.date, b.title
		FROM meetings m
		JOIN briefings b ON m.briefing_id = b.id
		WHERE m.contact_id = ?
		ORDER BY b.id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query contact meetings: %w", err)
	}
	defer rows.Close()

	var meetings []model.ContactMeeting
	for rows.Next() {
		var m model.ContactMeeting
		var talkingPoints, recentNews sql.NullString
		if err := rows.Scan(&m.ID, &m.BriefingID, &m.Time, &m.Hour,
			&talkingPoints, &recentNews, &m.BriefingDate, &m.BriefingTitle); err != nil {
			return nil, fmt.Errorf("scan contact meeting: %w", err)
		}
		m.TalkingPoints = strPtr(talkingPoints)
		m.RecentNews = strPtr(recentNews)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// GetOrganization retrieves an organization by ID.
func (s *Store) GetOrganization(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description FROM organizations WHERE id = ?
	`, id)

	var o model.Organization
	var desc sql.NullString
	if err := row.Scan(&o.ID, &o.Name, &desc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan organization: %w", err)
	}
	o.Description = strPtr(desc)
	return &o, nil
}

// ContactsForOrganization returns an organization's member contacts.
func (s *Store) ContactsForOrganization(ctx context.Context, orgID int64) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, organization_id, image_url, bio, linkedin_url
		FROM contacts
		WHERE organization_id = ?
		ORDER BY id
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("query organization contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		var role, image, bio, linkedin sql.NullString
		var oid sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &role, &oid, &image, &bio, &linkedin); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Role = strPtr(role)
		c.OrganizationID = intPtr(oid)
		c.ImageURL = strPtr(image)
		c.Bio = strPtr(bio)
		c.LinkedinURL = strPtr(linkedin)
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// MeetingsForOrganization returns all meetings involving any of an
// organization's contacts, joined through contacts, ordered by briefing ID.
func (s *Store) MeetingsForOrganization(ctx context.Context, orgID int64) ([]model.OrgMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.briefing_id, m.time, m.hour,
		       c.id, c.name, c.image_url, b.date
		FROM meetings m
		JOIN contacts c ON m.contact_id = c.id
		JOIN briefings b ON m.briefing_id = b.id
		WHERE c.organization_id = ?
		ORDER BY b.id
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("query organization meetings: %w", err)
	}
	defer rows.Close()

	var meetings []model.OrgMeeting
	for rows.Next() {
		var m model.OrgMeeting
		var image sql.NullString
		if err := rows.Scan(&m.ID, &m.BriefingID, &m.Time, &m.Hour,
			&m.ContactID, &m.ContactName, &image, &m.BriefingDate); err != nil {
			return nil, fmt.Errorf("scan organization meeting: %w", err)
		}
		m.ContactImage = strPtr(image)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// LinksForContact returns a contact's links.
func (s *Store) LinksForContact(ctx context.Context, contactID int64) ([]model.ContactLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, type, url, label
		FROM contact_links WHERE contact_id = ? ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query contact links: %w", err)
	}
	defer rows.Close()

	var links []model.ContactLink
	for rows.Next() {
		var l model.ContactLink
		var label sql.NullString
		if err := rows.Scan(&l.ID, &l.ContactID, &l.Type, &l.URL, &label); err != nil {
			return nil, fmt.Errorf("scan contact link: %w", err)
		}
		l.Label = strPtr(label)
		links = append(links, l)
	}
	return links, rows.Err()
}

// CareerForContact returns a contact's career history.
func (s *Store) CareerForContact(ctx context.Context, contactID int64) ([]model.CareerEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, role, company, start_date, end_date,
		       description, is_current, source_url, source
		FROM career_history WHERE contact_id = ? ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query career history: %w", err)
	}
	defer rows.Close()

	var entries []model.CareerEntry
	for rows.Next() {
		var e model.CareerEntry
		var start, end, desc, sourceURL, source sql.NullString
		if err := rows.Scan(&e.ID, &e.ContactID, &e.Role, &e.Company, &start,
			&end, &desc, &e.IsCurrent, &sourceURL, &source); err != nil {
			return nil, fmt.Errorf("scan career entry: %w", err)
		}
		e.StartDate = strPtr(start)
		e.EndDate = strPtr(end)
		e.Description = strPtr(desc)
		e.SourceURL = strPtr(sourceURL)
		e.Source = strPtr(source)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NewsForContact returns a contact's news items.
func (s *Store) NewsForContact(ctx context.Context, contactID int64) ([]model.NewsItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, title, source, url, date, summary
		FROM contact_news WHERE contact_id = ? ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query contact news: %w", err)
	}
	defer rows.Close()

	var items []model.NewsItem
	for rows.Next() {
		var n model.NewsItem
		var source, url, summary sql.NullString
		if err := rows.Scan(&n.ID, &n.ContactID, &n.Title, &source, &url,
			&n.Date, &summary); err != nil {
			return nil, fmt.Errorf("scan news item: %w", err)
		}
		n.Source = strPtr(source)
		n.URL = strPtr(url)
		n.Summary = strPtr(summary)
		items = append(items, n)
	}
	return items, rows.Err()
}

// LifeEventsForContact returns a contact's life events.
func (s *Store) LifeEventsForContact(ctx context.Context, contactID int64) ([]model.LifeEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, event, date, description, source_url, source
		FROM contact_life_events WHERE contact_id = ? ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query life events: %w", err)
	}
	defer rows.Close()

	var events []model.LifeEvent
	for rows.Next() {
		var e model.LifeEvent
		var desc, sourceURL, source sql.NullString
		if err := rows.Scan(&e.ID, &e.ContactID, &e.Event, &e.Date, &desc,
			&sourceURL, &source); err != nil {
			return nil, fmt.Errorf("scan life event: %w", err)
		}
		e.Description = strPtr(desc)
		e.SourceURL = strPtr(sourceURL)
		e.Source = strPtr(source)
		events = append(events, e)
	}
	return events, rows.Err()
}

// TimelineForContact returns a contact's interaction timeline.
func (s *Store) TimelineForContact(ctx context.Context, contactID int64) ([]model.TimelineEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, type, title, description, date, direction,
		       from_address, to_address, duration, channel
		FROM contact_timeline WHERE contact_id = ? ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("query contact timeline: %w", err)
	}
	defer rows.Close()

	var entries []model.TimelineEntry
	for rows.Next() {
		var e model.TimelineEntry
		var desc, direction, from, to, duration, channel sql.NullString
		if err := rows.Scan(&e.ID, &e.ContactID, &e.Type, &e.Title, &desc,
			&e.Date, &direction, &from, &to, &duration, &channel); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		e.Description = strPtr(desc)
		if direction.Valid {
			d := model.Direction(direction.String)
			e.Direction = &d
		}
		e.FromAddress = strPtr(from)
		e.ToAddress = strPtr(to)
		e.Duration = strPtr(duration)
		e.Channel = strPtr(channel)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
