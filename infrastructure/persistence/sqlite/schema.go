package sqlite

// schema mirrors the nine briefing tables. meetings.hour is the float sort
// key; talking_points and notes are JSON-encoded text columns.
const schema = `
CREATE TABLE IF NOT EXISTS organizations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	role TEXT,
	organization_id INTEGER REFERENCES organizations(id),
	image_url TEXT,
	bio TEXT,
	linkedin_url TEXT
);

CREATE TABLE IF NOT EXISTS contact_links (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	type TEXT NOT NULL,
	url TEXT NOT NULL,
	label TEXT
);

CREATE TABLE IF NOT EXISTS career_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	role TEXT NOT NULL,
	company TEXT NOT NULL,
	start_date TEXT,
	end_date TEXT,
	description TEXT,
	is_current INTEGER NOT NULL DEFAULT 0,
	source_url TEXT,
	source TEXT
);

CREATE TABLE IF NOT EXISTS contact_news (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	title TEXT NOT NULL,
	source TEXT,
	url TEXT,
	date TEXT NOT NULL,
	summary TEXT
);

CREATE TABLE IF NOT EXISTS contact_life_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	event TEXT NOT NULL,
	date TEXT NOT NULL,
	description TEXT,
	source_url TEXT,
	source TEXT
);

CREATE TABLE IF NOT EXISTS briefings (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meetings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	briefing_id TEXT NOT NULL REFERENCES briefings(id),
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	time TEXT NOT NULL,
	hour REAL NOT NULL,
	talking_points TEXT,
	recent_news TEXT,
	summary TEXT,
	context TEXT,
	notes TEXT
);

CREATE TABLE IF NOT EXISTS contact_timeline (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL REFERENCES contacts(id),
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT NOT NULL,
	direction TEXT,
	from_address TEXT,
	to_address TEXT,
	duration TEXT,
	channel TEXT
);

CREATE INDEX IF NOT EXISTS idx_contacts_org ON contacts(organization_id);
CREATE INDEX IF NOT EXISTS idx_links_contact ON contact_links(contact_id);
CREATE INDEX IF NOT EXISTS idx_career_contact ON career_history(contact_id);
CREATE INDEX IF NOT EXISTS idx_news_contact ON contact_news(contact_id);
CREATE INDEX IF NOT EXISTS idx_life_events_contact ON contact_life_events(contact_id);
CREATE INDEX IF NOT EXISTS idx_meetings_briefing ON meetings(briefing_id);
CREATE INDEX IF NOT EXISTS idx_meetings_contact ON meetings(contact_id);
CREATE INDEX IF NOT EXISTS idx_timeline_contact ON contact_timeline(contact_id);
`
