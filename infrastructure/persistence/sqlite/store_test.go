package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presidia-backend/domain/model"
)

func ptr(s string) *string { return &s }

// openTestStore opens a fresh database in a per-test temp directory and
// applies the schema.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

// fixture holds the IDs assigned while seeding the shared test dataset.
type fixture struct {
	orgAcme  int64
	orgBore  int64
	alice    int64
	bob      int64
	carol    int64
	meeting1 int64
	meeting2 int64
	meeting3 int64
}

// seedFixture inserts two organizations, three contacts (Carol has no
// organization), two briefing days, and three meetings.
func seedFixture(t *testing.T, store *Store) fixture {
	t.Helper()
	ctx := context.Background()

	acme := model.Organization{Name: "Acme Capital", Description: ptr("Growth equity firm")}
	bore := model.Organization{Name: "Borealis Labs"}
	require.NoError(t, store.CreateOrganization(ctx, &acme))
	require.NoError(t, store.CreateOrganization(ctx, &bore))

	alice := model.Contact{Name: "Alice Moran", Role: ptr("Partner"), OrganizationID: &acme.ID}
	bob := model.Contact{Name: "Bob Tran", OrganizationID: &acme.ID}
	carol := model.Contact{Name: "Carol Diaz"}
	require.NoError(t, store.CreateContact(ctx, &alice))
	require.NoError(t, store.CreateContact(ctx, &bob))
	require.NoError(t, store.CreateContact(ctx, &carol))

	day1 := model.Briefing{ID: "2026-02-09", Date: "Monday, February 9, 2026", Title: "Daily Briefing"}
	day2 := model.Briefing{ID: "2026-02-10", Date: "Tuesday, February 10, 2026", Title: "Daily Briefing"}
	require.NoError(t, store.CreateBriefing(ctx, &day1))
	require.NoError(t, store.CreateBriefing(ctx, &day2))

	// Inserted out of hour order so ordering comes from the query, not
	// insertion order.
	m1 := model.Meeting{BriefingID: day1.ID, ContactID: alice.ID, Time: "2:00 PM", Hour: 14,
		Summary: ptr("Quarterly sync"), TalkingPoints: ptr(`["fund II close"]`)}
	m2 := model.Meeting{BriefingID: day1.ID, ContactID: carol.ID, Time: "10:30 AM", Hour: 10.5}
	m3 := model.Meeting{BriefingID: day2.ID, ContactID: bob.ID, Time: "11:00 AM", Hour: 11}
	require.NoError(t, store.CreateMeeting(ctx, &m1))
	require.NoError(t, store.CreateMeeting(ctx, &m2))
	require.NoError(t, store.CreateMeeting(ctx, &m3))

	return fixture{
		orgAcme:  acme.ID,
		orgBore:  bore.ID,
		alice:    alice.ID,
		bob:      bob.ID,
		carol:    carol.ID,
		meeting1: m1.ID,
		meeting2: m2.ID,
		meeting3: m3.ID,
	}
}

func TestGetBriefing(t *testing.T) {
	store := openTestStore(t)
	seedFixture(t, store)
	ctx := context.Background()

	briefing, err := store.GetBriefing(ctx, "2026-02-09")
	require.NoError(t, err)
	require.NotNil(t, briefing)
	assert.Equal(t, "Monday, February 9, 2026", briefing.Date)

	missing, err := store.GetBriefing(ctx, "1999-01-01")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListBriefings_MostRecentFirst(t *testing.T) {
	store := openTestStore(t)
	seedFixture(t, store)

	briefings, err := store.ListBriefings(context.Background())
	require.NoError(t, err)
	require.Len(t, briefings, 2)
	assert.Equal(t, "2026-02-10", briefings[0].ID)
	assert.Equal(t, "2026-02-09", briefings[1].ID)
}

func TestMeetingsForBriefing_HourOrderAndJoins(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)

	meetings, err := store.MeetingsForBriefing(context.Background(), "2026-02-09")
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	// 10:30 before 14:00 regardless of insertion order.
	assert.Equal(t, f.meeting2, meetings[0].ID)
	assert.Equal(t, f.meeting1, meetings[1].ID)

	// Carol has no organization, so the left join leaves those fields nil.
	assert.Equal(t, "Carol Diaz", meetings[0].ContactName)
	assert.Nil(t, meetings[0].OrganizationID)
	assert.Nil(t, meetings[0].OrganizationName)

	require.NotNil(t, meetings[1].OrganizationName)
	assert.Equal(t, "Acme Capital", *meetings[1].OrganizationName)
	require.NotNil(t, meetings[1].TalkingPoints)
	assert.Equal(t, `["fund II close"]`, *meetings[1].TalkingPoints)
}

func TestGetMeeting(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)
	ctx := context.Background()

	meeting, err := store.GetMeeting(ctx, f.meeting1)
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, "2026-02-09", meeting.BriefingID)
	assert.Equal(t, "Alice Moran", meeting.ContactName)
	require.NotNil(t, meeting.Summary)
	assert.Equal(t, "Quarterly sync", *meeting.Summary)
	require.NotNil(t, meeting.OrganizationDescription)
	assert.Equal(t, "Growth equity firm", *meeting.OrganizationDescription)
	assert.Nil(t, meeting.Notes)

	missing, err := store.GetMeeting(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetContact(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)
	ctx := context.Background()

	contact, err := store.GetContact(ctx, f.alice)
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "Alice Moran", contact.Name)
	require.NotNil(t, contact.OrganizationName)
	assert.Equal(t, "Acme Capital", *contact.OrganizationName)

	solo, err := store.GetContact(ctx, f.carol)
	require.NoError(t, err)
	require.NotNil(t, solo)
	assert.Nil(t, solo.OrganizationID)

	missing, err := store.GetContact(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMeetingsForContact_JoinsBriefingDisplayFields(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)

	meetings, err := store.MeetingsForContact(context.Background(), f.alice)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "2026-02-09", meetings[0].BriefingID)
	assert.Equal(t, "Monday, February 9, 2026", meetings[0].BriefingDate)
	assert.Equal(t, "Daily Briefing", meetings[0].BriefingTitle)
}

func TestGetOrganization(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)
	ctx := context.Background()

	org, err := store.GetOrganization(ctx, f.orgBore)
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, "Borealis Labs", org.Name)
	assert.Nil(t, org.Description)

	missing, err := store.GetOrganization(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContactsForOrganization(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)

	contacts, err := store.ContactsForOrganization(context.Background(), f.orgAcme)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alice Moran", contacts[0].Name)
	assert.Equal(t, "Bob Tran", contacts[1].Name)

	empty, err := store.ContactsForOrganization(context.Background(), f.orgBore)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMeetingsForOrganization_SpansContacts(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)

	meetings, err := store.MeetingsForOrganization(context.Background(), f.orgAcme)
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	// Ordered by briefing day: Alice's Feb 9 meeting, then Bob's on Feb 10.
	assert.Equal(t, f.meeting1, meetings[0].ID)
	assert.Equal(t, "Alice Moran", meetings[0].ContactName)
	assert.Equal(t, f.meeting3, meetings[1].ID)
	assert.Equal(t, "Bob Tran", meetings[1].ContactName)
	assert.Equal(t, "Tuesday, February 10, 2026", meetings[1].BriefingDate)
}

func TestContactCollections_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	f := seedFixture(t, store)
	ctx := context.Background()

	link := model.ContactLink{ContactID: f.alice, Type: model.LinkLinkedin,
		URL: "https://linkedin.com/in/alicemoran", Label: ptr("LinkedIn")}
	require.NoError(t, store.CreateContactLink(ctx, &link))

	career := model.CareerEntry{ContactID: f.alice, Role: "Partner",
		Company: "Acme Capital", StartDate: ptr("2021"), IsCurrent: true}
	require.NoError(t, store.CreateCareerEntry(ctx, &career))

	news := model.NewsItem{ContactID: f.alice, Title: "Acme closes fund II",
		Date: "Feb 2026", Source: ptr("TechCrunch")}
	require.NoError(t, store.CreateNewsItem(ctx, &news))

	event := model.LifeEvent{ContactID: f.alice, Event: "Ran the Boston Marathon", Date: "Apr 2025"}
	require.NoError(t, store.CreateLifeEvent(ctx, &event))

	outbound := model.DirectionOutbound
	entry := model.TimelineEntry{ContactID: f.alice, Type: model.InteractionEmail,
		Title: "Intro follow-up", Date: "Jan 12, 2026", Direction: &outbound,
		ToAddress: ptr("alice@acme.example")}
	require.NoError(t, store.CreateTimelineEntry(ctx, &entry))

	links, err := store.LinksForContact(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, model.LinkLinkedin, links[0].Type)

	entries, err := store.CareerForContact(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsCurrent)
	assert.Nil(t, entries[0].EndDate)

	items, err := store.NewsForContact(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Source)
	assert.Equal(t, "TechCrunch", *items[0].Source)

	events, err := store.LifeEventsForContact(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Ran the Boston Marathon", events[0].Event)

	timeline, err := store.TimelineForContact(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	require.NotNil(t, timeline[0].Direction)
	assert.Equal(t, model.DirectionOutbound, *timeline[0].Direction)

	// Bob has none of these; every collection comes back empty, not an error.
	none, err := store.LinksForContact(ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, none)
}
