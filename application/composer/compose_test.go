package composer

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presidia-backend/domain/model"
	apperrors "presidia-backend/pkg/errors"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestComposeMeetingDetail_DecodesStringLists(t *testing.T) {
	row := model.MeetingRow{
		BriefingMeeting: model.BriefingMeeting{
			ID:            1,
			Time:          "10:30 AM",
			Hour:          10.5,
			TalkingPoints: strPtr(`["first point","second point"]`),
			ContactID:     2,
			ContactName:   "Brandon Frisch",
		},
		BriefingID: "2026-02-09",
		Notes:      strPtr(`["one note"]`),
	}

	view, err := ComposeMeetingDetail(row, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"first point", "second point"}, view.TalkingPoints)
	assert.Equal(t, []string{"one note"}, view.Notes)
}

func TestComposeMeetingDetail_NilAndEmptyColumnsDecodeEmpty(t *testing.T) {
	cases := map[string]*string{
		"nil column":   nil,
		"empty string": strPtr(""),
		"json null":    strPtr("null"),
		"empty array":  strPtr("[]"),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			row := model.MeetingRow{
				BriefingMeeting: model.BriefingMeeting{ID: 1, Hour: 10.5, TalkingPoints: raw},
				BriefingID:      "2026-02-09",
				Notes:           raw,
			}

			view, err := ComposeMeetingDetail(row, nil, nil, nil, nil, nil)
			require.NoError(t, err)

			assert.NotNil(t, view.TalkingPoints)
			assert.Empty(t, view.TalkingPoints)
			assert.NotNil(t, view.Notes)
			assert.Empty(t, view.Notes)
		})
	}
}

func TestComposeMeetingDetail_MalformedContentSurfaces(t *testing.T) {
	cases := map[string]*string{
		"not json":         strPtr("not json at all"),
		"wrong shape":      strPtr(`{"a":1}`),
		"non-string items": strPtr(`[1,2,3]`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			row := model.MeetingRow{
				BriefingMeeting: model.BriefingMeeting{ID: 1, TalkingPoints: raw},
				BriefingID:      "2026-02-09",
			}

			_, err := ComposeMeetingDetail(row, nil, nil, nil, nil, nil)
			require.Error(t, err)
			assert.True(t, apperrors.IsMalformedContent(err))
		})
	}
}

func TestComposeMeetingDetail_MalformedNotesSurface(t *testing.T) {
	row := model.MeetingRow{
		BriefingMeeting: model.BriefingMeeting{ID: 1, TalkingPoints: strPtr(`["fine"]`)},
		BriefingID:      "2026-02-09",
		Notes:           strPtr("{broken"),
	}

	_, err := ComposeMeetingDetail(row, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedContent(err))
}

func TestComposeMeetingDetail_CollectionsAlwaysPresent(t *testing.T) {
	row := model.MeetingRow{
		BriefingMeeting: model.BriefingMeeting{ID: 1},
		BriefingID:      "2026-02-09",
	}

	view, err := ComposeMeetingDetail(row, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, view.Links)
	assert.NotNil(t, view.Career)
	assert.NotNil(t, view.News)
	assert.NotNil(t, view.LifeEvents)
	assert.NotNil(t, view.Timeline)
}

func TestComposeMeetingDetail_CollectionsPassThroughInOrder(t *testing.T) {
	row := model.MeetingRow{
		BriefingMeeting: model.BriefingMeeting{ID: 1, ContactID: 2},
		BriefingID:      "2026-02-09",
	}
	timeline := []model.TimelineEntry{
		{ID: 1, ContactID: 2, Type: model.InteractionIntro, Title: "Intro", Date: "Jan 10, 2026"},
		{ID: 2, ContactID: 2, Type: model.InteractionEmail, Title: "Follow-up", Date: "Jan 12, 2026"},
	}

	view, err := ComposeMeetingDetail(row, nil, nil, nil, nil, timeline)
	require.NoError(t, err)

	require.Len(t, view.Timeline, 2)
	assert.Equal(t, int64(1), view.Timeline[0].ID)
	assert.Equal(t, int64(2), view.Timeline[1].ID)
}

func TestComposeContactProfile(t *testing.T) {
	contact := model.ContactRow{
		ID:               2,
		Name:             "Kate Simpson",
		Role:             strPtr("Managing Director, Head of VC"),
		OrganizationID:   int64Ptr(3),
		OrganizationName: strPtr("Gem Investments"),
	}
	meetings := []model.ContactMeeting{
		{ID: 1, BriefingID: "2026-02-09", Hour: 11, BriefingDate: "Sunday, February 9, 2026", BriefingTitle: "Daily Briefing"},
	}

	view := ComposeContactProfile(contact, meetings, nil, nil, nil, nil)

	assert.Equal(t, "Kate Simpson", view.Name)
	assert.Equal(t, int64Ptr(3), view.OrganizationID)
	require.Len(t, view.Meetings, 1)
	assert.NotNil(t, view.Links)
	assert.NotNil(t, view.Career)
	assert.NotNil(t, view.News)
	assert.NotNil(t, view.LifeEvents)
}

func TestComposeOrganizationProfile(t *testing.T) {
	org := model.Organization{ID: 3, Name: "Gem Investments"}
	contacts := []model.Contact{{ID: 2, Name: "Kate Simpson"}}
	meetings := []model.OrgMeeting{
		{ID: 5, BriefingID: "2026-02-10", Hour: 9, ContactID: 2, ContactName: "Kate Simpson"},
		{ID: 1, BriefingID: "2026-02-09", Hour: 11, ContactID: 2, ContactName: "Kate Simpson"},
	}

	view := ComposeOrganizationProfile(org, contacts, meetings)

	assert.Equal(t, "Gem Investments", view.Name)
	require.Len(t, view.Contacts, 1)
	// Meetings keep the store's order; the composer never re-sorts them.
	require.Len(t, view.Meetings, 2)
	assert.Equal(t, int64(5), view.Meetings[0].ID)
	assert.Equal(t, int64(1), view.Meetings[1].ID)
}

func TestComposeBriefing_StatsCountDistinct(t *testing.T) {
	briefing := model.Briefing{ID: "2026-02-09", Date: "Sunday, February 9, 2026", Title: "Daily Briefing"}
	meetings := []model.BriefingMeeting{
		{ID: 1, Hour: 10.5, ContactID: 1, OrganizationID: int64Ptr(1)},
		{ID: 2, Hour: 11, ContactID: 2, OrganizationID: int64Ptr(1)},
		{ID: 3, Hour: 14, ContactID: 2, OrganizationID: nil},
	}

	view := ComposeBriefing(briefing, meetings)

	assert.Equal(t, 3, view.Stats.Meetings)
	assert.Equal(t, 1, view.Stats.Companies)
	assert.Equal(t, 2, view.Stats.People)
	assert.Len(t, view.Timeline, 8)
}

func TestComposeBriefing_EmptyDay(t *testing.T) {
	briefing := model.Briefing{ID: "2026-02-09", Date: "Sunday, February 9, 2026", Title: "Daily Briefing"}

	view := ComposeBriefing(briefing, nil)

	assert.NotNil(t, view.Meetings)
	assert.Empty(t, view.Meetings)
	assert.Len(t, view.Timeline, 5)
	assert.Equal(t, BriefingStats{}, view.Stats)
}

func TestComposeMeetingDetail_Golden(t *testing.T) {
	row := model.MeetingRow{
		BriefingMeeting: model.BriefingMeeting{
			ID:               1,
			Time:             "10:30 AM",
			Hour:             10.5,
			TalkingPoints:    strPtr(`["Ask about the team","Discuss the pilot"]`),
			ContactID:        2,
			ContactName:      "Brandon Frisch",
			ContactRole:      strPtr("Managing Director"),
			OrganizationID:   int64Ptr(3),
			OrganizationName: strPtr("Begin Software"),
		},
		BriefingID: "2026-02-09",
		Summary:    strPtr("First face-to-face meeting."),
		Notes:      strPtr(`["Prefers morning meetings."]`),
	}
	links := []model.ContactLink{
		{ID: 10, ContactID: 2, Type: model.LinkLinkedin, URL: "https://linkedin.com/in/brandonfrisch"},
	}

	view, err := ComposeMeetingDetail(row, links, nil, nil, nil, nil)
	require.NoError(t, err)

	data, err := json.MarshalIndent(view, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "meeting_detail", data)
}
