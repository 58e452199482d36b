package composer

import (
	"encoding/json"

	"presidia-backend/domain/model"
	"presidia-backend/pkg/errors"
)

// decodeStringList decodes a JSON-encoded string array column. A nil or
// empty value decodes to an empty slice; anything that is not a valid JSON
// string array is a malformed content error.
func decodeStringList(field string, raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, errors.NewMalformedContentError(field, err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ComposeMeetingDetail unions one joined meeting row with the contact's five
// research collections, decoding the talking-points and notes columns into
// ordered string sequences. Collections pass through as-is; empty inputs
// become empty output sequences, never absent fields.
func ComposeMeetingDetail(
	row model.MeetingRow,
	links []model.ContactLink,
	career []model.CareerEntry,
	news []model.NewsItem,
	lifeEvents []model.LifeEvent,
	timeline []model.TimelineEntry,
) (MeetingDetailView, error) {
	talkingPoints, err := decodeStringList("talking_points", row.TalkingPoints)
	if err != nil {
		return MeetingDetailView{}, err
	}
	notes, err := decodeStringList("notes", row.Notes)
	if err != nil {
		return MeetingDetailView{}, err
	}

	return MeetingDetailView{
		ID:                      row.ID,
		BriefingID:              row.BriefingID,
		Time:                    row.Time,
		Hour:                    row.Hour,
		TalkingPoints:           talkingPoints,
		RecentNews:              row.RecentNews,
		Summary:                 row.Summary,
		Context:                 row.Context,
		Notes:                   notes,
		ContactID:               row.ContactID,
		ContactName:             row.ContactName,
		ContactRole:             row.ContactRole,
		ContactImage:            row.ContactImage,
		ContactBio:              row.ContactBio,
		ContactLinkedin:         row.ContactLinkedin,
		OrganizationID:          row.OrganizationID,
		OrganizationName:        row.OrganizationName,
		OrganizationDescription: row.OrganizationDescription,
		Links:                   emptyIfNil(links),
		Career:                  emptyIfNil(career),
		News:                    emptyIfNil(news),
		LifeEvents:              emptyIfNil(lifeEvents),
		Timeline:                emptyIfNil(timeline),
	}, nil
}

// ComposeContactProfile unions a contact row with its meetings and four
// research collections.
func ComposeContactProfile(
	contact model.ContactRow,
	meetings []model.ContactMeeting,
	links []model.ContactLink,
	career []model.CareerEntry,
	news []model.NewsItem,
	lifeEvents []model.LifeEvent,
) ContactProfileView {
	return ContactProfileView{
		ID:               contact.ID,
		Name:             contact.Name,
		Role:             contact.Role,
		ImageURL:         contact.ImageURL,
		Bio:              contact.Bio,
		LinkedinURL:      contact.LinkedinURL,
		OrganizationID:   contact.OrganizationID,
		OrganizationName: contact.OrganizationName,
		Meetings:         emptyIfNil(meetings),
		Links:            emptyIfNil(links),
		Career:           emptyIfNil(career),
		News:             emptyIfNil(news),
		LifeEvents:       emptyIfNil(lifeEvents),
	}
}

// ComposeOrganizationProfile attaches an organization's member contacts and
// their meetings. Meetings keep the store's order (by parent briefing).
func ComposeOrganizationProfile(
	org model.Organization,
	contacts []model.Contact,
	meetings []model.OrgMeeting,
) OrganizationProfileView {
	return OrganizationProfileView{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		Contacts:    emptyIfNil(contacts),
		Meetings:    emptyIfNil(meetings),
	}
}

// ComposeBriefing builds the briefing page payload: header fields, the
// meetings as fetched, the merged daily timeline, and header counts.
// Companies counts distinct organizations across the day's meetings; people
// counts distinct contacts.
func ComposeBriefing(briefing model.Briefing, meetings []model.BriefingMeeting) BriefingView {
	orgs := make(map[int64]struct{})
	people := make(map[int64]struct{})
	for _, m := range meetings {
		if m.OrganizationID != nil {
			orgs[*m.OrganizationID] = struct{}{}
		}
		people[m.ContactID] = struct{}{}
	}

	return BriefingView{
		ID:       briefing.ID,
		Date:     briefing.Date,
		Title:    briefing.Title,
		Meetings: emptyIfNil(meetings),
		Timeline: BuildDailyTimeline(meetings),
		Stats: BriefingStats{
			Meetings:  len(meetings),
			Companies: len(orgs),
			People:    len(people),
		},
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
