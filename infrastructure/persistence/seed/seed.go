// Package seed loads the built-in demo dataset through the store's write
// port. It is invoked from the CLI only; the API server never writes.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"presidia-backend/application/ports"
	"presidia-backend/domain/model"
)

// contactSeed bundles one contact with every research collection and the
// meeting scheduled with them on the demo briefing day. Foreign keys are
// wired at load time from the IDs the database assigns.
type contactSeed struct {
	contact  model.Contact
	org      string
	links    []model.ContactLink
	career   []model.CareerEntry
	news     []model.NewsItem
	events   []model.LifeEvent
	timeline []model.TimelineEntry
	meeting  *model.Meeting
}

// Run inserts the demo dataset in dependency order: organizations, contacts,
// per-contact collections, the briefing, then its meetings. It assumes an
// empty, migrated database.
func Run(ctx context.Context, store ports.Store, logger *zap.Logger) error {
	orgIDs := make(map[string]int64, len(organizations))
	for i := range organizations {
		org := &organizations[i]
		if err := store.CreateOrganization(ctx, org); err != nil {
			return fmt.Errorf("seed organization %q: %w", org.Name, err)
		}
		orgIDs[org.Name] = org.ID
	}

	if err := store.CreateBriefing(ctx, &demoBriefing); err != nil {
		return fmt.Errorf("seed briefing %q: %w", demoBriefing.ID, err)
	}

	var counts struct{ links, career, news, events, timeline, meetings int }
	for i := range contacts {
		cs := &contacts[i]
		if cs.org != "" {
			orgID, ok := orgIDs[cs.org]
			if !ok {
				return fmt.Errorf("seed contact %q: unknown organization %q", cs.contact.Name, cs.org)
			}
			cs.contact.OrganizationID = &orgID
		}
		if err := store.CreateContact(ctx, &cs.contact); err != nil {
			return fmt.Errorf("seed contact %q: %w", cs.contact.Name, err)
		}

		for j := range cs.links {
			cs.links[j].ContactID = cs.contact.ID
			if err := store.CreateContactLink(ctx, &cs.links[j]); err != nil {
				return fmt.Errorf("seed link for %q: %w", cs.contact.Name, err)
			}
		}
		for j := range cs.career {
			cs.career[j].ContactID = cs.contact.ID
			if err := store.CreateCareerEntry(ctx, &cs.career[j]); err != nil {
				return fmt.Errorf("seed career entry for %q: %w", cs.contact.Name, err)
			}
		}
		for j := range cs.news {
			cs.news[j].ContactID = cs.contact.ID
			if err := store.CreateNewsItem(ctx, &cs.news[j]); err != nil {
				return fmt.Errorf("seed news item for %q: %w", cs.contact.Name, err)
			}
		}
		for j := range cs.events {
			cs.events[j].ContactID = cs.contact.ID
			if err := store.CreateLifeEvent(ctx, &cs.events[j]); err != nil {
				return fmt.Errorf("seed life event for %q: %w", cs.contact.Name, err)
			}
		}
		for j := range cs.timeline {
			cs.timeline[j].ContactID = cs.contact.ID
			if err := store.CreateTimelineEntry(ctx, &cs.timeline[j]); err != nil {
				return fmt.Errorf("seed timeline entry for %q: %w", cs.contact.Name, err)
			}
		}
		if cs.meeting != nil {
			cs.meeting.BriefingID = demoBriefing.ID
			cs.meeting.ContactID = cs.contact.ID
			if err := store.CreateMeeting(ctx, cs.meeting); err != nil {
				return fmt.Errorf("seed meeting for %q: %w", cs.contact.Name, err)
			}
			counts.meetings++
		}
		counts.links += len(cs.links)
		counts.career += len(cs.career)
		counts.news += len(cs.news)
		counts.events += len(cs.events)
		counts.timeline += len(cs.timeline)
	}

	logger.Info("seeded demo dataset",
		zap.Int("organizations", len(organizations)),
		zap.Int("contacts", len(contacts)),
		zap.Int("links", counts.links),
		zap.Int("careerEntries", counts.career),
		zap.Int("newsItems", counts.news),
		zap.Int("lifeEvents", counts.events),
		zap.Int("timelineEntries", counts.timeline),
		zap.Int("meetings", counts.meetings),
		zap.String("briefing", demoBriefing.ID),
	)
	return nil
}

func str(s string) *string { return &s }

func dir(d model.Direction) *model.Direction { return &d }

// jsonList encodes a string slice the way meeting talking points and notes
// are stored.
func jsonList(items ...string) *string {
	b, err := json.Marshal(items)
	if err != nil {
		panic(err)
	}
	s := string(b)
	return &s
}
