package handlers

import (
	"context"
	"fmt"

	"presidia-backend/application/composer"
	"presidia-backend/application/ports"
	"presidia-backend/application/queries"
	"presidia-backend/application/queries/bus"
	"presidia-backend/domain/model"
	"presidia-backend/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetMeetingHandler handles GetMeetingQuery
type GetMeetingHandler struct {
	store  ports.Reader
	logger *zap.Logger
}

// NewGetMeetingHandler creates a new handler
func NewGetMeetingHandler(store ports.Reader, logger *zap.Logger) *GetMeetingHandler {
	return &GetMeetingHandler{store: store, logger: logger}
}

// Handle fetches the meeting row, fans out the five per-contact collection
// fetches, waits for all of them, and composes the detail view. Sibling
// fetches have no ordering dependency between them.
func (h *GetMeetingHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetMeetingQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	meeting, err := h.store.GetMeeting(ctx, query.MeetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, errors.NewNotFoundError("meeting")
	}

	var (
		links      []model.ContactLink
		career     []model.CareerEntry
		news       []model.NewsItem
		lifeEvents []model.LifeEvent
		timeline   []model.TimelineEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	contactID := meeting.ContactID
	g.Go(func() (err error) {
		links, err = h.store.LinksForContact(gctx, contactID)
		return err
	})
	g.Go(func() (err error) {
		career, err = h.store.CareerForContact(gctx, contactID)
		return err
	})
	g.Go(func() (err error) {
		news, err = h.store.NewsForContact(gctx, contactID)
		return err
	})
	g.Go(func() (err error) {
		lifeEvents, err = h.store.LifeEventsForContact(gctx, contactID)
		return err
	})
	g.Go(func() (err error) {
		timeline, err = h.store.TimelineForContact(gctx, contactID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view, err := composer.ComposeMeetingDetail(*meeting, links, career, news, lifeEvents, timeline)
	if err != nil {
		h.logger.Error("Failed to compose meeting detail",
			zap.Int64("meetingID", query.MeetingID),
			zap.Error(err),
		)
		return nil, err
	}

	return view, nil
}
