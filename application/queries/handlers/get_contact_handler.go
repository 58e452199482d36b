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

// GetContactHandler handles GetContactQuery
type GetContactHandler struct {
	store  ports.Reader
	logger *zap.Logger
}

// NewGetContactHandler creates a new handler
func NewGetContactHandler(store ports.Reader, logger *zap.Logger) *GetContactHandler {
	return &GetContactHandler{store: store, logger: logger}
}

// Handle fetches the contact, fans out the meetings and the four research
// collection fetches, and composes the profile view.
func (h *GetContactHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetContactQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	contact, err := h.store.GetContact(ctx, query.ContactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.NewNotFoundError("contact")
	}

	var (
		meetings   []model.ContactMeeting
		links      []model.ContactLink
		career     []model.CareerEntry
		news       []model.NewsItem
		lifeEvents []model.LifeEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	contactID := query.ContactID
	g.Go(func() (err error) {
		meetings, err = h.store.MeetingsForContact(gctx, contactID)
		return err
	})
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
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return composer.ComposeContactProfile(*contact, meetings, links, career, news, lifeEvents), nil
}
