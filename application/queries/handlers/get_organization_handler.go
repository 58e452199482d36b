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

// GetOrganizationHandler handles GetOrganizationQuery
type GetOrganizationHandler struct {
	store  ports.Reader
	logger *zap.Logger
}

// NewGetOrganizationHandler creates a new handler
func NewGetOrganizationHandler(store ports.Reader, logger *zap.Logger) *GetOrganizationHandler {
	return &GetOrganizationHandler{store: store, logger: logger}
}

// Handle fetches the organization, then its member contacts and their
// meetings concurrently, and composes the profile view.
func (h *GetOrganizationHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetOrganizationQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	org, err := h.store.GetOrganization(ctx, query.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization")
	}

	var (
		contacts []model.Contact
		meetings []model.OrgMeeting
	)

	g, gctx := errgroup.WithContext(ctx)
	orgID := query.OrganizationID
	g.Go(func() (err error) {
		contacts, err = h.store.ContactsForOrganization(gctx, orgID)
		return err
	})
	g.Go(func() (err error) {
		meetings, err = h.store.MeetingsForOrganization(gctx, orgID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return composer.ComposeOrganizationProfile(*org, contacts, meetings), nil
}
