// Package handlers contains the query handlers: each fetches its raw rows
// through the store port and hands them to the composer.
package handlers

import (
	"context"
	"fmt"

	"presidia-backend/application/composer"
	"presidia-backend/application/ports"
	"presidia-backend/application/queries"
	"presidia-backend/application/queries/bus"
	"presidia-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetBriefingHandler handles GetBriefingQuery
type GetBriefingHandler struct {
	store  ports.Reader
	logger *zap.Logger
}

// NewGetBriefingHandler creates a new handler
func NewGetBriefingHandler(store ports.Reader, logger *zap.Logger) *GetBriefingHandler {
	return &GetBriefingHandler{store: store, logger: logger}
}

// Handle fetches the briefing and its meetings, then composes the page view
// with the merged daily timeline.
func (h *GetBriefingHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetBriefingQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	briefing, err := h.store.GetBriefing(ctx, query.BriefingID)
	if err != nil {
		return nil, err
	}
	if briefing == nil {
		return nil, errors.NewNotFoundError("briefing")
	}

	meetings, err := h.store.MeetingsForBriefing(ctx, query.BriefingID)
	if err != nil {
		return nil, err
	}

	return composer.ComposeBriefing(*briefing, meetings), nil
}
