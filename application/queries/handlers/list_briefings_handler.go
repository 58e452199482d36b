package handlers

import (
	"context"
	"fmt"

	"presidia-backend/application/ports"
	"presidia-backend/application/queries"
	"presidia-backend/application/queries/bus"
	"presidia-backend/domain/model"

	"go.uber.org/zap"
)

// ListBriefingsHandler handles ListBriefingsQuery
type ListBriefingsHandler struct {
	store  ports.Reader
	logger *zap.Logger
}

// NewListBriefingsHandler creates a new handler
func NewListBriefingsHandler(store ports.Reader, logger *zap.Logger) *ListBriefingsHandler {
	return &ListBriefingsHandler{store: store, logger: logger}
}

// Handle returns the briefing index, most recent first.
func (h *ListBriefingsHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	if _, ok := q.(queries.ListBriefingsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	briefings, err := h.store.ListBriefings(ctx)
	if err != nil {
		return nil, err
	}
	if briefings == nil {
		briefings = []model.Briefing{}
	}

	return queries.ListBriefingsResult{Briefings: briefings}, nil
}
