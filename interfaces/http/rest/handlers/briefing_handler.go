package handlers

import (
	"net/http"

	"presidia-backend/application/queries"
	querybus "presidia-backend/application/queries/bus"
	"presidia-backend/pkg/auth"
	apperrors "presidia-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BriefingHandler handles briefing-related HTTP requests
type BriefingHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewBriefingHandler creates a new briefing handler
func NewBriefingHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *BriefingHandler {
	return &BriefingHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// ListBriefings handles GET /briefings
func (h *BriefingHandler) ListBriefings(w http.ResponseWriter, r *http.Request) {
	if user, err := auth.GetUserFromContext(r.Context()); err == nil {
		h.logger.Debug("Briefing index requested", zap.String("userID", user.UserID))
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListBriefingsQuery{})
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, result)
}

// GetBriefing handles GET /briefings/{briefingID}
func (h *BriefingHandler) GetBriefing(w http.ResponseWriter, r *http.Request) {
	briefingID := chi.URLParam(r, "briefingID")

	query := queries.GetBriefingQuery{BriefingID: briefingID}
	if err := query.Validate(); err != nil {
		respondAppError(h.logger, w, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, result)
}
