package handlers

import (
	"net/http"
	"strconv"

	"presidia-backend/application/queries"
	querybus "presidia-backend/application/queries/bus"
	apperrors "presidia-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MeetingHandler handles meeting-related HTTP requests
type MeetingHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetMeeting handles GET /meetings/{meetingID}
func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	meetingID, err := strconv.ParseInt(chi.URLParam(r, "meetingID"), 10, 64)
	if err != nil {
		respondAppError(h.logger, w, apperrors.NewValidationError("Meeting ID must be an integer"))
		return
	}

	query := queries.GetMeetingQuery{MeetingID: meetingID}
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
