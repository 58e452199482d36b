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

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetContact handles GET /contacts/{contactID}
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		respondAppError(h.logger, w, apperrors.NewValidationError("Contact ID must be an integer"))
		return
	}

	query := queries.GetContactQuery{ContactID: contactID}
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
