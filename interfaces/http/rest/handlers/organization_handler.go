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

// OrganizationHandler handles organization-related HTTP requests
type OrganizationHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetOrganization handles GET /organizations/{orgID}
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := strconv.ParseInt(chi.URLParam(r, "orgID"), 10, 64)
	if err != nil {
		respondAppError(h.logger, w, apperrors.NewValidationError("Organization ID must be an integer"))
		return
	}

	query := queries.GetOrganizationQuery{OrganizationID: orgID}
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
