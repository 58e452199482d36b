// Package handlers contains the REST handlers for the briefing API. Each
// handler parses path parameters, dispatches a query on the bus, and maps
// application errors onto HTTP status codes.
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "presidia-backend/pkg/errors"

	"go.uber.org/zap"
)

func respondJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func respondError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps an application error onto its HTTP status. Internal
// failures are logged with their cause but rendered generically.
func respondAppError(logger *zap.Logger, w http.ResponseWriter, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		logger.Error("Unhandled error", zap.Error(err))
		respondError(logger, w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.String("type", string(appErr.Type)), zap.Error(err))
	}
	respondError(logger, w, appErr.HTTPStatus, appErr.Message)
}
