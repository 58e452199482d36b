package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapToStatus(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")

	tests := []struct {
		name   string
		err    *AppError
		typ    ErrorType
		status int
	}{
		{"validation", NewValidationError("id must be positive"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("meeting"), ErrorTypeNotFound, http.StatusNotFound},
		{"malformed content", NewMalformedContentError("notes", cause), ErrorTypeMalformedContent, http.StatusInternalServerError},
		{"unauthorized", NewUnauthorizedError(""), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"database", NewDatabaseError("query briefings", cause), ErrorTypeDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := stderrors.New("invalid character '{'")
	err := NewMalformedContentError("talking_points", cause)

	assert.Contains(t, err.Error(), "MALFORMED_CONTENT")
	assert.Contains(t, err.Error(), "invalid character")
	assert.ErrorIs(t, err, cause)
}

func TestGetAppError_UnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("query handler failed: %w", NewNotFoundError("briefing"))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)

	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("contact")))
	assert.True(t, IsMalformedContent(NewMalformedContentError("notes", stderrors.New("bad"))))
	assert.True(t, IsValidation(NewValidationError("bad id")))

	plain := stderrors.New("plain")
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsMalformedContent(plain))
	assert.False(t, IsValidation(plain))
}
