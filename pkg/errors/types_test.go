package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := PersistenceError("lx-annotate-drafts", cause)

	assert.Equal(t, ErrCodePersistence, err.Code)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "lx-annotate-drafts", err.Details["key"])
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.GetHTTPCode())
}

func TestIs(t *testing.T) {
	quota := New(ErrCodeQuotaExceeded, "blob exceeds quota")
	wrapped := PersistenceError("k", quota)

	assert.True(t, Is(wrapped, ErrCodePersistence))
	assert.True(t, Is(wrapped, ErrCodeQuotaExceeded))
	assert.False(t, Is(wrapped, ErrCodeMalformedData))
	assert.True(t, Is(fmt.Errorf("saving: %w", wrapped), ErrCodeQuotaExceeded))
	assert.False(t, Is(stderrors.New("plain"), ErrCodeInternal))
	assert.False(t, Is(nil, ErrCodeInternal))
}

func TestGetCodeAndHTTPCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     ErrorCode
		httpCode int
	}{
		{"not found", NotFound("segment", 4), ErrCodeNotFound, http.StatusNotFound},
		{"validation", ValidationError("label", "required"), ErrCodeValidation, http.StatusBadRequest},
		{"missing field", MissingFieldError("start"), ErrCodeMissingField, http.StatusBadRequest},
		{"malformed", MalformedData("k", "not json", nil), ErrCodeMalformedData, http.StatusBadRequest},
		{"quota", New(ErrCodeQuotaExceeded, "full"), ErrCodeQuotaExceeded, http.StatusInsufficientStorage},
		{"database", DatabaseError("query", stderrors.New("x")), ErrCodeDatabaseQuery, http.StatusInternalServerError},
		{"plain error", stderrors.New("boom"), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.Equal(t, tt.httpCode, GetHTTPCode(tt.err))
		})
	}
}
