package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejolly/lingolog/internal/api"
	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/service/auth"
	"github.com/ejolly/lingolog/internal/service/tracker"
	"github.com/ejolly/lingolog/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, expected: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "card not found", err: tracker.ErrCardNotFound, expected: http.StatusNotFound},
		{name: "store not found", err: store.ErrNotFound, expected: http.StatusNotFound},
		{
			name:     "wrapped card not found",
			err:      fmt.Errorf("review failed: %w", tracker.ErrCardNotFound),
			expected: http.StatusNotFound,
		},
		{name: "invalid import", err: tracker.ErrInvalidImport, expected: http.StatusBadRequest},
		{name: "quality out of range", err: domain.ErrQualityOutOfRange, expected: http.StatusBadRequest},
		{name: "invalid activity", err: domain.ErrInvalidActivity, expected: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
	})

	t.Run("known errors get friendly messages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Card not found", api.GetSafeErrorMessage(tracker.ErrCardNotFound))
		assert.Equal(t, "Invalid credentials", api.GetSafeErrorMessage(auth.ErrInvalidCredentials))
		assert.Equal(t, "Imported state is invalid", api.GetSafeErrorMessage(tracker.ErrInvalidImport))
	})

	t.Run("unknown errors never leak their message", func(t *testing.T) {
		t.Parallel()

		err := errors.New("pq: connection to postgres://u:p@host failed")
		msg := api.GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "postgres://")
		assert.Equal(t, "An unexpected error occurred", msg)
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("extracts field and tag", func(t *testing.T) {
		t.Parallel()

		err := errors.New(
			"Key: 'LoginRequest.Password' Error:Field validation for 'Password' failed on the 'required' tag")
		assert.Equal(t, "Invalid Password: required field", api.SanitizeValidationError(err))
	})

	t.Run("unrecognized errors fall back to a generic message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("boom")))
	})
}
