package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/service/auth"
	"github.com/ejolly/lingolog/internal/service/tracker"
	"github.com/ejolly/lingolog/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, tracker.ErrCardNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, tracker.ErrInvalidImport),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrQualityOutOfRange),
		errors.Is(err, domain.ErrInvalidActivity),
		errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrCardBackEmpty),
		errors.Is(err, domain.ErrSessionMinutesInvalid):
		return http.StatusBadRequest

	// Persistence failures never abort a request, but a failed startup
	// load surfacing here is a server fault.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Not found errors
	case errors.Is(err, tracker.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Bad request errors
	case errors.Is(err, tracker.ErrInvalidImport):
		return "Imported state is invalid"

	case errors.Is(err, domain.ErrQualityOutOfRange):
		return "Review quality must be between 0 and 5"

	case errors.Is(err, domain.ErrInvalidActivity):
		return "Unknown activity kind"

	case errors.Is(err, domain.ErrInvalidDay):
		return "Invalid date, expected YYYY-MM-DD"

	case errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrCardBackEmpty):
		return "Card front and back are required"

	case errors.Is(err, domain.ErrSessionMinutesInvalid):
		return "Session minutes must be a positive number"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'LoginRequest.Password' Error:Field validation for 'Password' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "too small"
	case "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
