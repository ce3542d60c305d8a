package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ejolly/lingolog/internal/platform/postgres"
	"github.com/ejolly/lingolog/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows maps to not found",
			err:      fmt.Errorf("query failed: %w", sql.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name:     "unique violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "vocab_cards_pkey"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "foreign key violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23503"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "check violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "study_sessions_minutes_check"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23502", ColumnName: "front"},
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := postgres.MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")
		assert.Equal(t, err, postgres.MapError(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}
