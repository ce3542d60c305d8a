package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/domain"
)

func TestDayOf(t *testing.T) {
	t.Parallel()

	t.Run("discards time of day", func(t *testing.T) {
		t.Parallel()

		instant := time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC)
		day := domain.DayOf(instant)

		assert.Equal(t, "2026-03-15", day.String())
	})

	t.Run("uses the instant's own location", func(t *testing.T) {
		t.Parallel()

		// 23:00 in UTC+2 is still the same calendar day there, even though
		// it is already the next day in UTC+3.
		loc := time.FixedZone("UTC+2", 2*60*60)
		instant := time.Date(2026, time.March, 15, 23, 0, 0, 0, loc)

		day := domain.DayOf(instant)
		assert.Equal(t, "2026-03-15", day.String())
	})
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "valid date",
			input:    "2026-01-31",
			expected: "2026-01-31",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "wrong format",
			input:       "31/01/2026",
			expectError: true,
		},
		{
			name:        "impossible date",
			input:       "2026-02-30",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			day, err := domain.ParseDay(tc.input)
			if tc.expectError {
				assert.ErrorIs(t, err, domain.ErrInvalidDay)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, day.String())
		})
	}
}

func TestDayArithmetic(t *testing.T) {
	t.Parallel()

	day := domain.NewDay(2026, time.February, 27)

	t.Run("AddDays crosses month boundaries", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2026-03-01", day.AddDays(2).String())
	})

	t.Run("AddDays moves backward with negative n", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2026-02-25", day.AddDays(-2).String())
	})

	t.Run("DaysUntil is signed", func(t *testing.T) {
		t.Parallel()

		other := day.AddDays(10)
		assert.Equal(t, 10, day.DaysUntil(other))
		assert.Equal(t, -10, other.DaysUntil(day))
	})

	t.Run("comparisons", func(t *testing.T) {
		t.Parallel()

		later := day.AddDays(1)
		assert.True(t, day.Before(later))
		assert.True(t, later.After(day))
		assert.True(t, day.Equal(domain.NewDay(2026, time.February, 27)))
	})

	t.Run("days are comparable with ==", func(t *testing.T) {
		t.Parallel()

		seen := map[domain.Day]bool{day: true}
		assert.True(t, seen[domain.NewDay(2026, time.February, 27)])
	})
}

func TestDayJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		day := domain.NewDay(2026, time.July, 4)
		data, err := json.Marshal(day)
		require.NoError(t, err)
		assert.Equal(t, `"2026-07-04"`, string(data))

		var decoded domain.Day
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, day.Equal(decoded))
	})

	t.Run("rejects non-string input", func(t *testing.T) {
		t.Parallel()

		var day domain.Day
		err := json.Unmarshal([]byte(`20260704`), &day)
		assert.Error(t, err)
	})
}
