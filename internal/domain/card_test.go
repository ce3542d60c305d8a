package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/domain"
)

func TestNewVocabCard(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2026, time.April, 1)

	t.Run("valid card gets scheduling defaults", func(t *testing.T) {
		t.Parallel()

		card, err := domain.NewVocabCard("hablar", "to speak", today)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, card.ID)
		assert.Equal(t, "hablar", card.Front)
		assert.Equal(t, "to speak", card.Back)
		assert.Equal(t, domain.DefaultEaseFactor, card.EaseFactor)
		assert.Equal(t, domain.DefaultInterval, card.Interval)
		assert.True(t, card.Due.Equal(today))
		assert.False(t, card.CreatedAt.IsZero())
	})

	t.Run("empty front is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewVocabCard("", "to speak", today)
		assert.ErrorIs(t, err, domain.ErrCardFrontEmpty)
	})

	t.Run("empty back is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewVocabCard("hablar", "", today)
		assert.ErrorIs(t, err, domain.ErrCardBackEmpty)
	})
}

func TestVocabCardValidate(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2026, time.April, 1)

	validCard := func() *domain.VocabCard {
		card, err := domain.NewVocabCard("hablar", "to speak", today)
		require.NoError(t, err)
		return card
	}

	testCases := []struct {
		name        string
		modify      func(*domain.VocabCard)
		expectedErr error
	}{
		{
			name:        "valid card",
			modify:      func(c *domain.VocabCard) {},
			expectedErr: nil,
		},
		{
			name:        "nil ID",
			modify:      func(c *domain.VocabCard) { c.ID = uuid.Nil },
			expectedErr: domain.ErrCardIDEmpty,
		},
		{
			name:        "ease factor below floor",
			modify:      func(c *domain.VocabCard) { c.EaseFactor = 1.29 },
			expectedErr: domain.ErrCardEaseFactorLow,
		},
		{
			name:        "ease factor at floor is valid",
			modify:      func(c *domain.VocabCard) { c.EaseFactor = domain.MinEaseFactor },
			expectedErr: nil,
		},
		{
			name:        "zero interval",
			modify:      func(c *domain.VocabCard) { c.Interval = 0 },
			expectedErr: domain.ErrCardIntervalInvalid,
		},
		{
			name:        "zero due date",
			modify:      func(c *domain.VocabCard) { c.Due = domain.Day{} },
			expectedErr: domain.ErrCardDueZero,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card := validCard()
			tc.modify(card)

			err := card.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestVocabCardIsDue(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2026, time.April, 10)
	card, err := domain.NewVocabCard("hablar", "to speak", today)
	require.NoError(t, err)

	assert.True(t, card.IsDue(today), "card due today is due")
	assert.True(t, card.IsDue(today.AddDays(1)), "overdue card is due")
	assert.False(t, card.IsDue(today.AddDays(-1)), "card due tomorrow is not yet due")
}

func TestVocabCardClone(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2026, time.April, 1)
	card, err := domain.NewVocabCard("hablar", "to speak", today)
	require.NoError(t, err)

	clone := card.Clone()
	clone.EaseFactor = 1.5
	clone.Front = "changed"

	assert.Equal(t, domain.DefaultEaseFactor, card.EaseFactor)
	assert.Equal(t, "hablar", card.Front)
}
