package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/domain"
)

func buildState(t *testing.T) *domain.State {
	t.Helper()

	today := domain.NewDay(2026, time.June, 1)

	card, err := domain.NewVocabCard("hablar", "to speak", today)
	require.NoError(t, err)

	session, err := domain.NewStudySession(today, 20, domain.ActivitySpeaking, "tutoring call")
	require.NoError(t, err)

	return &domain.State{
		Cards:    []*domain.VocabCard{card},
		Sessions: []domain.StudySession{*session},
	}
}

func TestStateValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid state", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, buildState(t).Validate())
	})

	t.Run("nil state", func(t *testing.T) {
		t.Parallel()

		var state *domain.State
		assert.ErrorIs(t, state.Validate(), domain.ErrStateNil)
	})

	t.Run("empty state is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, domain.NewState().Validate())
	})

	t.Run("duplicate card IDs", func(t *testing.T) {
		t.Parallel()

		state := buildState(t)
		state.Cards = append(state.Cards, state.Cards[0].Clone())
		assert.ErrorIs(t, state.Validate(), domain.ErrStateDuplicateCard)
	})

	t.Run("duplicate session IDs", func(t *testing.T) {
		t.Parallel()

		state := buildState(t)
		state.Sessions = append(state.Sessions, state.Sessions[0])
		assert.ErrorIs(t, state.Validate(), domain.ErrStateDuplicateSession)
	})

	t.Run("invalid card fails the whole state", func(t *testing.T) {
		t.Parallel()

		state := buildState(t)
		state.Cards[0].EaseFactor = 0.5
		assert.ErrorIs(t, state.Validate(), domain.ErrCardEaseFactorLow)
	})

	t.Run("invalid session fails the whole state", func(t *testing.T) {
		t.Parallel()

		state := buildState(t)
		state.Sessions[0].Minutes = 0
		assert.ErrorIs(t, state.Validate(), domain.ErrSessionMinutesInvalid)
	})
}

func TestStateClone(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	clone := state.Clone()

	clone.Cards[0].Front = "mutated"
	clone.Sessions[0].Minutes = 999

	assert.Equal(t, "hablar", state.Cards[0].Front)
	assert.Equal(t, 20, state.Sessions[0].Minutes)
}

func TestStateExportRoundTrip(t *testing.T) {
	t.Parallel()

	state := buildState(t)

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded domain.State
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NoError(t, decoded.Validate())

	require.Len(t, decoded.Cards, 1)
	assert.Equal(t, state.Cards[0].ID, decoded.Cards[0].ID)
	assert.Equal(t, state.Cards[0].EaseFactor, decoded.Cards[0].EaseFactor)
	assert.True(t, state.Cards[0].Due.Equal(decoded.Cards[0].Due))

	require.Len(t, decoded.Sessions, 1)
	assert.Equal(t, state.Sessions[0].ID, decoded.Sessions[0].ID)
	assert.True(t, state.Sessions[0].Date.Equal(decoded.Sessions[0].Date))
	assert.Equal(t, state.Sessions[0].Activity, decoded.Sessions[0].Activity)
}
