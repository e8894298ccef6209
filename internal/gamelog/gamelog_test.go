package gamelog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/gamelog"
)

func TestAppend(t *testing.T) {
	l := gamelog.New()

	idx := l.Append("Encounter started.", entities.LogSystem)
	assert.Equal(t, 0, idx)

	entries := l.Display()
	require.Len(t, entries, 1)
	assert.Equal(t, entities.LogSystem, entries[0].Type)
	assert.Equal(t, []string{"Encounter started."}, entries[0].Swipes)
	assert.Equal(t, 0, entries[0].SwipeIndex)
}

func TestAddSwipe(t *testing.T) {
	l := gamelog.New()
	idx := l.Append("The goblin staggers.", entities.LogNarrative)

	require.NoError(t, l.AddSwipe(idx, "The goblin reels back."))

	entry := l.Display()[idx]
	assert.Equal(t, []string{"The goblin staggers.", "The goblin reels back."}, entry.Swipes)
	assert.Equal(t, len(entry.Swipes)-1, entry.SwipeIndex)
	assert.Equal(t, "The goblin reels back.", entry.Message)

	err := l.AddSwipe(99, "nope")
	assert.True(t, errors.IsOutOfRange(err))
}

func TestSetSwipeIndex(t *testing.T) {
	l := gamelog.New()
	idx := l.Append("first", entities.LogNarrative)
	require.NoError(t, l.AddSwipe(idx, "second"))

	require.NoError(t, l.SetSwipeIndex(idx, 0))
	assert.Equal(t, "first", l.Display()[idx].Message)
	assert.Equal(t, 0, l.Display()[idx].SwipeIndex)

	assert.True(t, errors.IsOutOfRange(l.SetSwipeIndex(idx, 2)))
	assert.True(t, errors.IsOutOfRange(l.SetSwipeIndex(idx, -1)))
	assert.True(t, errors.IsOutOfRange(l.SetSwipeIndex(42, 0)))

	// Failed switches leave the selection alone.
	assert.Equal(t, 0, l.Display()[idx].SwipeIndex)
}

func TestAppendRound_Ordering(t *testing.T) {
	l := gamelog.New()
	l.Append("Hero attacks Goblin with Slash", entities.LogPlayerAction)

	first := l.AppendRound(
		"Hero attacks Goblin with Slash",
		[]string{"Goblin bites back", ""},
		[]string{"Sidekick fires an arrow"},
		"The blade lands true.\n\nThe goblin collapses.\n",
	)

	entries := l.Display()
	require.Len(t, entries, 5)
	assert.Equal(t, entities.LogPlayerAction, entries[0].Type)
	assert.Equal(t, entities.LogEnemyAction, entries[1].Type)
	assert.Equal(t, "Goblin bites back", entries[1].Message)
	assert.Equal(t, entities.LogPartyAction, entries[2].Type)
	assert.Equal(t, entities.LogNarrative, entries[3].Type)
	assert.Equal(t, "The blade lands true.", entries[3].Message)
	assert.Equal(t, entities.LogNarrative, entries[4].Type)
	assert.Equal(t, "The goblin collapses.", entries[4].Message)

	assert.Equal(t, 3, first)

	rounds := l.Encounter()
	require.Len(t, rounds, 1)
	assert.Equal(t, "Hero attacks Goblin with Slash", rounds[0].Action)
	assert.Equal(t, "The blade lands true.\n\nThe goblin collapses.\n", rounds[0].Narrative)
}

func TestAppendRound_EmptyNarrative(t *testing.T) {
	l := gamelog.New()
	first := l.AppendRound("wait", nil, nil, "   ")
	assert.Equal(t, -1, first)
	assert.Len(t, l.Encounter(), 1)
}

func TestActionFor(t *testing.T) {
	l := gamelog.New()
	l.Append("Hero waits", entities.LogPlayerAction)
	first := l.AppendRound("Hero waits", []string{"Goblin circles"}, nil, "Nothing happens yet.")

	action, err := l.ActionFor(first)
	require.NoError(t, err)
	assert.Equal(t, "Hero waits", action)

	// Second round maps to its own action.
	second := l.AppendRound("Hero strikes", nil, nil, "Steel flashes.")
	action, err = l.ActionFor(second)
	require.NoError(t, err)
	assert.Equal(t, "Hero strikes", action)

	// Non-narrative entries do not regenerate.
	_, err = l.ActionFor(1)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = l.ActionFor(99)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestRestore(t *testing.T) {
	display := []entities.LogEntry{{
		Message: "old line",
		Type:    entities.LogNarrative,
		Swipes:  []string{"old line"},
		Round:   0,
	}}
	rounds := []entities.EncounterLogEntry{{Action: "charge", Narrative: "old line"}}

	l := gamelog.Restore(display, rounds)

	action, err := l.ActionFor(0)
	require.NoError(t, err)
	assert.Equal(t, "charge", action)
}
