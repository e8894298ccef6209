package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/profile"
	"github.com/riftline/encounter-engine/internal/prompt"
)

func newCompiler(t *testing.T) *prompt.Compiler {
	t.Helper()
	c, err := prompt.New(profile.NewStatic(profile.Combat))
	require.NoError(t, err)
	return c
}

func sampleStats() *entities.CombatStats {
	return &entities.CombatStats{
		Party: []entities.Entity{{
			Name:     "Hero",
			HP:       100,
			MaxHP:    100,
			IsPlayer: true,
			Attacks:  []entities.Attack{{Name: "Slash", Type: entities.AttackSingleTarget}},
		}},
		Enemies:     []entities.Entity{{Name: "Goblin", HP: 30, MaxHP: 30}},
		Environment: "a torchlit cave",
	}
}

func TestInit(t *testing.T) {
	c := newCompiler(t)

	req, err := c.Init(prompt.InitInput{
		Context:    "Two goblins block the bridge.",
		StyleNotes: "grim, terse",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.KindInit, req.Kind)
	assert.Empty(t, req.Action)
	assert.Contains(t, req.Text, "Two goblins block the bridge.")
	assert.Contains(t, req.Text, "grim, terse")
	assert.Contains(t, req.Text, `"isPlayer": true`)
	assert.Contains(t, req.Text, "hit points")
}

func TestAction(t *testing.T) {
	c := newCompiler(t)
	stats := sampleStats()
	stats.SpecialInstructions = "the goblin fights dirty"

	req, err := c.Action(prompt.ActionInput{
		Stats:    stats,
		Action:   "Hero attacks Goblin with Slash",
		Guidance: "let the blow land",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.KindAction, req.Kind)
	assert.Equal(t, "Hero attacks Goblin with Slash", req.Action)
	assert.Contains(t, req.Text, `"name": "Goblin"`)
	assert.Contains(t, req.Text, "PLAYER ATTACK")
	assert.Contains(t, req.Text, "let the blow land")
	assert.Contains(t, req.Text, "the goblin fights dirty")
	assert.Contains(t, req.Text, "Never change names, attacks, items, or descriptions.")
}

func TestAction_Deterministic(t *testing.T) {
	c := newCompiler(t)
	input := prompt.ActionInput{Stats: sampleStats(), Action: "Hero waits"}

	first, err := c.Action(input)
	require.NoError(t, err)
	second, err := c.Action(input)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestAction_Validation(t *testing.T) {
	c := newCompiler(t)

	_, err := c.Action(prompt.ActionInput{Action: "swing"})
	assert.Error(t, err)

	_, err = c.Action(prompt.ActionInput{Stats: sampleStats(), Action: "   "})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	c := newCompiler(t)

	req, err := c.Summary(prompt.SummaryInput{
		Rounds: []entities.EncounterLogEntry{
			{Action: "Hero attacks Goblin with Slash", Narrative: "The goblin falls."},
		},
		Result: "victory",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.KindSummary, req.Kind)
	assert.Contains(t, req.Text, prompt.SummarySentinel)
	assert.Contains(t, req.Text, "victory")
	assert.Contains(t, req.Text, "The goblin falls.")
}

func TestSummary_DefaultResult(t *testing.T) {
	c := newCompiler(t)

	req, err := c.Summary(prompt.SummaryInput{Result: "  "})
	require.NoError(t, err)
	assert.Contains(t, req.Text, "the encounter has concluded")
}
