package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/parse"
	"github.com/riftline/encounter-engine/internal/reconcile"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func baseStats() *entities.CombatStats {
	return &entities.CombatStats{
		Party: []entities.Entity{{
			Name:     "Hero",
			HP:       100,
			MaxHP:    100,
			IsPlayer: true,
			Attacks:  []entities.Attack{{Name: "Slash", Type: entities.AttackSingleTarget}},
			Items:    []string{"healing potion"},
		}},
		Enemies: []entities.Entity{
			{Name: "Goblin", HP: 30, MaxHP: 30, Sprite: "goblin.png", Description: "small and mean"},
			{Name: "Orc", HP: 50, MaxHP: 50},
		},
		Environment: "a torchlit cave",
	}
}

func TestApply_FieldScopedMerge(t *testing.T) {
	stats := baseStats()
	patch := &parse.StatsPatch{
		Party: []parse.EntityPatch{{
			Name: "Renamed Hero", // must be ignored
			HP:   intp(72),
			Statuses: &[]entities.Status{
				{Name: "poisoned", Emoji: "🤢", Duration: 2},
			},
		}},
		Enemies: []parse.EntityPatch{
			{Name: "Goblin", HP: intp(5), Sprite: "fake.png", Description: "huge"},
			{Name: "Orc", HP: intp(50), CustomBars: &[]entities.CustomBar{{Name: "Rage", Current: 3, Max: 10}}},
		},
		Environment: strp("the cave, now scorched"),
	}

	res := reconcile.Apply(stats, patch)

	assert.Empty(t, res.NewEnemies)
	assert.Empty(t, res.NewParty)

	hero := stats.Party[0]
	assert.Equal(t, "Hero", hero.Name)
	assert.Equal(t, 72, hero.HP)
	assert.Equal(t, []string{"healing potion"}, hero.Items)
	assert.Equal(t, "Slash", hero.Attacks[0].Name)
	assert.True(t, hero.IsPlayer)
	require.Len(t, hero.Statuses, 1)
	assert.Equal(t, "poisoned", hero.Statuses[0].Name)

	goblin := stats.Enemies[0]
	assert.Equal(t, 5, goblin.HP)
	assert.Equal(t, "goblin.png", goblin.Sprite)
	assert.Equal(t, "small and mean", goblin.Description)

	orc := stats.Enemies[1]
	require.Len(t, orc.CustomBars, 1)
	assert.Equal(t, "Rage", orc.CustomBars[0].Name)

	assert.Equal(t, "the cave, now scorched", stats.Environment)
}

func TestApply_AbsentFieldsUntouched(t *testing.T) {
	stats := baseStats()
	patch := &parse.StatsPatch{
		Enemies: []parse.EntityPatch{{Name: "Goblin"}, {Name: "Orc"}},
	}

	reconcile.Apply(stats, patch)

	assert.Equal(t, 30, stats.Enemies[0].HP)
	assert.Equal(t, 50, stats.Enemies[1].HP)
	assert.Equal(t, "a torchlit cave", stats.Environment)
}

func TestApply_GrowthContainment(t *testing.T) {
	stats := baseStats()
	patch := &parse.StatsPatch{
		Enemies: []parse.EntityPatch{
			{Name: "Goblin", HP: intp(30)},
			{Name: "Orc", HP: intp(50)},
			{Name: "Goblin Shaman", HP: intp(25), Sprite: "shaman.png"},
			{Name: "Cave Bat", HP: intp(8)},
		},
	}

	res := reconcile.Apply(stats, patch)

	assert.Len(t, stats.Enemies, 2, "live list must not grow")
	require.Len(t, res.NewEnemies, 2)
	assert.Equal(t, "Goblin Shaman", res.NewEnemies[0].Name)
	assert.Equal(t, 25, res.NewEnemies[0].MaxHP, "maxHp defaults to hp for proposals")
	assert.Equal(t, "Cave Bat", res.NewEnemies[1].Name)
}

func TestApply_NoSilentDeletion(t *testing.T) {
	stats := baseStats()

	// A shorter response list merges what it covers and deletes nothing.
	patch := &parse.StatsPatch{
		Enemies: []parse.EntityPatch{{Name: "Goblin", HP: intp(0)}},
	}
	reconcile.Apply(stats, patch)

	assert.Len(t, stats.Enemies, 2)
	assert.Equal(t, 0, stats.Enemies[0].HP)
	assert.Equal(t, 50, stats.Enemies[1].HP)

	// So does an empty one.
	reconcile.Apply(stats, &parse.StatsPatch{})
	assert.Len(t, stats.Party, 1)
	assert.Len(t, stats.Enemies, 2)
}

func TestApply_ClampsHP(t *testing.T) {
	stats := baseStats()
	patch := &parse.StatsPatch{
		Enemies: []parse.EntityPatch{
			{Name: "Goblin", HP: intp(-12)},
			{Name: "Orc", HP: intp(999)},
		},
	}

	reconcile.Apply(stats, patch)

	assert.Equal(t, 0, stats.Enemies[0].HP)
	assert.True(t, stats.Enemies[0].Defeated())
	assert.Equal(t, 50, stats.Enemies[1].HP)
}

func TestDedupeEnemies(t *testing.T) {
	proposed := []entities.Entity{
		{Name: "Goblin", Sprite: "goblin.png"},  // already live
		{Name: "Goblin", Sprite: "goblin2.png"}, // same name, new sprite
		{Name: "Wolf"},
		{Name: "Wolf"}, // duplicate within the batch
		{Name: "Shaman", Sprite: "shaman.png"}, // already pending
	}
	pending := []entities.Entity{{Name: "Shaman", Sprite: "shaman.png"}}
	live := []entities.Entity{{Name: "Goblin", Sprite: "goblin.png"}}

	out := reconcile.DedupeEnemies(proposed, pending, live)

	require.Len(t, out, 2)
	assert.Equal(t, "goblin2.png", out[0].Sprite)
	assert.Equal(t, "Wolf", out[1].Name)
}

func TestDedupeParty(t *testing.T) {
	proposed := []entities.Entity{
		{Name: "Hero"}, // live
		{Name: "Bard"},
		{Name: "Bard"}, // duplicate within the batch
	}
	out := reconcile.DedupeParty(proposed, nil, []entities.Entity{{Name: "Hero", IsPlayer: true}})

	require.Len(t, out, 1)
	assert.Equal(t, "Bard", out[0].Name)
}
