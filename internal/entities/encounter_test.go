package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftline/encounter-engine/internal/entities"
)

func TestEntity_ClampHP(t *testing.T) {
	e := entities.Entity{Name: "Goblin", HP: -5, MaxHP: 30}
	e.ClampHP()
	assert.Equal(t, 0, e.HP)
	assert.True(t, e.Defeated())

	e.HP = 45
	e.ClampHP()
	assert.Equal(t, 30, e.HP)
}

func TestCombatStats_Player(t *testing.T) {
	stats := entities.CombatStats{
		Party: []entities.Entity{
			{Name: "Sidekick"},
			{Name: "Hero", IsPlayer: true},
		},
	}
	p := stats.Player()
	assert.NotNil(t, p)
	assert.Equal(t, "Hero", p.Name)

	empty := entities.CombatStats{}
	assert.Nil(t, empty.Player())
}

func TestEncounter_Clone_IsDeep(t *testing.T) {
	enc := entities.Encounter{
		Active:      true,
		Initialized: true,
		CombatStats: entities.CombatStats{
			Party: []entities.Entity{{
				Name:    "Hero",
				HP:      100,
				MaxHP:   100,
				Attacks: []entities.Attack{{Name: "Slash", Type: entities.AttackSingleTarget}},
				Items:   []string{"potion"},
			}},
			Enemies: []entities.Entity{{Name: "Goblin", HP: 30, MaxHP: 30}},
		},
		DisplayLog: []entities.LogEntry{{
			Message: "The fight begins.",
			Type:    entities.LogSystem,
			Swipes:  []string{"The fight begins."},
		}},
		EncounterLog:   []entities.EncounterLogEntry{{Action: "attack", Narrative: "A swing."}},
		PendingEnemies: []entities.Entity{{Name: "Wolf"}},
	}

	clone := enc.Clone()
	clone.CombatStats.Party[0].HP = 1
	clone.CombatStats.Party[0].Attacks[0].Name = "Stab"
	clone.CombatStats.Party[0].Items[0] = "rock"
	clone.DisplayLog[0].Swipes[0] = "changed"
	clone.PendingEnemies[0].Name = "Bear"

	assert.Equal(t, 100, enc.CombatStats.Party[0].HP)
	assert.Equal(t, "Slash", enc.CombatStats.Party[0].Attacks[0].Name)
	assert.Equal(t, "potion", enc.CombatStats.Party[0].Items[0])
	assert.Equal(t, "The fight begins.", enc.DisplayLog[0].Swipes[0])
	assert.Equal(t, "Wolf", enc.PendingEnemies[0].Name)
}
