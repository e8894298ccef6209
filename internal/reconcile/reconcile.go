// Package reconcile merges a validated action response into authoritative
// combat state under field-ownership rules. The model may adjust resources
// and conditions; it may never rename, re-equip, or inject combatants.
// Entities are matched positionally by index, an explicit simplifying
// assumption: the lifecycle controller serializes every mutation, so no
// index is reassigned while a round is in flight.
package reconcile

import (
	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/parse"
)

// Result reports what reconciliation produced beyond the in-place merge.
// NewEnemies and NewParty are model-proposed combatants that were clipped
// from the response instead of entering play.
type Result struct {
	NewEnemies []entities.Entity
	NewParty   []entities.Entity
}

// Apply merges a stats patch into stats in place. Only AI-owned fields move:
// hp, maxHp, statuses, and customBars per entity, plus environment and
// specialInstructions at the top level. Trailing patch entries beyond the
// current list length become proposals in the result; existing entities are
// never removed, reordered, or renamed.
func Apply(stats *entities.CombatStats, patch *parse.StatsPatch) Result {
	var res Result
	if stats == nil || patch == nil {
		return res
	}

	res.NewParty = mergeList(stats.Party, patch.Party)
	res.NewEnemies = mergeList(stats.Enemies, patch.Enemies)

	if patch.Environment != nil {
		stats.Environment = *patch.Environment
	}
	if patch.SpecialInstructions != nil {
		stats.SpecialInstructions = *patch.SpecialInstructions
	}

	return res
}

// mergeList applies patches index-for-index and materializes any overflow
func mergeList(current []entities.Entity, patches []parse.EntityPatch) []entities.Entity {
	var proposed []entities.Entity

	for i := range patches {
		if i >= len(current) {
			proposed = append(proposed, patches[i].Materialize())
			continue
		}
		mergeEntity(&current[i], &patches[i])
	}

	return proposed
}

// mergeEntity copies only AI-owned fields that are present in the patch
func mergeEntity(e *entities.Entity, p *parse.EntityPatch) {
	if p.MaxHP != nil {
		e.MaxHP = *p.MaxHP
	}
	if p.HP != nil {
		e.HP = *p.HP
	}
	if p.Statuses != nil {
		e.Statuses = append([]entities.Status(nil), *p.Statuses...)
	}
	if p.CustomBars != nil {
		e.CustomBars = append([]entities.CustomBar(nil), *p.CustomBars...)
	}
	e.ClampHP()
}

// DedupeEnemies filters proposals already present in pending or live lists.
// Enemies are identified by name plus sprite, so two visually distinct
// goblins can both be proposed.
func DedupeEnemies(proposed, pending, live []entities.Entity) []entities.Entity {
	seen := make(map[[2]string]bool, len(pending)+len(live))
	for _, e := range pending {
		seen[[2]string{e.Name, e.Sprite}] = true
	}
	for _, e := range live {
		seen[[2]string{e.Name, e.Sprite}] = true
	}

	var out []entities.Entity
	for _, e := range proposed {
		key := [2]string{e.Name, e.Sprite}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// DedupeParty filters proposals already present in pending or live lists,
// identified by name alone.
func DedupeParty(proposed, pending, live []entities.Entity) []entities.Entity {
	seen := make(map[string]bool, len(pending)+len(live))
	for _, e := range pending {
		seen[e.Name] = true
	}
	for _, e := range live {
		seen[e.Name] = true
	}

	var out []entities.Entity
	for _, e := range proposed {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	return out
}
