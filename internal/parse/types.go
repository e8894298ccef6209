package parse

import (
	"strings"

	"github.com/riftline/encounter-engine/internal/entities"
)

// EntityPatch is one combatant as claimed by a generation response. Pointer
// fields model presence explicitly: nil means the response did not mention
// the field and reconciliation must not touch it. Locally-owned fields are
// carried as plain values because they are only ever read when a proposed
// entity is materialized, never merged into an existing one.
type EntityPatch struct {
	Name        string                `json:"name"`
	HP          *int                  `json:"hp,omitempty"`
	MaxHP       *int                  `json:"maxHp,omitempty"`
	Statuses    *[]entities.Status    `json:"statuses,omitempty"`
	CustomBars  *[]entities.CustomBar `json:"customBars,omitempty"`
	Attacks     []entities.Attack     `json:"attacks,omitempty"`
	Sprite      string                `json:"sprite,omitempty"`
	Description string                `json:"description,omitempty"`
	Items       []string              `json:"items,omitempty"`
	IsPlayer    bool                  `json:"isPlayer,omitempty"`
}

// Materialize builds a full entity from a patch, for the initialization
// roster and for proposed combatants diverted to the pending lists.
func (p *EntityPatch) Materialize() entities.Entity {
	e := entities.Entity{
		Name:        p.Name,
		Attacks:     append([]entities.Attack(nil), p.Attacks...),
		Sprite:      p.Sprite,
		Description: p.Description,
		Items:       append([]string(nil), p.Items...),
		IsPlayer:    p.IsPlayer,
	}
	if p.HP != nil {
		e.HP = *p.HP
	}
	if p.MaxHP != nil {
		e.MaxHP = *p.MaxHP
	}
	if e.MaxHP == 0 && e.HP > 0 {
		e.MaxHP = e.HP
	}
	if p.Statuses != nil {
		e.Statuses = append([]entities.Status(nil), *p.Statuses...)
	}
	if p.CustomBars != nil {
		e.CustomBars = append([]entities.CustomBar(nil), *p.CustomBars...)
	}
	e.ClampHP()
	return e
}

// StatsPatch is the partial combat-state update carried by an action
// response. Only AI-owned fields are representable.
type StatsPatch struct {
	Party               []EntityPatch `json:"party"`
	Enemies             []EntityPatch `json:"enemies"`
	Environment         *string       `json:"environment,omitempty"`
	SpecialInstructions *string       `json:"specialInstructions,omitempty"`
}

// InitResponse is the validated payload of an initialization round-trip
type InitResponse struct {
	Party               []EntityPatch `json:"party"`
	Enemies             []EntityPatch `json:"enemies"`
	Environment         string        `json:"environment"`
	SpecialInstructions string        `json:"specialInstructions"`
}

// ActionResponse is the validated payload of an action-resolution round-trip
type ActionResponse struct {
	CombatStats  *StatsPatch `json:"combatStats"`
	EnemyActions []string    `json:"enemyActions"`
	PartyActions []string    `json:"partyActions"`
	Narrative    string      `json:"narrative"`
	CombatEnd    bool        `json:"combatEnd"`
	Result       string      `json:"result"`
}

// Ended reports whether the response signals a terminal state. The heuristic
// is deliberately lenient: either an explicit combatEnd or any non-empty
// result string concludes the encounter.
func (r *ActionResponse) Ended() bool {
	return r.CombatEnd || strings.TrimSpace(r.Result) != ""
}

// FinalResult returns the terminal result text, defaulting when the model
// set combatEnd without naming an outcome.
func (r *ActionResponse) FinalResult() string {
	if result := strings.TrimSpace(r.Result); result != "" {
		return result
	}
	return "the encounter has concluded"
}
