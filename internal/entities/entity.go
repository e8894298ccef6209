// Package entities defines the encounter domain model. These are plain data
// structs shared by the compiler, reconciler, log manager, and repositories;
// all behavior that mutates them lives in the lifecycle orchestrator.
package entities

// AttackType classifies how an attack targets combatants
type AttackType string

// Attack target types
const (
	AttackSingleTarget AttackType = "single-target"
	AttackAoE          AttackType = "AoE"
	AttackBoth         AttackType = "both"
)

// Attack is a named move an entity can perform
type Attack struct {
	Name string     `json:"name"`
	Type AttackType `json:"type"`
}

// Status is a temporary condition on an entity (poisoned, shielded, ...)
type Status struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// CustomBar is an extra tracked resource beyond HP (mana, rage, ...)
type CustomBar struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
	Color   string `json:"color,omitempty"`
}

// Entity is a combatant, either a party member or an enemy. One shape serves
// both roles; role-specific fields stay zero-valued on the other side.
//
// Ownership split: Name, Attacks, Items, Description, Sprite and IsPlayer are
// locally authoritative and only change through explicit user edits. HP,
// MaxHP, Statuses and CustomBars are AI-mutable and may be overwritten by
// reconciliation.
type Entity struct {
	Name       string      `json:"name"`
	HP         int         `json:"hp"`
	MaxHP      int         `json:"maxHp"`
	Attacks    []Attack    `json:"attacks,omitempty"`
	Statuses   []Status    `json:"statuses,omitempty"`
	CustomBars []CustomBar `json:"customBars,omitempty"`

	// Enemy-only fields
	Sprite      string `json:"sprite,omitempty"`
	Description string `json:"description,omitempty"`

	// Party-only fields
	Items    []string `json:"items,omitempty"`
	IsPlayer bool     `json:"isPlayer,omitempty"`
}

// Defeated reports whether the entity is out of the fight
func (e *Entity) Defeated() bool {
	return e.HP <= 0
}

// ClampHP forces HP into [0, MaxHP]
func (e *Entity) ClampHP() {
	if e.HP < 0 {
		e.HP = 0
	}
	if e.MaxHP > 0 && e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// Clone returns a deep copy of the entity
func (e Entity) Clone() Entity {
	c := e
	c.Attacks = append([]Attack(nil), e.Attacks...)
	c.Statuses = append([]Status(nil), e.Statuses...)
	c.CustomBars = append([]CustomBar(nil), e.CustomBars...)
	c.Items = append([]string(nil), e.Items...)
	return c
}

// CloneEntities deep-copies a slice of entities
func CloneEntities(list []Entity) []Entity {
	if list == nil {
		return nil
	}
	out := make([]Entity, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}
