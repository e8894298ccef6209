package entities

import "time"

// CombatStats is the authoritative combat state of an encounter. It is
// populated exactly once at initialization and only merged afterward.
type CombatStats struct {
	Party               []Entity `json:"party"`
	Enemies             []Entity `json:"enemies"`
	Environment         string   `json:"environment,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
	// StyleNotes is presentation metadata, write-once at initialization.
	StyleNotes string `json:"styleNotes,omitempty"`
}

// Player returns the party member flagged as the player, or nil. Exactly one
// party member carries the flag in a well-formed encounter.
func (s *CombatStats) Player() *Entity {
	for i := range s.Party {
		if s.Party[i].IsPlayer {
			return &s.Party[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the stats
func (s CombatStats) Clone() CombatStats {
	c := s
	c.Party = CloneEntities(s.Party)
	c.Enemies = CloneEntities(s.Enemies)
	return c
}

// Encounter is the root aggregate: one complete combat session from
// initialization to summary. It is owned exclusively by the lifecycle
// orchestrator and persisted in full after every state-changing operation.
type Encounter struct {
	ID          string      `json:"id,omitempty"`
	Active      bool        `json:"active"`
	Initialized bool        `json:"initialized"`
	CombatStats CombatStats `json:"combatStats"`

	// DisplayLog is the per-line log for on-screen replay.
	DisplayLog []LogEntry `json:"displayLog"`
	// EncounterLog is the per-turn log used to rebuild the summary prompt.
	EncounterLog []EncounterLogEntry `json:"encounterLog"`

	// PendingEnemies and PendingParty hold AI-proposed combatants awaiting
	// explicit user accept/discard. They never enter active play on their own.
	PendingEnemies []Entity `json:"pendingEnemies"`
	PendingParty   []Entity `json:"pendingParty"`

	// SavedAt is stamped by the persistence adapter on save.
	SavedAt time.Time `json:"savedAt,omitempty"`
}

// Clone returns a deep copy of the whole aggregate
func (e Encounter) Clone() Encounter {
	c := e
	c.CombatStats = e.CombatStats.Clone()
	c.PendingEnemies = CloneEntities(e.PendingEnemies)
	c.PendingParty = CloneEntities(e.PendingParty)
	if e.DisplayLog != nil {
		c.DisplayLog = make([]LogEntry, len(e.DisplayLog))
		for i, le := range e.DisplayLog {
			c.DisplayLog[i] = le.Clone()
		}
	}
	c.EncounterLog = append([]EncounterLogEntry(nil), e.EncounterLog...)
	return c
}
