package entities

// LogType classifies display-log entries
type LogType string

// Display-log entry types
const (
	LogPlayerAction LogType = "player-action"
	LogEnemyAction  LogType = "enemy-action"
	LogPartyAction  LogType = "party-action"
	LogNarrative    LogType = "narrative"
	LogSystem       LogType = "system"
)

// LogEntry is one line of the display log. Swipes holds every generated
// version of the line; Message always mirrors Swipes[SwipeIndex]. The UI
// contract only regenerates narrative entries, but any type may carry
// multiple swipes.
type LogEntry struct {
	Message    string   `json:"message"`
	Type       LogType  `json:"type"`
	Swipes     []string `json:"swipes"`
	SwipeIndex int      `json:"swipeIndex"`
	// Round links the entry to the action round-trip that produced it.
	Round int `json:"round,omitempty"`
}

// Clone returns a deep copy of the entry
func (l LogEntry) Clone() LogEntry {
	c := l
	c.Swipes = append([]string(nil), l.Swipes...)
	return c
}

// EncounterLogEntry is one action-resolution round-trip, coarser grained
// than the display log. Only the summary prompt consumes it.
type EncounterLogEntry struct {
	Action    string `json:"action"`
	Narrative string `json:"narrative"`
}
