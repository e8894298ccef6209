package encounter

import (
	"context"

	"github.com/riftline/encounter-engine/internal/entities"
)

// State is the lifecycle position of the encounter
type State string

// Lifecycle states
const (
	StateIdle          State = "idle"
	StateConfiguring   State = "configuring"
	StateInitializing  State = "initializing"
	StateActive        State = "active"
	StateProcessing    State = "processing"
	StateConcluding    State = "concluding"
	StateEnded         State = "ended"
	StateAwaitingRetry State = "awaiting-retry"
)

// EntityList selects which combatant list an operation targets
type EntityList string

// Entity lists
const (
	ListParty   EntityList = "party"
	ListEnemies EntityList = "enemies"
)

// Service defines the interface for encounter lifecycle operations. These
// are the only mutation entry points into an encounter; the rendering layer
// consumes read-only snapshots and emits these intents.
type Service interface {
	// Session lifecycle
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)
	Continue(ctx context.Context, input *ContinueInput) (*ContinueOutput, error)
	NewEncounter(ctx context.Context, input *NewEncounterInput) (*NewEncounterOutput, error)
	Configure(ctx context.Context, input *ConfigureInput) (*ConfigureOutput, error)
	Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error)
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)
	Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error)
	Conclude(ctx context.Context, input *ConcludeInput) (*ConcludeOutput, error)
	Close(ctx context.Context, input *CloseInput) (*CloseOutput, error)

	// Pending entity management
	AcceptPending(ctx context.Context, input *AcceptPendingInput) (*AcceptPendingOutput, error)
	DiscardPending(ctx context.Context, input *DiscardPendingInput) (*DiscardPendingOutput, error)

	// Manual entity edits
	UpdateEntity(ctx context.Context, input *UpdateEntityInput) (*UpdateEntityOutput, error)
	RemoveEntity(ctx context.Context, input *RemoveEntityInput) (*RemoveEntityOutput, error)
	RestorePlayer(ctx context.Context, input *RestorePlayerInput) (*RestorePlayerOutput, error)

	// Log operations
	SetSwipe(ctx context.Context, input *SetSwipeInput) (*SetSwipeOutput, error)
	RegenerateEntry(ctx context.Context, input *RegenerateEntryInput) (*RegenerateEntryOutput, error)

	// Read-only view
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
}

// OpenInput opens the encounter feature for a conversation
type OpenInput struct {
	SessionKey string
}

// OpenOutput reports whether a resumable snapshot exists
type OpenOutput struct {
	HasSnapshot bool
}

// ContinueInput resumes from the persisted snapshot
type ContinueInput struct{}

// ContinueOutput carries the resumed encounter state
type ContinueOutput struct {
	Encounter *entities.Encounter
}

// NewEncounterInput discards any persisted snapshot and starts fresh
type NewEncounterInput struct{}

// NewEncounterOutput is empty
type NewEncounterOutput struct{}

// ConfigureInput sets the encounter flavor, narrative style, and standing
// instructions before initialization
type ConfigureInput struct {
	// ProfileID selects the encounter profile. Empty keeps the provider's
	// current selection; selection requires a switchable provider.
	ProfileID           string
	StyleNotes          string
	SpecialInstructions string
}

// ConfigureOutput is empty
type ConfigureOutput struct{}

// InitializeInput triggers the initialization round-trip
type InitializeInput struct {
	// Context is the host-supplied narrative context the combatants are
	// inferred from.
	Context string
}

// InitializeOutput carries the initialized combat state
type InitializeOutput struct {
	Stats entities.CombatStats
}

// SubmitActionInput resolves one player action
type SubmitActionInput struct {
	Action   string
	Guidance string
}

// SubmitActionOutput reports the resolved round
type SubmitActionOutput struct {
	Narrative string
	// Ended is true when the response carried a terminal signal and the
	// encounter moved to concluding.
	Ended  bool
	Result string
}

// RetryInput replays the last failed request verbatim
type RetryInput struct{}

// RetryOutput mirrors the output of the replayed operation
type RetryOutput struct {
	Initialized bool
	Action      *SubmitActionOutput
}

// ConcludeInput runs the summary round-trip. Valid from active play
// (conclude early) or from concluding (retry a failed summary).
type ConcludeInput struct{}

// ConcludeOutput carries the delivered summary
type ConcludeOutput struct {
	Summary string
}

// CloseInput abandons the in-memory encounter
type CloseInput struct{}

// CloseOutput is empty
type CloseOutput struct{}

// AcceptPendingInput admits a proposed combatant into active play
type AcceptPendingInput struct {
	List  EntityList
	Index int
}

// AcceptPendingOutput carries the admitted entity
type AcceptPendingOutput struct {
	Entity entities.Entity
}

// DiscardPendingInput rejects a proposed combatant
type DiscardPendingInput struct {
	List  EntityList
	Index int
}

// DiscardPendingOutput is empty
type DiscardPendingOutput struct{}

// UpdateEntityInput edits a combatant's locally-owned fields plus its
// resource values. The player flag never changes through this path.
type UpdateEntityInput struct {
	List   EntityList
	Index  int
	Entity entities.Entity
}

// UpdateEntityOutput carries the updated entity
type UpdateEntityOutput struct {
	Entity entities.Entity
}

// RemoveEntityInput deletes a combatant. This is the only deletion path;
// reconciliation never removes anyone.
type RemoveEntityInput struct {
	List  EntityList
	Index int
}

// RemoveEntityOutput is empty
type RemoveEntityOutput struct{}

// RestorePlayerInput revives the player to full resource
type RestorePlayerInput struct{}

// RestorePlayerOutput carries the restored player
type RestorePlayerOutput struct {
	Player entities.Entity
}

// SetSwipeInput switches the active swipe of a log entry
type SetSwipeInput struct {
	Index int
	Swipe int
}

// SetSwipeOutput carries the now-active message
type SetSwipeOutput struct {
	Message string
}

// RegenerateEntryInput re-resolves the action behind a narrative log entry
type RegenerateEntryInput struct {
	Index int
}

// RegenerateEntryOutput carries the new swipe
type RegenerateEntryOutput struct {
	Message    string
	SwipeIndex int
}

// SnapshotInput requests a read-only view
type SnapshotInput struct{}

// SnapshotOutput is a deep copy of current state; mutating it never touches
// the live encounter
type SnapshotOutput struct {
	State     State
	Encounter *entities.Encounter
}
