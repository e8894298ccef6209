// Package encounter provides persistence for encounter snapshots keyed by
// conversation identity. A snapshot is the full aggregate; loading one back
// must reproduce the encounter the orchestrator saved.
package encounter

//go:generate mockgen -destination=mock/mock_repository.go -package=encounterrepomock github.com/riftline/encounter-engine/internal/repositories/encounter Repository

import (
	"context"

	"github.com/riftline/encounter-engine/internal/entities"
)

// Repository defines the interface for encounter snapshot persistence
type Repository interface {
	// Save stores the full encounter snapshot for a session, overwriting
	// any previous snapshot.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load retrieves the snapshot for a session
	// Returns errors.InvalidArgument for empty session keys
	// Returns errors.NotFound when no snapshot exists
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete removes the snapshot for a session. Deleting an absent
	// snapshot is not an error.
	// Returns errors.InvalidArgument for empty session keys
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	SessionKey string
	Encounter  *entities.Encounter
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	Encounter *entities.Encounter
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	SessionKey string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	SessionKey string
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}
