package encounter

import (
	"context"
	"sync"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Snapshots
// are deep-copied in and out so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Encounter
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Encounter),
	}
}

// Save stores an encounter snapshot
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}
	if input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}

	snapshot := input.Encounter.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.SessionKey] = &snapshot

	out := snapshot.Clone()
	return &SaveOutput{Encounter: &out}, nil
}

// Load retrieves an encounter snapshot
func (r *InMemoryRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[input.SessionKey]
	if !exists {
		return nil, errors.NotFoundf("no snapshot for session %s", input.SessionKey)
	}

	out := snapshot.Clone()
	return &LoadOutput{Encounter: &out}, nil
}

// Delete removes an encounter snapshot
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, input.SessionKey)

	return &DeleteOutput{}, nil
}
