package encounter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/parse"
	"github.com/riftline/encounter-engine/internal/prompt"
)

// AcceptPending admits a proposed combatant into the live roster
func (o *Orchestrator) AcceptPending(ctx context.Context, input *AcceptPendingInput) (*AcceptPendingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	pending := o.pendingList(input.List)
	if input.Index < 0 || input.Index >= len(*pending) {
		return nil, errors.OutOfRangef("no pending entry at index %d", input.Index)
	}

	entity := (*pending)[input.Index]
	*pending = append((*pending)[:input.Index], (*pending)[input.Index+1:]...)

	if input.List == ListParty {
		entity.IsPlayer = false
		o.enc.CombatStats.Party = append(o.enc.CombatStats.Party, entity)
	} else {
		o.enc.CombatStats.Enemies = append(o.enc.CombatStats.Enemies, entity)
	}

	o.persist(ctx)

	slog.InfoContext(ctx, "pending entity accepted",
		"encounter_id", o.enc.ID,
		"list", string(input.List),
		"name", entity.Name)

	return &AcceptPendingOutput{Entity: entity.Clone()}, nil
}

// DiscardPending rejects a proposed combatant
func (o *Orchestrator) DiscardPending(ctx context.Context, input *DiscardPendingInput) (*DiscardPendingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	pending := o.pendingList(input.List)
	if input.Index < 0 || input.Index >= len(*pending) {
		return nil, errors.OutOfRangef("no pending entry at index %d", input.Index)
	}
	*pending = append((*pending)[:input.Index], (*pending)[input.Index+1:]...)

	o.persist(ctx)
	return &DiscardPendingOutput{}, nil
}

// UpdateEntity applies a manual edit to a live combatant. The edit covers the
// presentation fields and resource values; the player flag and any
// model-owned transient state (statuses, custom bars) stay as they are.
func (o *Orchestrator) UpdateEntity(ctx context.Context, input *UpdateEntityInput) (*UpdateEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	list := o.liveList(input.List)
	if input.Index < 0 || input.Index >= len(*list) {
		return nil, errors.OutOfRangef("no entity at index %d", input.Index)
	}

	target := &(*list)[input.Index]
	target.Name = input.Entity.Name
	target.Attacks = input.Entity.Attacks
	target.Items = input.Entity.Items
	target.Description = input.Entity.Description
	target.Sprite = input.Entity.Sprite
	if input.Entity.MaxHP > 0 {
		target.MaxHP = input.Entity.MaxHP
	}
	target.HP = input.Entity.HP
	target.ClampHP()

	o.persist(ctx)
	return &UpdateEntityOutput{Entity: target.Clone()}, nil
}

// RemoveEntity deletes a live combatant. The player cannot be removed.
func (o *Orchestrator) RemoveEntity(ctx context.Context, input *RemoveEntityInput) (*RemoveEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	list := o.liveList(input.List)
	if input.Index < 0 || input.Index >= len(*list) {
		return nil, errors.OutOfRangef("no entity at index %d", input.Index)
	}
	if input.List == ListParty && (*list)[input.Index].IsPlayer {
		return nil, errors.FailedPrecondition("the player cannot be removed from the encounter")
	}

	*list = append((*list)[:input.Index], (*list)[input.Index+1:]...)

	o.persist(ctx)
	return &RemoveEntityOutput{}, nil
}

// RestorePlayer revives the player to full resource and clears statuses
func (o *Orchestrator) RestorePlayer(ctx context.Context, input *RestorePlayerInput) (*RestorePlayerOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	player := o.enc.CombatStats.Player()
	if player == nil {
		return nil, errors.NotFound("the party has no player")
	}

	player.HP = player.MaxHP
	player.Statuses = nil

	o.persist(ctx)

	slog.InfoContext(ctx, "player restored",
		"encounter_id", o.enc.ID,
		"name", player.Name)

	return &RestorePlayerOutput{Player: player.Clone()}, nil
}

// SetSwipe switches the active alternative of a display log entry
func (o *Orchestrator) SetSwipe(ctx context.Context, input *SetSwipeInput) (*SetSwipeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireLive(); err != nil {
		return nil, err
	}

	if err := o.log.SetSwipeIndex(input.Index, input.Swipe); err != nil {
		return nil, err
	}

	o.persist(ctx)
	return &SetSwipeOutput{Message: o.log.Display()[input.Index].Message}, nil
}

// RegenerateEntry re-resolves the action behind a narrative entry and stores
// the result as a new swipe on that entry. The encounter itself does not
// change: regeneration offers an alternative telling, not an alternative
// outcome.
func (o *Orchestrator) RegenerateEntry(ctx context.Context, input *RegenerateEntryInput) (*RegenerateEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateActive {
		return nil, errors.FailedPreconditionf("cannot regenerate from state %s", o.state)
	}

	action, err := o.log.ActionFor(input.Index)
	if err != nil {
		return nil, err
	}

	req, err := o.compiler.Action(prompt.ActionInput{
		Stats:  &o.enc.CombatStats,
		Action: action,
	})
	if err != nil {
		return nil, err
	}

	// A regeneration failure is scoped to this entry: no retry state, no
	// encounter changes.
	raw, err := o.generator.Generate(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	resp, err := parse.ParseAction(raw)
	if err != nil {
		return nil, err
	}

	narrative := strings.TrimSpace(resp.Narrative)
	if narrative == "" {
		return nil, errors.EmptyResponse("regenerated response had no narrative")
	}

	if err := o.log.AddSwipe(input.Index, narrative); err != nil {
		return nil, err
	}

	o.persist(ctx)

	entry := o.log.Display()[input.Index]
	return &RegenerateEntryOutput{Message: narrative, SwipeIndex: entry.SwipeIndex}, nil
}

// Snapshot returns a read-only deep copy of current state
func (o *Orchestrator) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := &SnapshotOutput{State: o.state}
	if o.enc != nil {
		if o.log != nil {
			o.enc.DisplayLog = o.log.Display()
			o.enc.EncounterLog = o.log.Encounter()
		}
		view := o.enc.Clone()
		out.Encounter = &view
	}
	return out, nil
}

// requireLive guards operations that mutate a running encounter
func (o *Orchestrator) requireLive() error {
	if o.state != StateActive && o.state != StateConcluding {
		return errors.FailedPreconditionf("no running encounter in state %s", o.state)
	}
	return nil
}

func (o *Orchestrator) pendingList(list EntityList) *[]entities.Entity {
	if list == ListParty {
		return &o.enc.PendingParty
	}
	return &o.enc.PendingEnemies
}

func (o *Orchestrator) liveList(list EntityList) *[]entities.Entity {
	if list == ListParty {
		return &o.enc.CombatStats.Party
	}
	return &o.enc.CombatStats.Enemies
}
