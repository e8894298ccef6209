package encounter

import (
	"context"
	"log/slog"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/parse"
	"github.com/riftline/encounter-engine/internal/prompt"
	"github.com/riftline/encounter-engine/internal/reconcile"
	encounterrepo "github.com/riftline/encounter-engine/internal/repositories/encounter"
)

// runInit executes an initialization request. Caller holds the mutex and has
// already moved to StateInitializing with lastRequest set.
func (o *Orchestrator) runInit(ctx context.Context, req *prompt.Request) (*InitializeOutput, error) {
	raw, err := o.generator.Generate(ctx, req.Text)
	if err != nil {
		return nil, o.fail(ctx, StateInitializing, err)
	}

	resp, err := parse.ParseInit(raw)
	if err != nil {
		return nil, o.fail(ctx, StateInitializing, err)
	}
	if len(resp.Party) == 0 {
		return nil, o.fail(ctx, StateInitializing,
			errors.MissingRequiredField("init response has an empty party"))
	}

	stats := entities.CombatStats{
		Party:       materialize(resp.Party),
		Enemies:     materialize(resp.Enemies),
		Environment: resp.Environment,
		StyleNotes:  o.pendingStyle,
	}

	// User-authored standing instructions win over model suggestions.
	stats.SpecialInstructions = o.pendingInstructions
	if stats.SpecialInstructions == "" {
		stats.SpecialInstructions = resp.SpecialInstructions
	}

	ensureSinglePlayer(stats.Party)

	o.enc.CombatStats = stats
	o.enc.Initialized = true
	o.enc.Active = true
	o.log.Append("The encounter begins.", entities.LogSystem)
	if stats.Environment != "" {
		o.log.Append(stats.Environment, entities.LogSystem)
	}

	o.state = StateActive
	o.persist(ctx)

	slog.InfoContext(ctx, "encounter initialized",
		"encounter_id", o.enc.ID,
		"party", len(stats.Party),
		"enemies", len(stats.Enemies))

	return &InitializeOutput{Stats: stats.Clone()}, nil
}

// SubmitAction resolves one player action through the full pipeline
func (o *Orchestrator) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("action", input.Action, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateActive {
		return nil, errors.FailedPreconditionf("cannot submit an action from state %s", o.state)
	}

	req, err := o.compiler.Action(prompt.ActionInput{
		Stats:    &o.enc.CombatStats,
		Action:   input.Action,
		Guidance: input.Guidance,
	})
	if err != nil {
		return nil, err
	}

	o.state = StateProcessing
	o.lastRequest = req

	return o.runAction(ctx, req)
}

// runAction executes an action request. Caller holds the mutex and has
// already moved to StateProcessing with lastRequest set. Nothing in the
// encounter mutates until the response validates.
func (o *Orchestrator) runAction(ctx context.Context, req *prompt.Request) (*SubmitActionOutput, error) {
	raw, err := o.generator.Generate(ctx, req.Text)
	if err != nil {
		return nil, o.fail(ctx, StateProcessing, err)
	}

	resp, err := parse.ParseAction(raw)
	if err != nil {
		return nil, o.fail(ctx, StateProcessing, err)
	}

	res := reconcile.Apply(&o.enc.CombatStats, resp.CombatStats)

	o.enc.PendingEnemies = append(o.enc.PendingEnemies,
		reconcile.DedupeEnemies(res.NewEnemies, o.enc.PendingEnemies, o.enc.CombatStats.Enemies)...)
	o.enc.PendingParty = append(o.enc.PendingParty,
		reconcile.DedupeParty(res.NewParty, o.enc.PendingParty, o.enc.CombatStats.Party)...)

	o.log.Append(req.Action, entities.LogPlayerAction)
	o.log.AppendRound(req.Action, resp.EnemyActions, resp.PartyActions, resp.Narrative)

	out := &SubmitActionOutput{Narrative: resp.Narrative}

	if resp.Ended() {
		o.finalResult = resp.FinalResult()
		o.state = StateConcluding
		out.Ended = true
		out.Result = o.finalResult
		slog.InfoContext(ctx, "encounter reached terminal state",
			"encounter_id", o.enc.ID,
			"result", o.finalResult)
	} else {
		o.state = StateActive
	}

	o.persist(ctx)
	return out, nil
}

// Retry replays the stored last request verbatim
func (o *Orchestrator) Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateAwaitingRetry {
		return nil, errors.FailedPreconditionf("nothing to retry from state %s", o.state)
	}
	if o.lastRequest == nil {
		return nil, errors.Internal("awaiting retry with no stored request")
	}

	o.state = o.retryFrom

	switch o.lastRequest.Kind {
	case prompt.KindInit:
		if _, err := o.runInit(ctx, o.lastRequest); err != nil {
			return nil, err
		}
		return &RetryOutput{Initialized: true}, nil
	case prompt.KindAction:
		out, err := o.runAction(ctx, o.lastRequest)
		if err != nil {
			return nil, err
		}
		return &RetryOutput{Action: out}, nil
	default:
		return nil, errors.Internalf("cannot retry request kind %s", o.lastRequest.Kind)
	}
}

// Conclude runs the summary round-trip and delivers the result to the host
// transcript. Reachable from active play (conclude early) and from
// concluding (either the natural transition or a summary retry).
func (o *Orchestrator) Conclude(ctx context.Context, input *ConcludeInput) (*ConcludeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateActive && o.state != StateConcluding {
		return nil, errors.FailedPreconditionf("cannot conclude from state %s", o.state)
	}
	o.state = StateConcluding

	req, err := o.compiler.Summary(prompt.SummaryInput{
		Rounds:     o.log.Encounter(),
		Result:     o.finalResult,
		StyleNotes: o.enc.CombatStats.StyleNotes,
	})
	if err != nil {
		return nil, err
	}
	o.lastRequest = req

	raw, err := o.generator.Generate(ctx, req.Text)
	if err != nil {
		// Stay in concluding; re-invoking Conclude is the retry.
		return nil, err
	}

	summary := parse.ParseSummary(raw)
	if summary == "" {
		return nil, errors.EmptyResponse("summary response was blank")
	}

	if err := o.transcript.SendAs(ctx, o.narrator, summary); err != nil {
		// Degrade: keep the summary in the display log instead of losing it.
		slog.WarnContext(ctx, "transcript delivery failed, keeping summary in log",
			"encounter_id", o.enc.ID,
			"error", err.Error())
		o.log.Append(summary, entities.LogSystem)
	}

	if _, err := o.repo.Delete(ctx, encounterrepo.DeleteInput{SessionKey: o.sessionKey}); err != nil {
		slog.WarnContext(ctx, "failed to clear persisted snapshot",
			"session_key", o.sessionKey,
			"error", err.Error())
	}

	o.enc.Active = false
	o.state = StateEnded

	slog.InfoContext(ctx, "encounter concluded",
		"encounter_id", o.enc.ID,
		"result", o.finalResult)

	return &ConcludeOutput{Summary: summary}, nil
}

// Close abandons the in-memory encounter. Any snapshot persisted by earlier
// successful turns survives until overwritten.
func (o *Orchestrator) Close(ctx context.Context, input *CloseInput) (*CloseOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = StateIdle
	o.enc = nil
	o.log = nil
	o.lastRequest = nil
	o.retryFrom = ""
	o.finalResult = ""
	o.sessionKey = ""
	o.hasSnapshot = false
	o.pendingStyle = ""
	o.pendingInstructions = ""

	return &CloseOutput{}, nil
}

// fail records a recoverable round-trip failure: the machine parks in
// awaiting-retry, state is untouched, and the error goes back to the caller
// as a dismissible, retryable condition.
func (o *Orchestrator) fail(ctx context.Context, from State, err error) error {
	o.retryFrom = from
	o.state = StateAwaitingRetry

	slog.WarnContext(ctx, "generation round-trip failed",
		"from", string(from),
		"code", errors.GetCode(err).String(),
		"error", err.Error())

	return err
}

// persist snapshots the encounter after a successful mutation. Failures are
// logged, not surfaced: losing a snapshot write costs at most the in-flight
// turn on crash, and the next successful turn overwrites it anyway.
func (o *Orchestrator) persist(ctx context.Context) {
	o.enc.DisplayLog = o.log.Display()
	o.enc.EncounterLog = o.log.Encounter()

	if _, err := o.repo.Save(ctx, encounterrepo.SaveInput{
		SessionKey: o.sessionKey,
		Encounter:  o.enc,
	}); err != nil {
		slog.WarnContext(ctx, "failed to persist encounter snapshot",
			"session_key", o.sessionKey,
			"error", err.Error())
	}
}

// materialize converts response patches into full entities
func materialize(patches []parse.EntityPatch) []entities.Entity {
	out := make([]entities.Entity, len(patches))
	for i := range patches {
		out[i] = patches[i].Materialize()
	}
	return out
}

// ensureSinglePlayer keeps exactly one player flag in the party: the first
// flagged member wins, and when none is flagged the first member is promoted.
func ensureSinglePlayer(party []entities.Entity) {
	found := false
	for i := range party {
		if party[i].IsPlayer {
			if found {
				party[i].IsPlayer = false
			}
			found = true
		}
	}
	if !found && len(party) > 0 {
		party[0].IsPlayer = true
	}
}
