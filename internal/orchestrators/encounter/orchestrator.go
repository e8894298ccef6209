// Package encounter implements the encounter lifecycle orchestrator: the
// state machine driving configuration, initialization, active play,
// conclusion, and persistence of one combat encounter. It is the single
// writer of encounter state; every mutation path runs through it, guarded by
// one mutex, so no round-trip can interleave with an edit.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/riftline/encounter-engine/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/riftline/encounter-engine/internal/clients/llm"
	"github.com/riftline/encounter-engine/internal/clients/transcript"
	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/gamelog"
	"github.com/riftline/encounter-engine/internal/pkg/idgen"
	"github.com/riftline/encounter-engine/internal/profile"
	"github.com/riftline/encounter-engine/internal/prompt"
	encounterrepo "github.com/riftline/encounter-engine/internal/repositories/encounter"
)

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Repo       encounterrepo.Repository
	Generator  llm.Client
	Transcript transcript.Injector
	Profiles   profile.Provider
	IDGen      idgen.Generator
	// Narrator is the transcript speaker identity used for summaries.
	Narrator string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Transcript == nil {
		vb.RequiredField("Transcript")
	}
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	repo       encounterrepo.Repository
	generator  llm.Client
	transcript transcript.Injector
	compiler   *prompt.Compiler
	profiles   profile.Provider
	idGen      idgen.Generator
	narrator   string

	mu         sync.Mutex
	state      State
	sessionKey string
	// hasSnapshot is resolved during Open and gates Continue.
	hasSnapshot bool
	enc         *entities.Encounter
	log         *gamelog.Log
	// lastRequest is the most recent generation request, retained verbatim
	// so retry replays the exact bytes that failed.
	lastRequest *prompt.Request
	// retryFrom records which state a failed request came from.
	retryFrom State
	// finalResult is the terminal result text awaiting the summary round-trip.
	finalResult string
	// pendingStyle and pendingInstructions stage Configure values until the
	// initialization assignment.
	pendingStyle        string
	pendingInstructions string
}

// New creates a new encounter orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	compiler, err := prompt.New(cfg.Profiles)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	narrator := cfg.Narrator
	if narrator == "" {
		narrator = "Narrator"
	}

	return &Orchestrator{
		repo:       cfg.Repo,
		generator:  cfg.Generator,
		transcript: cfg.Transcript,
		compiler:   compiler,
		profiles:   cfg.Profiles,
		idGen:      cfg.IDGen,
		narrator:   narrator,
		state:      StateIdle,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// State returns the current lifecycle state
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Open enters the encounter feature for a conversation and reports whether
// a persisted snapshot can be resumed
func (o *Orchestrator) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionKey", input.SessionKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		return nil, errors.FailedPreconditionf("cannot open from state %s", o.state)
	}

	o.sessionKey = input.SessionKey
	o.hasSnapshot = false

	if _, err := o.repo.Load(ctx, encounterrepo.LoadInput{SessionKey: input.SessionKey}); err == nil {
		o.hasSnapshot = true
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for snapshot")
	}

	o.state = StateConfiguring
	o.enc = &entities.Encounter{ID: o.idGen.Generate()}
	o.log = gamelog.New()

	slog.InfoContext(ctx, "encounter opened",
		"session_key", input.SessionKey,
		"has_snapshot", o.hasSnapshot)

	return &OpenOutput{HasSnapshot: o.hasSnapshot}, nil
}

// Continue resumes active play from the persisted snapshot, loaded verbatim
func (o *Orchestrator) Continue(ctx context.Context, input *ContinueInput) (*ContinueOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfiguring {
		return nil, errors.FailedPreconditionf("cannot continue from state %s", o.state)
	}
	if !o.hasSnapshot {
		return nil, errors.FailedPrecondition("no snapshot to continue from")
	}

	out, err := o.repo.Load(ctx, encounterrepo.LoadInput{SessionKey: o.sessionKey})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load snapshot")
	}

	o.enc = out.Encounter
	o.log = gamelog.Restore(out.Encounter.DisplayLog, out.Encounter.EncounterLog)
	o.state = StateActive

	slog.InfoContext(ctx, "encounter resumed",
		"session_key", o.sessionKey,
		"encounter_id", o.enc.ID,
		"rounds", len(o.enc.EncounterLog))

	view := o.enc.Clone()
	return &ContinueOutput{Encounter: &view}, nil
}

// NewEncounter discards the persisted snapshot and pending lists and stays
// in configuration
func (o *Orchestrator) NewEncounter(ctx context.Context, input *NewEncounterInput) (*NewEncounterOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfiguring {
		return nil, errors.FailedPreconditionf("cannot start new encounter from state %s", o.state)
	}

	if o.hasSnapshot {
		if _, err := o.repo.Delete(ctx, encounterrepo.DeleteInput{SessionKey: o.sessionKey}); err != nil {
			return nil, errors.Wrap(err, "failed to discard snapshot")
		}
		o.hasSnapshot = false
	}

	o.enc = &entities.Encounter{ID: o.idGen.Generate()}
	o.log = gamelog.New()

	return &NewEncounterOutput{}, nil
}

// Configure stages narrative style and standing instructions for the
// upcoming initialization
func (o *Orchestrator) Configure(ctx context.Context, input *ConfigureInput) (*ConfigureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfiguring {
		return nil, errors.FailedPreconditionf("cannot configure from state %s", o.state)
	}

	if input.ProfileID != "" {
		selector, ok := o.profiles.(interface{ Select(id string) error })
		if !ok {
			return nil, errors.InvalidArgument("profile provider does not support switching profiles")
		}
		if err := selector.Select(input.ProfileID); err != nil {
			return nil, err
		}
	}

	o.pendingStyle = input.StyleNotes
	o.pendingInstructions = input.SpecialInstructions

	return &ConfigureOutput{}, nil
}

// Initialize runs the initialization round-trip and, on success, performs
// the one unconditional CombatStats assignment of the encounter's life
func (o *Orchestrator) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfiguring {
		return nil, errors.FailedPreconditionf("cannot initialize from state %s", o.state)
	}

	req, err := o.compiler.Init(prompt.InitInput{
		Context:    input.Context,
		StyleNotes: o.pendingStyle,
	})
	if err != nil {
		return nil, err
	}

	o.state = StateInitializing
	o.lastRequest = req

	return o.runInit(ctx, req)
}
