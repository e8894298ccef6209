// Package prompt compiles encounter state into the three generation request
// payloads: initialization, action resolution, and summary. Compilation is
// pure; the same state and inputs always produce the same payload, which is
// what makes verbatim retry possible.
package prompt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/profile"
)

// SummarySentinel prefixes every summary response so stray prose before the
// tag can be discarded.
const SummarySentinel = "[ENCOUNTER SUMMARY]"

//go:embed templates/init.tmpl
var initTemplate string

//go:embed templates/action.tmpl
var actionTemplate string

//go:embed templates/summary.tmpl
var summaryTemplate string

var templates = template.Must(
	template.New("init").Funcs(template.FuncMap{"upper": strings.ToUpper}).Parse(initTemplate),
)

func init() {
	template.Must(templates.New("action").Parse(actionTemplate))
	template.Must(templates.New("summary").Parse(summaryTemplate))
}

// RequestKind identifies which round-trip a request belongs to
type RequestKind string

// Request kinds
const (
	KindInit    RequestKind = "init"
	KindAction  RequestKind = "action"
	KindSummary RequestKind = "summary"
)

// Request is a fully rendered generation payload. The lifecycle controller
// retains the last Request verbatim so a retry is byte-identical.
type Request struct {
	Kind RequestKind
	Text string
	// Action is the player action that produced an action request, kept so
	// the encounter log can record it and regeneration can replay it.
	Action string
}

// Compiler renders requests against the active encounter profile
type Compiler struct {
	profiles profile.Provider
}

// New creates a compiler bound to a profile provider
func New(profiles profile.Provider) (*Compiler, error) {
	if profiles == nil {
		return nil, errors.InvalidArgument("profile provider is required")
	}
	return &Compiler{profiles: profiles}, nil
}

// InitInput carries the inputs for an initialization request
type InitInput struct {
	// Context is the host-supplied narrative context the party and enemies
	// are inferred from.
	Context    string
	StyleNotes string
}

// Init compiles the initialization request
func (c *Compiler) Init(input InitInput) (*Request, error) {
	data := struct {
		Profile    profile.Profile
		Context    string
		StyleNotes string
	}{
		Profile:    c.profiles.Active(),
		Context:    input.Context,
		StyleNotes: input.StyleNotes,
	}

	text, err := render("init", data)
	if err != nil {
		return nil, err
	}
	return &Request{Kind: KindInit, Text: text}, nil
}

// ActionInput carries the inputs for an action-resolution request
type ActionInput struct {
	Stats  *entities.CombatStats
	Action string
	// Guidance is optional one-shot steering for this round only.
	Guidance string
}

// Action compiles an action-resolution request against current combat state
func (c *Compiler) Action(input ActionInput) (*Request, error) {
	if input.Stats == nil {
		return nil, errors.InvalidArgument("combat stats are required")
	}
	if strings.TrimSpace(input.Action) == "" {
		return nil, errors.InvalidArgument("action text is required")
	}

	statsJSON, err := json.MarshalIndent(input.Stats, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize combat stats")
	}

	data := struct {
		Profile             profile.Profile
		StatsJSON           string
		Action              string
		Guidance            string
		SpecialInstructions string
	}{
		Profile:             c.profiles.Active(),
		StatsJSON:           string(statsJSON),
		Action:              input.Action,
		Guidance:            input.Guidance,
		SpecialInstructions: input.Stats.SpecialInstructions,
	}

	text, err := render("action", data)
	if err != nil {
		return nil, err
	}
	return &Request{Kind: KindAction, Text: text, Action: input.Action}, nil
}

// SummaryInput carries the inputs for a summary request
type SummaryInput struct {
	Rounds     []entities.EncounterLogEntry
	Result     string
	StyleNotes string
}

// Summary compiles the closing summary request from the encounter log
func (c *Compiler) Summary(input SummaryInput) (*Request, error) {
	result := strings.TrimSpace(input.Result)
	if result == "" {
		result = "the encounter has concluded"
	}

	data := struct {
		Profile    profile.Profile
		Rounds     []entities.EncounterLogEntry
		Result     string
		StyleNotes string
		Sentinel   string
	}{
		Profile:    c.profiles.Active(),
		Rounds:     input.Rounds,
		Result:     result,
		StyleNotes: input.StyleNotes,
		Sentinel:   SummarySentinel,
	}

	text, err := render("summary", data)
	if err != nil {
		return nil, err
	}
	return &Request{Kind: KindSummary, Text: text}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s prompt", name)
	}
	return buf.String(), nil
}
