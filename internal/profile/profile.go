// Package profile supplies the semantic labels that flavor an encounter:
// what the resource bar means, what an "action" is called, and how the model
// should interpret attacks and statuses for the active flavor.
package profile

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/riftline/encounter-engine/internal/errors"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=profilemock github.com/riftline/encounter-engine/internal/profile Provider

// Interpretation holds the prompt-facing explanation strings for a profile
type Interpretation struct {
	Resource    string `yaml:"resource" json:"resource"`
	Attacks     string `yaml:"attacks" json:"attacks"`
	Statuses    string `yaml:"statuses" json:"statuses"`
	Environment string `yaml:"environment" json:"environment"`
}

// Profile describes one encounter flavor
type Profile struct {
	ID             string         `yaml:"id" json:"id"`
	EncounterType  string         `yaml:"encounterType" json:"encounterType"`
	ResourceLabel  string         `yaml:"resourceLabel" json:"resourceLabel"`
	ActionLabel    string         `yaml:"actionLabel" json:"actionLabel"`
	Interpretation Interpretation `yaml:"interpretation" json:"interpretation"`
}

// Validate checks the profile has the fields the prompt compiler needs
func (p *Profile) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", p.ID, vb)
	errors.ValidateRequired("EncounterType", p.EncounterType, vb)
	errors.ValidateRequired("ResourceLabel", p.ResourceLabel, vb)
	errors.ValidateRequired("ActionLabel", p.ActionLabel, vb)
	return vb.Build()
}

// Provider is a pure lookup for the active encounter profile
type Provider interface {
	Active() Profile
}

// Combat is the default profile: a straight fight with hit points
var Combat = Profile{
	ID:            "combat",
	EncounterType: "combat",
	ResourceLabel: "HP",
	ActionLabel:   "attack",
	Interpretation: Interpretation{
		Resource:    "hit points; at 0 the combatant is defeated",
		Attacks:     "physical or magical moves a combatant can perform",
		Statuses:    "temporary conditions such as poisoned, stunned, or shielded",
		Environment: "the physical battlefield and anything tactically relevant in it",
	},
}

// Social is a non-violent flavor: a duel of words where HP is composure
var Social = Profile{
	ID:            "social",
	EncounterType: "social duel",
	ResourceLabel: "Composure",
	ActionLabel:   "argument",
	Interpretation: Interpretation{
		Resource:    "composure; at 0 the participant concedes the exchange",
		Attacks:     "rhetorical moves, barbs, and appeals a participant can make",
		Statuses:    "emotional states such as flustered, confident, or suspicious",
		Environment: "the social setting, audience, and stakes of the exchange",
	},
}

// Static is a provider with a fixed profile
type Static struct {
	Profile Profile
}

// NewStatic creates a provider that always returns the given profile
func NewStatic(p Profile) *Static {
	return &Static{Profile: p}
}

// Active returns the fixed profile
func (s *Static) Active() Profile {
	return s.Profile
}

// Selector is a provider that can switch between registered profiles.
// Selection applies to the next encounter; the compiler reads Active per
// request, so switching mid-encounter is prevented at the lifecycle layer,
// not here.
type Selector struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	active   string
}

// NewSelector creates a selector over the given profiles. The first profile
// starts active.
func NewSelector(profiles ...Profile) (*Selector, error) {
	if len(profiles) == 0 {
		return nil, errors.InvalidArgument("at least one profile is required")
	}

	s := &Selector{profiles: make(map[string]Profile, len(profiles))}
	for i := range profiles {
		p := profiles[i]
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid profile %q", p.ID)
		}
		s.profiles[p.ID] = p
	}
	s.active = profiles[0].ID
	return s, nil
}

// Active returns the currently selected profile
func (s *Selector) Active() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[s.active]
}

// Select switches the active profile
func (s *Selector) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return errors.NotFoundf("unknown profile %q", id)
	}
	s.active = id
	return nil
}

// fileDoc is the on-disk shape of a profile file
type fileDoc struct {
	Active   string    `yaml:"active"`
	Profiles []Profile `yaml:"profiles"`
}

// File is a provider backed by a yaml document. The file is read once at
// construction; the active profile does not change mid-encounter.
type File struct {
	active Profile
}

// LoadFile reads a yaml profile document and resolves its active profile
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile file %s", path)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse profile file %s", path)
	}

	if doc.Active == "" {
		return nil, errors.InvalidArgument("profile file has no active profile key")
	}

	for i := range doc.Profiles {
		p := doc.Profiles[i]
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid profile %q", p.ID)
		}
		if p.ID == doc.Active {
			return &File{active: p}, nil
		}
	}

	return nil, errors.NotFoundf("active profile %q not present in %s", doc.Active, path)
}

// Active returns the resolved profile
func (f *File) Active() Profile {
	return f.active
}
