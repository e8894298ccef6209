package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/profile"
)

const profileYAML = `
active: social
profiles:
  - id: combat
    encounterType: combat
    resourceLabel: HP
    actionLabel: attack
    interpretation:
      resource: hit points
      attacks: moves
      statuses: conditions
      environment: battlefield
  - id: social
    encounterType: social duel
    resourceLabel: Composure
    actionLabel: argument
    interpretation:
      resource: composure
      attacks: rhetorical moves
      statuses: moods
      environment: setting
`

func writeProfileFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	p, err := profile.LoadFile(writeProfileFile(t, profileYAML))
	require.NoError(t, err)

	active := p.Active()
	assert.Equal(t, "social", active.ID)
	assert.Equal(t, "Composure", active.ResourceLabel)
	assert.Equal(t, "composure", active.Interpretation.Resource)
}

func TestLoadFile_ActiveMissing(t *testing.T) {
	doc := `
active: mystery
profiles:
  - id: combat
    encounterType: combat
    resourceLabel: HP
    actionLabel: attack
`
	_, err := profile.LoadFile(writeProfileFile(t, doc))
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadFile_InvalidProfile(t *testing.T) {
	doc := `
active: combat
profiles:
  - id: combat
    resourceLabel: HP
`
	_, err := profile.LoadFile(writeProfileFile(t, doc))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSelector(t *testing.T) {
	s, err := profile.NewSelector(profile.Combat, profile.Social)
	require.NoError(t, err)
	assert.Equal(t, "combat", s.Active().ID)

	require.NoError(t, s.Select("social"))
	assert.Equal(t, "social", s.Active().ID)

	err = s.Select("mystery")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "social", s.Active().ID)

	_, err = profile.NewSelector()
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStatic(t *testing.T) {
	p := profile.NewStatic(profile.Combat)
	assert.Equal(t, "combat", p.Active().ID)
	assert.NoError(t, profile.Combat.Validate())
	assert.NoError(t, profile.Social.Validate())
}
