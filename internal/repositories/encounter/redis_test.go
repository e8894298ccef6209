package encounter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/pkg/clock"
	encounterrepo "github.com/riftline/encounter-engine/internal/repositories/encounter"
	"github.com/riftline/encounter-engine/internal/testutils"
)

const testSessionKey = "chat_42"

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    encounterrepo.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	repo, err := encounterrepo.NewRedis(&encounterrepo.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{Time: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func sampleEncounter() *entities.Encounter {
	return &entities.Encounter{
		ID:          "enc_1",
		Active:      true,
		Initialized: true,
		CombatStats: entities.CombatStats{
			Party: []entities.Entity{{
				Name:     "Hero",
				HP:       72,
				MaxHP:    100,
				IsPlayer: true,
				Attacks:  []entities.Attack{{Name: "Slash", Type: entities.AttackSingleTarget}},
				Items:    []string{"healing potion"},
				Statuses: []entities.Status{{Name: "poisoned", Emoji: "☠", Duration: 2}},
			}},
			Enemies: []entities.Entity{{
				Name:        "Goblin",
				HP:          5,
				MaxHP:       30,
				Sprite:      "goblin.png",
				Description: "small and mean",
				CustomBars:  []entities.CustomBar{{Name: "Rage", Current: 3, Max: 10, Color: "red"}},
			}},
			Environment:         "a torchlit cave",
			SpecialInstructions: "the goblin fights dirty",
			StyleNotes:          "grim, terse",
		},
		DisplayLog: []entities.LogEntry{{
			Message:    "The blade lands true.",
			Type:       entities.LogNarrative,
			Swipes:     []string{"The blade lands true.", "Steel finds its mark."},
			SwipeIndex: 0,
		}},
		EncounterLog: []entities.EncounterLogEntry{{
			Action:    "Hero attacks Goblin with Slash",
			Narrative: "The blade lands true.",
		}},
		PendingEnemies: []entities.Entity{{Name: "Goblin Shaman", HP: 25, MaxHP: 25}},
		PendingParty:   []entities.Entity{},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad_Roundtrip() {
	enc := sampleEncounter()

	saved, err := s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey, Encounter: enc})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Encounter.SavedAt)

	loaded, err := s.repo.Load(s.ctx, encounterrepo.LoadInput{SessionKey: testSessionKey})
	s.Require().NoError(err)

	// The loaded aggregate is deep-equal to the saved one.
	s.Equal(saved.Encounter, loaded.Encounter)
	s.Equal(enc.CombatStats, loaded.Encounter.CombatStats)
	s.Equal(enc.DisplayLog, loaded.Encounter.DisplayLog)
	s.Equal(enc.PendingEnemies, loaded.Encounter.PendingEnemies)
}

func (s *RedisRepositoryTestSuite) TestSave_DoesNotAliasInput() {
	enc := sampleEncounter()
	_, err := s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey, Encounter: enc})
	s.Require().NoError(err)

	// Mutating the caller's aggregate never changes the stored snapshot.
	enc.CombatStats.Party[0].HP = 1

	loaded, err := s.repo.Load(s.ctx, encounterrepo.LoadInput{SessionKey: testSessionKey})
	s.Require().NoError(err)
	s.Equal(72, loaded.Encounter.CombatStats.Party[0].HP)
}

func (s *RedisRepositoryTestSuite) TestSave_Overwrites() {
	enc := sampleEncounter()
	_, err := s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey, Encounter: enc})
	s.Require().NoError(err)

	enc.CombatStats.Enemies[0].HP = 0
	_, err = s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey, Encounter: enc})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, encounterrepo.LoadInput{SessionKey: testSessionKey})
	s.Require().NoError(err)
	s.Equal(0, loaded.Encounter.CombatStats.Enemies[0].HP)
}

func (s *RedisRepositoryTestSuite) TestLoad_NotFound() {
	_, err := s.repo.Load(s.ctx, encounterrepo.LoadInput{SessionKey: "nothing_here"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	enc := sampleEncounter()
	_, err := s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey, Encounter: enc})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, encounterrepo.DeleteInput{SessionKey: testSessionKey})
	s.Require().NoError(err)

	_, err = s.repo.Load(s.ctx, encounterrepo.LoadInput{SessionKey: testSessionKey})
	s.True(errors.IsNotFound(err))

	// Deleting again is fine.
	_, err = s.repo.Delete(s.ctx, encounterrepo.DeleteInput{SessionKey: testSessionKey})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: "", Encounter: sampleEncounter()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, encounterrepo.SaveInput{SessionKey: testSessionKey})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Load(s.ctx, encounterrepo.LoadInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
