package encounter

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/pkg/clock"
	redisclient "github.com/riftline/encounter-engine/internal/redis"
)

const (
	snapshotKeyPrefix = "encounter:"

	errSessionKeyEmpty = "session key cannot be empty"
	errEncounterNil    = "encounter cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis encounter repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed encounter repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}
	if input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}

	snapshot := input.Encounter.Clone()
	snapshot.SavedAt = r.clock.Now().UTC()

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal encounter snapshot")
	}

	key := snapshotKeyPrefix + input.SessionKey
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save encounter snapshot")
	}

	slog.DebugContext(ctx, "saved encounter snapshot",
		"session_key", input.SessionKey,
		"encounter_id", snapshot.ID,
		"rounds", len(snapshot.EncounterLog))

	return &SaveOutput{Encounter: &snapshot}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}

	key := snapshotKeyPrefix + input.SessionKey
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no snapshot for session %s", input.SessionKey)
		}
		return nil, errors.Wrapf(err, "failed to load encounter snapshot")
	}

	var enc entities.Encounter
	if err := json.Unmarshal([]byte(result), &enc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter snapshot")
	}

	return &LoadOutput{Encounter: &enc}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionKey == "" {
		return nil, errors.InvalidArgument(errSessionKeyEmpty)
	}

	key := snapshotKeyPrefix + input.SessionKey
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter snapshot")
	}

	slog.DebugContext(ctx, "deleted encounter snapshot", "session_key", input.SessionKey)

	return &DeleteOutput{}, nil
}
