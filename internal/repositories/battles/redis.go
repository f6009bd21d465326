package battles

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

const (
	// Key pattern: battle:{id}
	keyPrefix = "battle:"

	// DefaultTTL expires abandoned battles. Every update refreshes it.
	DefaultTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed battle repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func buildKey(id string) string {
	return keyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	record := &Record{Battle: input.Battle, CreatedAt: now, UpdatedAt: now}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle")
	}

	created, err := r.client.SetNX(ctx, buildKey(input.Battle.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store battle in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists(errDuplicated).WithMeta("battle_id", input.Battle.ID)
	}

	slog.DebugContext(ctx, "battle created", "battle_id", input.Battle.ID)
	return &CreateOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	record, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*Record, error) {
	raw, err := r.client.Get(ctx, buildKey(id)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound(errNotFound).WithMeta("battle_id", id)
		}
		return nil, errors.Wrap(err, "failed to get battle from Redis")
	}

	record, err := DecodeRecord(raw)
	if err != nil {
		slog.ErrorContext(ctx, "stored battle is corrupt", "battle_id", id, "error", err)
		return nil, err
	}
	return record, nil
}

func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.Battle.ID)
	if err != nil {
		return nil, err
	}

	record := &Record{Battle: input.Battle, CreatedAt: existing.CreatedAt, UpdatedAt: r.clock.Now()}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle")
	}

	updated, err := r.client.SetXX(ctx, buildKey(input.Battle.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update battle in Redis")
	}
	if !updated {
		// expired between the load and the write
		return nil, errors.NotFound(errNotFound).WithMeta("battle_id", input.Battle.ID)
	}
	return &UpdateOutput{Record: record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete battle from Redis")
	}
	if n == 0 {
		return nil, errors.NotFound(errNotFound).WithMeta("battle_id", input.ID)
	}
	return &DeleteOutput{}, nil
}
