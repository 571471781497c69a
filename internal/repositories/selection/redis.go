package selection

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/midgardgame/character-api/internal/errors"
	redisclient "github.com/midgardgame/character-api/internal/redis"
)

const selectionKeyPrefix = "selection:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis selection repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed selection repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func selectionKey(owner string) string {
	return selectionKeyPrefix + strings.ToLower(owner)
}

func (r *redisRepository) GetSelection(ctx context.Context, input GetSelectionInput) (*GetSelectionOutput, error) {
	if input.OwnerUsername == "" {
		return nil, errors.InvalidArgument("owner username cannot be empty")
	}

	name, err := r.client.Get(ctx, selectionKey(input.OwnerUsername)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no selected character for %s", input.OwnerUsername)
		}
		return nil, errors.Wrapf(err, "failed to get selection for %s", input.OwnerUsername)
	}

	return &GetSelectionOutput{CharacterName: name}, nil
}

func (r *redisRepository) SetSelection(ctx context.Context, input SetSelectionInput) (*SetSelectionOutput, error) {
	if input.OwnerUsername == "" {
		return nil, errors.InvalidArgument("owner username cannot be empty")
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	// No TTL: a selection lives until overwritten or cleared.
	err := r.client.Set(ctx, selectionKey(input.OwnerUsername), strings.ToLower(input.CharacterName), 0).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set selection for %s", input.OwnerUsername)
	}

	return &SetSelectionOutput{}, nil
}

func (r *redisRepository) ClearSelection(ctx context.Context, input ClearSelectionInput) (*ClearSelectionOutput, error) {
	if input.OwnerUsername == "" {
		return nil, errors.InvalidArgument("owner username cannot be empty")
	}

	if err := r.client.Del(ctx, selectionKey(input.OwnerUsername)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear selection for %s", input.OwnerUsername)
	}

	return &ClearSelectionOutput{}, nil
}
