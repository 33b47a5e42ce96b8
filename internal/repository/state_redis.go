package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const DefaultStateKey = "tictactoe:state"

type redisState struct {
	client *redis.Client
	key    string
}

func NewRedisStateRepository(client *redis.Client, key string) StateRepository {
	if key == "" {
		key = DefaultStateKey
	}

	return &redisState{
		client: client,
		key:    key,
	}
}

func (that *redisState) Load(ctx context.Context) (string, error) {
	response, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrStateNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get state: %w", err)
	}

	return response, nil
}

func (that *redisState) Save(ctx context.Context, state string) error {
	if err := that.client.Set(ctx, that.key, state, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}

	return nil
}
