package redis_repository

import (
	"context"
	"fmt"

	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type DeleteSessionRepository struct {
	Client *redis.Client
}

func NewDeleteSessionRepository(client *redis.Client) *DeleteSessionRepository {
	return &DeleteSessionRepository{
		Client: client,
	}
}

func (r *DeleteSessionRepository) Delete(sessionId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Del(ctx, sessionKey(sessionId)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionId, err)
	}

	return nil
}
