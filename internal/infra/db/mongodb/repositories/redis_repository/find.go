package redis_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type FindSessionRepository struct {
	Client *redis.Client
}

func NewFindSessionRepository(client *redis.Client) *FindSessionRepository {
	return &FindSessionRepository{
		Client: client,
	}
}

func (r *FindSessionRepository) Find(sessionId string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	data, err := r.Client.Get(ctx, sessionKey(sessionId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session %s: %w", sessionId, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionId, err)
	}

	return &session, nil
}
