package redis_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

func sessionKey(sessionId string) string {
	return sessionKeyPrefix + sessionId
}

type CreateSessionRepository struct {
	Client *redis.Client
}

func NewCreateSessionRepository(client *redis.Client) *CreateSessionRepository {
	return &CreateSessionRepository{
		Client: client,
	}
}

func (r *CreateSessionRepository) Create(session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.Id)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Set(ctx, sessionKey(session.Id), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}
