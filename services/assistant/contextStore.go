// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"support-assistant/models"

	"github.com/go-redis/redis/v8"
)

const assistantContextPrefix = "assistant:ctx:"

// RedisContextStore keeps short-lived conversation state per requester.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, requesterID string) (*models.AssistantContext, error) {
	key := assistantContextPrefix + requesterID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aiCtx models.AssistantContext
	if err := json.Unmarshal([]byte(data), &aiCtx); err != nil {
		return nil, err
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, requesterID string, aiCtx *models.AssistantContext) error {
	key := assistantContextPrefix + requesterID
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, requesterID string) error {
	key := assistantContextPrefix + requesterID
	return s.client.Del(ctx, key).Err()
}
