package knowledge

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const answerCachePrefix = "kb:answer:"

// AnswerCache memoizes generated answers in Redis, keyed by the
// normalized question.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnswerCache(client *redis.Client, ttl time.Duration) *AnswerCache {
	return &AnswerCache{client: client, ttl: ttl}
}

func (c *AnswerCache) Get(ctx context.Context, question string) (string, bool) {
	answer, err := c.client.Get(ctx, answerKey(question)).Result()
	if err != nil {
		return "", false
	}
	return answer, true
}

func (c *AnswerCache) Set(ctx context.Context, question, answer string) {
	// Best-effort; a cache write failure is invisible to the caller.
	c.client.Set(ctx, answerKey(question), answer, c.ttl)
}

func answerKey(question string) string {
	return answerCachePrefix + strings.ToLower(strings.TrimSpace(question))
}
