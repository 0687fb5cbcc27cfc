// File: services/intelligence/historyStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"voyago/models"

	"github.com/go-redis/redis/v8"
)

const historyPrefix = "chat:history:"

// HistoryStore keeps the per-session chat transcript the UI renders. It is
// display state only; routing looks at each request in isolation.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, msgs ...models.ChatMessage) error
	Recent(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

type RedisHistoryStore struct {
	client   *redis.Client
	ttl      time.Duration
	maxTurns int
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration, maxTurns int) *RedisHistoryStore {
	if maxTurns <= 0 {
		maxTurns = 50
	}
	return &RedisHistoryStore{client: client, ttl: ttl, maxTurns: maxTurns}
}

// Append pushes messages onto the session transcript, trims it to the bound,
// and refreshes the TTL.
func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, msgs ...models.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	key := historyPrefix + sessionID

	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, b)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent returns the transcript oldest-first. A missing session is an empty
// transcript, not an error.
func (s *RedisHistoryStore) Recent(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := historyPrefix + sessionID
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	msgs := make([]models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	key := historyPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
