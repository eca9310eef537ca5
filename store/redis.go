// Copyright (c) Microsoft. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	al "github.com/microsoft/agentlab/agentlab"
)

// RedisStore is a [agentlab.MessageStore] keeping a session's messages in a
// Redis list, one JSON entry per message. A shared Redis lets multiple
// processes serve the same conversation.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ al.MessageStore = (*RedisStore)(nil)

// RedisOption configures a [RedisStore].
type RedisOption func(*RedisStore)

// WithTTL expires the session key after d of inactivity. Every append
// refreshes the expiry. Zero (the default) means no expiry.
func WithTTL(d time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = d }
}

// NewRedisStore creates a store for sessionID on the given Redis client.
func NewRedisStore(client *redis.Client, sessionID string, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		key:    "agentlab:session:" + sessionID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *RedisStore) ListMessages(ctx context.Context) ([]al.Message, error) {
	entries, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list messages from redis: %w", err)
	}

	msgs := make([]al.Message, 0, len(entries))
	for _, raw := range entries {
		var msg al.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("parse stored message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (s *RedisStore) AddMessages(ctx context.Context, msgs []al.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	entries := make([]any, len(msgs))
	for i := range msgs {
		raw, err := json.Marshal(msgs[i])
		if err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
		entries[i] = string(raw)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.key, entries...)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append messages to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Serialize() (map[string]any, error) {
	msgs, err := s.ListMessages(context.Background())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"key":      s.key,
		"messages": msgs,
	}, nil
}
