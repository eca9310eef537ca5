// Copyright (c) Microsoft. All rights reserved.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/store"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisStore_AppendAndList(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()

	s := store.NewRedisStore(client, "lesson-1")
	require.NoError(t, s.AddMessages(ctx, []al.Message{
		al.NewUserMessage("hello"),
		al.NewAssistantMessage("hi!"),
	}))

	msgs, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text())
	assert.Equal(t, al.RoleAssistant, msgs[1].Role)
}

func TestRedisStore_SessionsAreIsolated(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()

	a := store.NewRedisStore(client, "session-a")
	b := store.NewRedisStore(client, "session-b")

	require.NoError(t, a.AddMessages(ctx, []al.Message{al.NewUserMessage("only in a")}))

	msgs, err := b.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestRedisStore_EmptyKeyIsEmptyConversation(t *testing.T) {
	client := newRedisClient(t)

	s := store.NewRedisStore(client, "never-used")
	msgs, err := s.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestRedisStore_TTLExpiresSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	s := store.NewRedisStore(client, "ephemeral", store.WithTTL(time.Minute))
	require.NoError(t, s.AddMessages(ctx, []al.Message{al.NewUserMessage("short-lived")}))

	mr.FastForward(2 * time.Minute)

	msgs, err := s.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestRedisStore_PreservesToolContents(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()

	s := store.NewRedisStore(client, "tools")
	require.NoError(t, s.AddMessages(ctx, []al.Message{
		al.NewToolMessage("call-9", "Server at 192.168.1.1 is ONLINE."),
	}))

	msgs, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	fr, ok := msgs[0].Contents[0].(*al.FunctionResultContent)
	require.True(t, ok)
	assert.Equal(t, "call-9", fr.CallID)
	assert.Equal(t, "Server at 192.168.1.1 is ONLINE.", fr.Result)
}
