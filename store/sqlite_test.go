// Copyright (c) Microsoft. All rights reserved.

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/store"
)

func TestSQLiteStore_AppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	s, err := store.OpenSQLite(path, "lesson-1")
	require.NoError(t, err)
	defer s.Close()

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

func TestSQLiteStore_SessionsAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	a, err := store.OpenSQLite(path, "session-a")
	require.NoError(t, err)
	defer a.Close()
	b := a.ForSession("session-b")

	require.NoError(t, a.AddMessages(ctx, []al.Message{al.NewUserMessage("only in a")}))

	msgs, err := b.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	msgs, err = a.ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSQLiteStore_OrderIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	s, err := store.OpenSQLite(path, "ordered")
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddMessages(ctx, []al.Message{
			al.NewUserMessage(string(rune('a' + i))),
		}))
	}

	msgs, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, string(rune('a'+i)), msgs[i].Text())
	}
}

func TestSQLiteStore_GeneratesSessionID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	s, err := store.OpenSQLite(path, "")
	require.NoError(t, err)
	defer s.Close()
	assert.NotEmpty(t, s.SessionID())
}
