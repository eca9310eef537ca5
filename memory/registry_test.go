// Copyright (c) Microsoft. All rights reserved.

package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/memory"
)

func TestSessionRegistry_GetOrCreate(t *testing.T) {
	reg := memory.NewSessionRegistry(10, nil)

	a := reg.GetOrCreate("math_lesson")
	b := reg.GetOrCreate("math_lesson")
	c := reg.GetOrCreate("science_lesson")

	assert.Same(t, a, b, "same id must return the same store")
	assert.NotSame(t, a, c, "distinct ids must be isolated")
	assert.Equal(t, 2, reg.Len())
}

func TestSessionRegistry_IsolatedHistories(t *testing.T) {
	reg := memory.NewSessionRegistry(10, nil)
	ctx := context.Background()

	require.NoError(t, reg.GetOrCreate("a").AddMessages(ctx, []al.Message{al.NewUserMessage("only in a")}))

	msgs, err := reg.GetOrCreate("b").ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSessionRegistry_LRUEviction(t *testing.T) {
	reg := memory.NewSessionRegistry(2, nil)
	ctx := context.Background()

	first := reg.GetOrCreate("first")
	require.NoError(t, first.AddMessages(ctx, []al.Message{al.NewUserMessage("hello")}))
	reg.GetOrCreate("second")

	// Touch "first" so "second" becomes least recently used.
	reg.GetOrCreate("first")
	reg.GetOrCreate("third")

	assert.Equal(t, 2, reg.Len())

	// "first" survived eviction with its history.
	msgs, err := reg.GetOrCreate("first").ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	// "second" was evicted; recreating it yields a fresh, empty store.
	msgs, err = reg.GetOrCreate("second").ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSessionRegistry_Delete(t *testing.T) {
	reg := memory.NewSessionRegistry(10, nil)
	reg.GetOrCreate("gone")
	reg.Delete("gone")
	assert.Equal(t, 0, reg.Len())
	reg.Delete("never existed")
}

func TestSessionRegistry_Session(t *testing.T) {
	reg := memory.NewSessionRegistry(10, nil)

	s := reg.Session("user_42")
	assert.Equal(t, "user_42", s.ID())
	require.NotNil(t, s.Store())

	// A session handle for the same id shares the same store.
	ctx := context.Background()
	require.NoError(t, s.Store().AddMessages(ctx, []al.Message{al.NewUserMessage("hi")}))
	msgs, err := reg.Session("user_42").Store().ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSessionRegistry_ConcurrentAccess(t *testing.T) {
	reg := memory.NewSessionRegistry(50, nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.GetOrCreate(fmt.Sprintf("session-%d", i%20))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Len())
}
