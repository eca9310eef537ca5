// Copyright (c) Microsoft. All rights reserved.

package memory

import (
	"container/list"
	"sync"

	al "github.com/microsoft/agentlab/agentlab"
)

// DefaultRegistryCapacity bounds a [SessionRegistry] created with capacity <= 0.
const DefaultRegistryCapacity = 1000

// SessionRegistry maps session ids to message stores. It is safe for
// concurrent use and bounded: when the registry is full, the least recently
// used session's store is evicted. Evicted in-memory history is gone; use a
// persistent store factory if sessions must survive eviction.
type SessionRegistry struct {
	mu       sync.Mutex
	capacity int
	factory  func() al.MessageStore
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type registryEntry struct {
	id    string
	store al.MessageStore
}

// NewSessionRegistry creates a registry holding at most capacity sessions.
// The factory creates the store for a new session id; a nil factory means
// [agentlab.NewInMemoryStore].
func NewSessionRegistry(capacity int, factory func() al.MessageStore) *SessionRegistry {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}
	if factory == nil {
		factory = func() al.MessageStore { return al.NewInMemoryStore() }
	}
	return &SessionRegistry{
		capacity: capacity,
		factory:  factory,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// GetOrCreate returns the store registered for id, creating it on first use.
// Repeated calls with the same id return the same store; distinct ids get
// isolated stores.
func (r *SessionRegistry) GetOrCreate(id string) al.MessageStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.entries[id]; ok {
		r.order.MoveToFront(el)
		return el.Value.(*registryEntry).store
	}

	if r.order.Len() >= r.capacity {
		oldest := r.order.Back()
		if oldest != nil {
			r.order.Remove(oldest)
			delete(r.entries, oldest.Value.(*registryEntry).id)
		}
	}

	store := r.factory()
	r.entries[id] = r.order.PushFront(&registryEntry{id: id, store: store})
	return store
}

// Session returns an [agentlab.Session] bound to the registry's store for id,
// so callers can pass it straight to [agentlab.Agent.Run].
func (r *SessionRegistry) Session(id string) *al.Session {
	return al.NewSession(
		al.WithSessionID(id),
		al.WithSessionStore(r.GetOrCreate(id)),
	)
}

// Delete removes the session with the given id, if present.
func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.entries[id]; ok {
		r.order.Remove(el)
		delete(r.entries, id)
	}
}

// Len reports how many sessions are currently registered.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}
