// Copyright (c) Microsoft. All rights reserved.

// Package store provides persistent [agentlab.MessageStore] implementations:
// a JSON checkpoint file per session, a SQLite table, and a Redis list. Any
// of them plugs into an agent through a message store factory, so
// conversations survive process restarts:
//
//	agent := agentlab.NewAgent(client,
//	    agentlab.WithMessageStoreFactory(func() agentlab.MessageStore {
//	        return store.NewFileStore("checkpoint.json")
//	    }),
//	)
package store
