// Copyright (c) Microsoft. All rights reserved.

// Package openai provides a [Client] backed by the OpenAI Chat Completions
// and Embeddings APIs. It satisfies [agentlab.ChatClient] for agents and
// [vectorstore.Embedder]-shaped embedding needs via [Client.Embed].
//
// Create a client with [New] and pass it to [agentlab.NewAgent]:
//
//	client := openai.New(apiKey, openai.WithModel("gpt-4o"))
//	agent  := agentlab.NewAgent(client)
//
// Azure OpenAI endpoints work through [WithBaseURL] plus either an
// "api-key" header ([WithHeaders]) or Azure AD tokens
// ([WithAzureCredential]).
package openai
