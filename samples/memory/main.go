// Copyright (c) Microsoft. All rights reserved.

// Command memory walks through conversation-memory strategies: fixed-window
// trimming, model-driven summarization, a bounded session registry, and a
// JSON checkpoint file that survives restarts.
//
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run .
//
// Re-run the command to watch the checkpointed conversation resume.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/memory"
	"github.com/microsoft/agentlab/openai"
	"github.com/microsoft/agentlab/store"
)

const checkpointPath = "checkpoint.json"

func main() {
	_ = godotenv.Load()
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY to run this sample.")
		os.Exit(1)
	}
	client := openai.New(apiKey, openai.WithModel("gpt-4o-mini"))
	ctx := context.Background()

	// Part 1: trimming keeps long chats affordable. The model never sees more
	// than the system prompt plus the last four messages, while the session
	// store keeps everything.
	trimmed := al.NewAgent(client,
		al.WithName("trimming_tutor"),
		al.WithInstructions("You are a patient math tutor. Keep answers short."),
		al.WithChatMiddleware(memory.TrimmingMiddleware()),
	)

	fmt.Println("--- Trimming ---")
	session := trimmed.NewSession()
	for _, q := range []string{
		"What is 15 * 24?",
		"Divide that by 6.",
		"Now add 100.",
		"Subtract 7.",
		"What was my first question?", // trimmed away by now
	} {
		answer, err := trimmed.RunText(ctx, q, al.WithSession(session))
		if err != nil {
			log.Fatalf("trimming agent: %v", err)
		}
		fmt.Printf("You: %s\nTutor: %s\n", q, answer)
	}

	// Part 2: summarization compresses the middle of the conversation into a
	// single message instead of dropping it.
	summarizing := al.NewAgent(client,
		al.WithName("summarizing_tutor"),
		al.WithInstructions("You are a patient math tutor. Keep answers short."),
		al.WithChatMiddleware(memory.SummarizationMiddleware(client, &memory.SummarizeConfig{
			Threshold:  8,
			KeepRecent: 4,
			ModelID:    "gpt-4o-mini",
		})),
	)

	fmt.Println("\n--- Summarization ---")
	session = summarizing.NewSession()
	for _, q := range []string{
		"My name is Jordan and I'm studying fractions.",
		"What is 1/2 + 1/3?",
		"And 2/5 + 3/10?",
		"Great. What's my name and what am I studying?",
	} {
		answer, err := summarizing.RunText(ctx, q, al.WithSession(session))
		if err != nil {
			log.Fatalf("summarizing agent: %v", err)
		}
		fmt.Printf("You: %s\nTutor: %s\n", q, answer)
	}

	// Part 3: a bounded registry hands out isolated per-user sessions.
	fmt.Println("\n--- Session registry ---")
	registry := memory.NewSessionRegistry(100, nil)
	tutor := al.NewAgent(client,
		al.WithName("tutor"),
		al.WithInstructions("You are a tutor. Keep answers short."),
	)
	for _, turn := range []struct{ user, text string }{
		{"alice", "Remember: my favorite number is 7."},
		{"bob", "Remember: my favorite number is 12."},
		{"alice", "What's my favorite number?"},
	} {
		answer, err := tutor.RunText(ctx, turn.text, al.WithSession(registry.Session(turn.user)))
		if err != nil {
			log.Fatalf("registry agent: %v", err)
		}
		fmt.Printf("%s: %s\nTutor: %s\n", turn.user, turn.text, answer)
	}

	// Part 4: a file-backed store checkpoints the conversation to disk.
	fmt.Println("\n--- Checkpointing ---")
	checkpoint := store.NewFileStore(checkpointPath)
	if history, err := checkpoint.ListMessages(ctx); err == nil && len(history) > 0 {
		fmt.Printf("Resuming conversation with %d checkpointed messages.\n", len(history))
	}

	persistent := al.NewAgent(client,
		al.WithName("persistent_tutor"),
		al.WithInstructions("You are a tutor with perfect recall of this conversation."),
	)
	persisted := al.NewSession(al.WithSessionStore(checkpoint))

	answer, err := persistent.RunText(ctx, "Add 10 to the last result we computed, or start at 0.", al.WithSession(persisted))
	if err != nil {
		log.Fatalf("persistent agent: %v", err)
	}
	fmt.Printf("Tutor: %s\n", answer)
	fmt.Printf("Conversation checkpointed to %s. Run again to continue it.\n", checkpointPath)
}
