// Copyright (c) Microsoft. All rights reserved.

// Command chat is a multi-turn cooking assistant with tool use, tool error
// recovery, policy filtering, and complexity-based model routing.
//
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run .
//
// Type 'quit' to exit. Set DEBUG=1 to see which model each turn routed to,
// and CHAT_USER_TYPE=admin to chat with full permissions (default: guest).
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/openai"
	"github.com/microsoft/agentlab/policy"
	"github.com/microsoft/agentlab/tools"
)

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

	// Per-user permissions are injected into the system prompt on every turn.
	userType := os.Getenv("CHAT_USER_TYPE")
	if userType == "" {
		userType = "guest"
	}

	agent := al.NewAgent(client,
		al.WithName("cooking_assistant"),
		al.WithInstructions("You are a knowledgeable cooking assistant. "+
			"If a tool fails, explain what happened and suggest alternatives. Keep responses concise."),
		al.WithContextProvider(policy.NewPermissionsProvider(userType)),
		al.WithTools(tools.SearchRecipeTool(), tools.CheckPantryTool()),
		// Simple questions go to the cheap model, complex ones to the expert.
		al.WithChatMiddleware(policy.ModelRouter("gpt-4o-mini", "gpt-4o")),
		// A failing pantry lookup becomes a recoverable message to the model.
		al.WithFunctionMiddleware(al.ToolErrorRecovery()),
		al.WithAgentMiddleware(al.LoggingMiddleware(slog.Default())),
	)

	session := agent.NewSession()

	fmt.Println("Chat with the cooking assistant (type 'quit' to exit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		resp, err := agent.Run(context.Background(),
			[]al.Message{al.NewUserMessage(input)},
			al.WithSession(session),
		)
		if err != nil {
			log.Printf("Error: %v", err)
			continue
		}

		// Screen the model's answer before showing it.
		fmt.Printf("Assistant: %s\n", policy.Filter(resp.Text()))
		if resp.Usage.TotalTokens > 0 {
			fmt.Printf("  [tokens: %d in, %d out]\n",
				resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
		fmt.Println()
	}
}
