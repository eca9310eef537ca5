// Copyright (c) Microsoft. All rights reserved.

// Command quickstart builds up from a single-tool flight agent to an agent
// with contextual tools and session memory.
//
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run .
//
// Azure OpenAI works too:
//
//	export AZURE_FOUNDRY_ENDPOINT=https://<project>.services.ai.azure.com/openai/deployments/<deployment>
//	export AZURE_FOUNDRY_KEY=<your-key>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/joho/godotenv"
	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/openai"
	"github.com/microsoft/agentlab/tools"
)

func main() {
	_ = godotenv.Load()
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	client := newChatClient()
	ctx := context.Background()

	// Step 1: a basic agent with one tool.
	basic := al.NewAgent(client,
		al.WithName("flight_agent"),
		al.WithInstructions("You are a helpful flight assistant. Use your tools to answer questions about flights."),
		al.WithTools(tools.FlightStatusTool()),
	)

	fmt.Println("--- Basic agent ---")
	answer, err := basic.RunText(ctx, "What is the status of flight UA456?")
	if err != nil {
		log.Fatalf("basic agent: %v", err)
	}
	fmt.Println(answer)

	// Step 2: an advanced agent with richer tools, a home-airport context
	// provider, and session memory across turns.
	homeAirport := al.NewTool("get_user_home_airport",
		"Retrieves the user's registered home airport.",
		nil,
		func(ctx context.Context, _ json.RawMessage) (any, error) {
			return "SEA (Seattle-Tacoma International)", nil
		},
	)

	advanced := al.NewAgent(client,
		al.WithName("advanced_flight_agent"),
		al.WithInstructions("You are an expert flight assistant.\n"+
			"- get_flight_details: use this for status, gate, and departure time of a specific flight.\n"+
			"- get_user_home_airport: if a user asks about flights from 'my airport' or 'home', use this first.\n"+
			"Always confirm the flight number before providing details."),
		al.WithTools(tools.FlightDetailsTool(), homeAirport),
		al.WithAgentMiddleware(al.LoggingMiddleware(slog.Default())),
	)

	session := advanced.NewSession()

	fmt.Println("\n--- Advanced agent with memory ---")
	for _, question := range []string{
		"What is the status of flight UA456?",
		"And what gate was that again?",
	} {
		fmt.Printf("You: %s\n", question)
		answer, err := advanced.RunText(ctx, question, al.WithSession(session))
		if err != nil {
			log.Fatalf("advanced agent: %v", err)
		}
		fmt.Printf("Assistant: %s\n\n", answer)
	}
}

// newChatClient creates an OpenAI-compatible client from the environment,
// preferring an Azure OpenAI endpoint when one is configured.
func newChatClient() *openai.Client {
	if endpoint := os.Getenv("AZURE_FOUNDRY_ENDPOINT"); endpoint != "" {
		model := os.Getenv("AZURE_FOUNDRY_MODEL")
		if model == "" {
			model = "gpt-4o"
		}
		if key := os.Getenv("AZURE_FOUNDRY_KEY"); key != "" {
			return openai.New(key,
				openai.WithBaseURL(endpoint),
				openai.WithModel(model),
				openai.WithHeaders(map[string]string{"api-key": key}),
			)
		}
		// No key set: fall back to Azure AD (az login, managed identity, etc).
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			log.Fatalf("azure credential: %v", err)
		}
		return openai.New("",
			openai.WithBaseURL(endpoint),
			openai.WithModel(model),
			openai.WithAzureCredential(cred),
		)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY (or AZURE_FOUNDRY_ENDPOINT + AZURE_FOUNDRY_KEY) to run this sample.")
		os.Exit(1)
	}
	return openai.New(apiKey, openai.WithModel("gpt-4o"))
}
