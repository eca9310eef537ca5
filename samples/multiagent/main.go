// Copyright (c) Microsoft. All rights reserved.

// Command multiagent demonstrates the supervisor pattern: a coordinator agent
// delegates to specialist sub-agents wrapped as tools.
//
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run .
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

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

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY to run this sample.")
		os.Exit(1)
	}
	client := openai.New(apiKey, openai.WithModel("gpt-4o-mini"))

	// Specialists only see their own domain. Their instructions tell them to
	// include every detail, because the supervisor only sees their final text.
	flightAgent := al.NewAgent(client,
		al.WithName("flight_agent"),
		al.WithDescription("Answers questions about flight status, gates, and departure times."),
		al.WithInstructions("You are a flight specialist. Use your tools and include ALL details in your final response."),
		al.WithTools(tools.FlightStatusTool(), tools.FlightDetailsTool()),
	)

	financeAgent := al.NewAgent(client,
		al.WithName("finance_agent"),
		al.WithDescription("Answers questions about stock prices and financial news."),
		al.WithInstructions("You are a finance specialist. Use your tools and include ALL details in your final response."),
		al.WithTools(tools.StockPriceTool(), tools.FinancialNewsTool()),
	)

	// The supervisor holds the specialists as tools and routes each request.
	supervisor := al.NewAgent(client,
		al.WithName("supervisor"),
		al.WithInstructions("You are a coordinator. Delegate flight questions to the flight agent "+
			"and finance questions to the finance agent, then summarize their answers for the user."),
		al.WithTools(
			al.AgentTool(flightAgent, "ask_flight_agent", "Delegate flight-related questions to the flight specialist."),
			al.AgentTool(financeAgent, "ask_finance_agent", "Delegate stock and finance questions to the finance specialist."),
		),
		al.WithAgentMiddleware(al.LoggingMiddleware(slog.Default())),
	)

	ctx := context.Background()
	for _, question := range []string{
		"Is flight UA456 on time, and which gate does it leave from?",
		"What is ACME trading at, and is there any news about them?",
		"I'm flying DL789 and want to check my GOOGL position before boarding.",
	} {
		fmt.Printf("You: %s\n", question)
		answer, err := supervisor.RunText(ctx, question)
		if err != nil {
			log.Fatalf("supervisor: %v", err)
		}
		fmt.Printf("Supervisor: %s\n\n", answer)
	}
}
