// Copyright (c) Microsoft. All rights reserved.

// Package agentlab provides the core types and abstractions for building
// AI agents in Go. It includes a composable Agent with tool calling,
// middleware pipelines, and session management, and it underpins the runnable
// demos in the samples tree.
//
// # Quick Start
//
// Create a ChatClient (e.g., from the openai package) and build an Agent:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.WithModel("gpt-4o-mini"))
//
//	agent := agentlab.NewAgent(client,
//	    agentlab.WithName("assistant"),
//	    agentlab.WithInstructions("You are helpful."),
//	    agentlab.WithTools(myTool),
//	)
//
//	resp, err := agent.Run(ctx, []agentlab.Message{
//	    agentlab.NewUserMessage("Hello!"),
//	})
//
// # Architecture
//
// The package is organized around these key abstractions:
//
//   - [Agent]: the top-level orchestrator that composes a client with tools,
//     middleware, and session management.
//   - [ChatClient]: interface for LLM backends (implemented by provider packages).
//   - [Tool]: callable functions exposed to the model via function calling.
//   - [Content]: sealed interface of concrete types representing message parts.
//   - [Session]: manages multi-turn conversation state (service-managed or local).
//   - Middleware: three levels (Agent, Chat, Function) for cross-cutting concerns.
//
// # Tools
//
// Use [NewTypedTool] for type-safe tools with automatic JSON Schema generation:
//
//	type FlightArgs struct {
//	    FlightNumber string `json:"flightNumber" jsonschema:"description=Flight number,required"`
//	}
//
//	tool := agentlab.NewTypedTool("get_flight_status", "Gets the status for a flight",
//	    func(ctx context.Context, args FlightArgs) (any, error) {
//	        return tools.FlightStatus(args.FlightNumber), nil
//	    },
//	)
//
// # Supervisors
//
// A fully configured agent can itself be exposed as a tool to another agent
// with [AgentTool], which is how the multi-agent samples delegate work to
// specialists:
//
//	supervisor := agentlab.NewAgent(client,
//	    agentlab.WithTools(
//	        agentlab.AgentTool(calendarAgent, "schedule_event", "Schedule calendar events."),
//	        agentlab.AgentTool(emailAgent, "manage_email", "Handle email tasks."),
//	    ),
//	)
//
// # Sessions
//
// Use sessions for multi-turn conversations:
//
//	session := agent.NewSession()
//	resp1, _ := agent.Run(ctx, msgs1, agentlab.WithSession(session))
//	resp2, _ := agent.Run(ctx, msgs2, agentlab.WithSession(session))
package agentlab
