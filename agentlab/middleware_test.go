// Copyright (c) Microsoft. All rights reserved.

package agentlab_test

import (
	"context"
	"encoding/json"
	"testing"

	al "github.com/microsoft/agentlab/agentlab"
)

func TestAgentMiddleware_OrderAndShortCircuit(t *testing.T) {
	var order []string
	mark := func(name string) al.AgentMiddleware {
		return func(next al.AgentHandler) al.AgentHandler {
			return func(ctx context.Context, req *al.AgentRequest) (*al.AgentResponse, error) {
				order = append(order, name+":before")
				resp, err := next(ctx, req)
				order = append(order, name+":after")
				return resp, err
			}
		}
	}

	client := &mockClient{
		responseFn: func(ctx context.Context, msgs []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			order = append(order, "model")
			return &al.ChatResponse{Messages: []al.Message{al.NewAssistantMessage("ok")}}, nil
		},
	}

	agent := al.NewAgent(client, al.WithAgentMiddleware(mark("outer"), mark("inner")))
	if _, err := agent.Run(context.Background(), []al.Message{al.NewUserMessage("go")}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"outer:before", "inner:before", "model", "inner:after", "outer:after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestChatMiddleware_SeesEveryRoundTrip(t *testing.T) {
	tool := al.NewTypedTool("echo", "Echoes input",
		func(ctx context.Context, args struct {
			Text string `json:"text"`
		}) (any, error) {
			return args.Text, nil
		},
	)

	callCount := 0
	client := &mockClient{
		responseFn: func(ctx context.Context, msgs []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			callCount++
			if callCount == 1 {
				return &al.ChatResponse{
					Messages: []al.Message{{
						Role: al.RoleAssistant,
						Contents: al.Contents{&al.FunctionCallContent{
							CallID: "c1", Name: "echo", Arguments: `{"text":"hi"}`,
						}},
					}},
				}, nil
			}
			return &al.ChatResponse{Messages: []al.Message{al.NewAssistantMessage("done")}}, nil
		},
	}

	var observed int
	counting := func(next al.ChatHandler) al.ChatHandler {
		return func(ctx context.Context, msgs []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			observed++
			return next(ctx, msgs, opts)
		}
	}

	agent := al.NewAgent(client,
		al.WithTools(tool),
		al.WithChatMiddleware(counting),
	)
	if _, err := agent.Run(context.Background(), []al.Message{al.NewUserMessage("echo hi")}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Both the initial call and the post-tool call go through chat middleware.
	if observed != 2 {
		t.Errorf("observed rounds = %d, want 2", observed)
	}
}

func TestFunctionMiddleware_WrapsInvocation(t *testing.T) {
	tool := al.NewTypedTool("shout", "Uppercases",
		func(ctx context.Context, args struct {
			Text string `json:"text"`
		}) (any, error) {
			return args.Text, nil
		},
	)

	callCount := 0
	client := &mockClient{
		responseFn: func(ctx context.Context, msgs []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			callCount++
			if callCount == 1 {
				return &al.ChatResponse{
					Messages: []al.Message{{
						Role: al.RoleAssistant,
						Contents: al.Contents{&al.FunctionCallContent{
							CallID: "c1", Name: "shout", Arguments: `{"text":"quiet"}`,
						}},
					}},
				}, nil
			}
			return &al.ChatResponse{Messages: []al.Message{al.NewAssistantMessage("done")}}, nil
		},
	}

	var sawTool string
	spy := func(next al.FunctionHandler) al.FunctionHandler {
		return func(ctx context.Context, tool al.Tool, args json.RawMessage) (any, error) {
			sawTool = tool.Name()
			return next(ctx, tool, args)
		}
	}

	agent := al.NewAgent(client, al.WithTools(tool), al.WithFunctionMiddleware(spy))
	if _, err := agent.Run(context.Background(), []al.Message{al.NewUserMessage("go")}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sawTool != "shout" {
		t.Errorf("middleware saw tool %q", sawTool)
	}
}
