// Copyright (c) Microsoft. All rights reserved.

package agentlab

import (
	"context"
	"encoding/json"
	"fmt"
)

// agentToolArgs is the single-argument schema every wrapped sub-agent exposes.
type agentToolArgs struct {
	Request string `json:"request" jsonschema:"description=The task to delegate in natural language,required"`
}

// AgentTool wraps a fully configured sub-agent as a [Tool], so a coordinator
// agent can delegate work to it (the supervisor pattern).
//
// The contract is deliberately thin: the argument string is forwarded verbatim
// as a user message to the sub-agent, and the tool result is the sub-agent's
// final text reply. The coordinator only sees that final message, so
// sub-agent instructions should tell the specialist to include all details in
// its answer. There is no fan-out concurrency and no retry; a sub-agent error
// propagates as an ordinary tool error.
//
// If name is empty, the sub-agent's own name is used.
func AgentTool(sub *Agent, name, description string, opts ...ToolOption) *FunctionTool {
	if name == "" {
		name = sub.Name()
	}
	if description == "" {
		description = sub.Description()
	}

	fn := func(ctx context.Context, args agentToolArgs) (any, error) {
		resp, err := sub.Run(ctx, []Message{NewUserMessage(args.Request)})
		if err != nil {
			return nil, fmt.Errorf("sub-agent %q: %w", sub.Name(), err)
		}
		return resp.Text(), nil
	}

	return NewTypedTool(name, description, fn, opts...)
}

// AgentToolRaw is like [AgentTool] but accepts the raw argument payload and
// forwards its "request" field, tolerating models that send a bare string
// instead of an object.
func AgentToolRaw(sub *Agent, name, description string, opts ...ToolOption) *FunctionTool {
	if name == "" {
		name = sub.Name()
	}
	schema := GenerateSchema[agentToolArgs]()

	fn := func(ctx context.Context, raw json.RawMessage) (any, error) {
		request := string(raw)
		var args agentToolArgs
		if err := json.Unmarshal(raw, &args); err == nil && args.Request != "" {
			request = args.Request
		} else {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				request = s
			}
		}
		resp, err := sub.Run(ctx, []Message{NewUserMessage(request)})
		if err != nil {
			return nil, fmt.Errorf("sub-agent %q: %w", sub.Name(), err)
		}
		return resp.Text(), nil
	}

	return NewTool(name, description, schema, fn, opts...)
}
