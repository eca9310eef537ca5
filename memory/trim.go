// Copyright (c) Microsoft. All rights reserved.

package memory

import (
	"context"
	"log/slog"

	al "github.com/microsoft/agentlab/agentlab"
)

// trimWindow is the fixed transcript size enforced by TrimHistory: the first
// message plus the last four.
const trimWindow = 5

// TrimHistory bounds a transcript to five messages. A transcript of five or
// fewer messages is returned unchanged (the same slice, no copy). A longer
// transcript collapses to exactly five: the original first message followed
// by the original last four. The first message is typically the system
// prompt, so it survives every trim.
func TrimHistory(messages []al.Message) []al.Message {
	if len(messages) <= trimWindow {
		return messages
	}
	trimmed := make([]al.Message, 0, trimWindow)
	trimmed = append(trimmed, messages[0])
	trimmed = append(trimmed, messages[len(messages)-(trimWindow-1):]...)
	return trimmed
}

// TrimmingMiddleware returns a [agentlab.ChatMiddleware] that applies
// [TrimHistory] to the transcript before every model call. The session store
// keeps the full history; only what the model sees is bounded.
func TrimmingMiddleware() al.ChatMiddleware {
	return func(next al.ChatHandler) al.ChatHandler {
		return func(ctx context.Context, messages []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			trimmed := TrimHistory(messages)
			if len(trimmed) != len(messages) {
				slog.DebugContext(ctx, "trimmed history",
					"before", len(messages),
					"after", len(trimmed),
				)
			}
			return next(ctx, trimmed, opts)
		}
	}
}
