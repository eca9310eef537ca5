// Copyright (c) Microsoft. All rights reserved.

package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

const summaryInstructions = "Summarize the following conversation concisely, " +
	"preserving all facts, names, numbers, and decisions. Reply with the summary only."

// SummarizeConfig controls [SummarizationMiddleware].
type SummarizeConfig struct {
	// Threshold is the transcript length that triggers summarization.
	// Zero means 10.
	Threshold int

	// KeepRecent is how many trailing messages stay verbatim. Zero means 4.
	KeepRecent int

	// ModelID optionally pins the summarization call to a cheaper model.
	ModelID string
}

func (c *SummarizeConfig) withDefaults() SummarizeConfig {
	out := SummarizeConfig{Threshold: 10, KeepRecent: 4}
	if c != nil {
		if c.Threshold > 0 {
			out.Threshold = c.Threshold
		}
		if c.KeepRecent > 0 {
			out.KeepRecent = c.KeepRecent
		}
		out.ModelID = c.ModelID
	}
	return out
}

// SummarizationMiddleware returns a [agentlab.ChatMiddleware] that compresses
// long transcripts before the model call. When the transcript reaches the
// threshold, the middle of the conversation is sent to client to be condensed
// into a single assistant summary message; the leading system message (if
// any) and the most recent messages pass through untouched. A failed
// summarization call is logged and the transcript forwarded unmodified.
func SummarizationMiddleware(client al.ChatClient, cfg *SummarizeConfig) al.ChatMiddleware {
	conf := cfg.withDefaults()

	return func(next al.ChatHandler) al.ChatHandler {
		return func(ctx context.Context, messages []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			if len(messages) < conf.Threshold {
				return next(ctx, messages, opts)
			}

			head := 0
			if messages[0].Role == al.RoleSystem {
				head = 1
			}
			tail := len(messages) - conf.KeepRecent
			if tail <= head {
				return next(ctx, messages, opts)
			}

			summary, err := summarize(ctx, client, messages[head:tail], conf.ModelID)
			if err != nil {
				slog.WarnContext(ctx, "summarization failed, forwarding full history", "error", err)
				return next(ctx, messages, opts)
			}

			condensed := make([]al.Message, 0, head+1+conf.KeepRecent)
			condensed = append(condensed, messages[:head]...)
			condensed = append(condensed, al.NewAssistantMessage("Summary of the conversation so far: "+summary))
			condensed = append(condensed, messages[tail:]...)

			slog.DebugContext(ctx, "summarized history",
				"before", len(messages),
				"after", len(condensed),
			)
			return next(ctx, condensed, opts)
		}
	}
}

func summarize(ctx context.Context, client al.ChatClient, messages []al.Message, modelID string) (string, error) {
	var b strings.Builder
	for i := range messages {
		fmt.Fprintf(&b, "%s: %s\n", messages[i].Role, messages[i].Text())
	}

	opts := &al.ChatOptions{ModelID: modelID}
	resp, err := client.Response(ctx, []al.Message{
		al.NewSystemMessage(summaryInstructions),
		al.NewUserMessage(b.String()),
	}, opts)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty summary", al.ErrInvalidResponse)
	}
	return text, nil
}
