// Copyright (c) Microsoft. All rights reserved.

package policy

import (
	"context"
	"log/slog"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

// complexRecipes are dish names that signal a query needs the expert model.
var complexRecipes = []string{
	"beef wellington", "souffle", "soufflé", "coq au vin",
	"bouillabaisse", "consomme", "croissant", "macarons",
}

// advancedTechniques are cooking terms that signal a query needs the expert model.
var advancedTechniques = []string{
	"sous vide", "flambe", "confit", "molecular",
	"emulsify", "temper", "clarify",
}

// IsComplexQuery reports whether a query trips any complexity heuristic:
// a complex recipe name, more than four commas (long ingredient lists),
// an advanced technique term, or more than fifteen words.
func IsComplexQuery(query string) bool {
	q := strings.ToLower(query)

	for _, recipe := range complexRecipes {
		if strings.Contains(q, recipe) {
			return true
		}
	}
	if strings.Count(q, ",") > 4 {
		return true
	}
	for _, technique := range advancedTechniques {
		if strings.Contains(q, technique) {
			return true
		}
	}
	return len(strings.Fields(q)) > 15
}

// ModelRouter returns a [agentlab.ChatMiddleware] that picks the model per
// round trip: the expert model when the last user message looks complex
// ([IsComplexQuery]), the simple model otherwise. The routed choice overrides
// whatever model the options carry.
func ModelRouter(simpleModel, expertModel string) al.ChatMiddleware {
	return func(next al.ChatHandler) al.ChatHandler {
		return func(ctx context.Context, messages []al.Message, opts *al.ChatOptions) (*al.ChatResponse, error) {
			query := lastUserText(messages)

			model := simpleModel
			if IsComplexQuery(query) {
				model = expertModel
			}
			slog.DebugContext(ctx, "routed model", "model", model)

			opts = al.MergeChatOptions(opts, &al.ChatOptions{ModelID: model})
			return next(ctx, messages, opts)
		}
	}
}

func lastUserText(messages []al.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == al.RoleUser {
			return messages[i].Text()
		}
	}
	return ""
}
