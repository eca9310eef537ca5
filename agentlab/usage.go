// Copyright (c) Microsoft. All rights reserved.

package agentlab

// UsageDetails holds token consumption statistics for a model response.
type UsageDetails struct {
	InputTokens  int `json:"inputTokenCount,omitempty"`
	OutputTokens int `json:"outputTokenCount,omitempty"`
	TotalTokens  int `json:"totalTokenCount,omitempty"`
}

// Add returns the element-wise sum of two usage records. Demos use it to
// accumulate cost across a multi-call run.
func (u UsageDetails) Add(other UsageDetails) UsageDetails {
	return UsageDetails{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
		TotalTokens:  u.TotalTokens + other.TotalTokens,
	}
}
