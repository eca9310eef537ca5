// Copyright (c) Microsoft. All rights reserved.

package policy

import "strings"

// blockedResponse replaces any model output that trips the content policy.
const blockedResponse = "Response blocked by policy."

// Permissions returns the context to inject for a user type. Admins get full
// permissions; every other user type is read-only.
func Permissions(userType string) map[string]string {
	if userType == "admin" {
		return map[string]string{"permissions": "all"}
	}
	return map[string]string{"permissions": "read-only"}
}

// Filter screens a model response against the content policy. A response
// containing "forbidden" (case-insensitive) is replaced wholesale; anything
// else passes through unchanged.
func Filter(response string) string {
	if strings.Contains(strings.ToLower(response), "forbidden") {
		return blockedResponse
	}
	return response
}
