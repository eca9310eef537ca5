// Copyright (c) Microsoft. All rights reserved.

package policy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

// PermissionsProvider injects the caller's permission context into every
// agent invocation so the model knows what the user is allowed to do.
type PermissionsProvider struct {
	al.NoOpContextProvider
	userType string
}

// NewPermissionsProvider returns a context provider that looks up and
// injects the permissions for the given user type.
func NewPermissionsProvider(userType string) *PermissionsProvider {
	return &PermissionsProvider{userType: userType}
}

// Invoking appends the user's permission context to the system instructions.
func (p *PermissionsProvider) Invoking(_ context.Context, _ []al.Message) (*al.InvocationContext, error) {
	perms := Permissions(p.userType)
	pairs := make([]string, 0, len(perms))
	for k, v := range perms {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	return &al.InvocationContext{
		Instructions: "Current user context: " + strings.Join(pairs, ", ") + ".",
	}, nil
}
