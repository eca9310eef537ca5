// Copyright (c) Microsoft. All rights reserved.

package tools

import (
	"context"
	"fmt"

	al "github.com/microsoft/agentlab/agentlab"
)

var serverStatuses = map[string]string{
	"192.168.1.1": "ONLINE",
	"192.168.1.2": "OFFLINE",
	"192.168.1.3": "MAINTENANCE",
}

// ServerStatus reports the mock status of a server by IP address. Servers
// outside the fixed set are UNKNOWN.
func ServerStatus(serverIP string) string {
	status, ok := serverStatuses[serverIP]
	if !ok {
		status = "UNKNOWN"
	}
	return fmt.Sprintf("Server at %s is %s.", serverIP, status)
}

// ServerStatusTool wraps [ServerStatus] as an [agentlab.Tool].
func ServerStatusTool() *al.FunctionTool {
	return al.NewTypedTool("check_server_status",
		"Checks if a server is online and returns its status.",
		func(ctx context.Context, args struct {
			ServerIP string `json:"server_ip" jsonschema:"description=The IP address of the server to check,required"`
		}) (any, error) {
			return ServerStatus(args.ServerIP), nil
		},
	)
}
