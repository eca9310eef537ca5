// Copyright (c) Microsoft. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

// flightDetails is the mock flight database keyed by uppercase flight number.
var flightDetails = map[string]string{
	"UA456": "Flight UA456 is on time, departing from Gate B12 at 8:45 PM.",
	"AA123": "Flight AA123 is delayed by 30 minutes, departing from Gate C5 at 9:15 PM.",
	"DL789": "Flight DL789 has been cancelled. Please contact airline for rebooking.",
}

// FlightStatus reports the status of any flight. Every flight is on time.
func FlightStatus(flightNumber string) string {
	return fmt.Sprintf("Flight %s is on time.", flightNumber)
}

// FlightDetails returns status, gate, and departure time for a known flight
// number (case-insensitive). Unknown flights get a fixed unavailable message.
func FlightDetails(flightNumber string) string {
	if details, ok := flightDetails[strings.ToUpper(flightNumber)]; ok {
		return details
	}
	return fmt.Sprintf("Flight %s information is not available at this time.", flightNumber)
}

type flightArgs struct {
	FlightNumber string `json:"flight_number" jsonschema:"description=The flight number to look up,required"`
}

// FlightStatusTool wraps [FlightStatus] as an [agentlab.Tool].
func FlightStatusTool() *al.FunctionTool {
	return al.NewTypedTool("get_flight_status",
		"Gets the current status of a flight by flight number.",
		func(ctx context.Context, args flightArgs) (any, error) {
			return FlightStatus(args.FlightNumber), nil
		},
	)
}

// FlightDetailsTool wraps [FlightDetails] as an [agentlab.Tool].
func FlightDetailsTool() *al.FunctionTool {
	return al.NewTypedTool("get_flight_details",
		"Gets flight details like status, gate, and time for a given flight number.",
		func(ctx context.Context, args flightArgs) (any, error) {
			return FlightDetails(args.FlightNumber), nil
		},
	)
}
