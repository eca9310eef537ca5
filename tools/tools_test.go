// Copyright (c) Microsoft. All rights reserved.

package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/agentlab/tools"
)

func TestFlightStatus(t *testing.T) {
	assert.Equal(t, "Flight UA456 is on time.", tools.FlightStatus("UA456"))
	assert.Equal(t, "Flight XX000 is on time.", tools.FlightStatus("XX000"))
}

func TestFlightDetails(t *testing.T) {
	assert.Equal(t,
		"Flight UA456 is on time, departing from Gate B12 at 8:45 PM.",
		tools.FlightDetails("UA456"))
	assert.Equal(t,
		"Flight AA123 is delayed by 30 minutes, departing from Gate C5 at 9:15 PM.",
		tools.FlightDetails("AA123"))
	assert.Equal(t,
		"Flight DL789 has been cancelled. Please contact airline for rebooking.",
		tools.FlightDetails("DL789"))

	// Case-insensitive lookup.
	assert.Equal(t,
		"Flight UA456 is on time, departing from Gate B12 at 8:45 PM.",
		tools.FlightDetails("ua456"))

	// Exact fallback text for unknown flights.
	assert.Equal(t,
		"Flight ZZ999 information is not available at this time.",
		tools.FlightDetails("ZZ999"))
}

func TestStockPrice(t *testing.T) {
	assert.Equal(t, 150.75, tools.StockPrice("ACME"))
	assert.Equal(t, 180.25, tools.StockPrice("AAPL"))
	assert.Equal(t, 142.50, tools.StockPrice("GOOGL"))
	assert.Equal(t, 150.75, tools.StockPrice("acme"))

	// Unknown tickers are worth exactly 0.0.
	assert.Equal(t, 0.0, tools.StockPrice("MSFT"))
}

func TestFinancialNews(t *testing.T) {
	assert.Equal(t,
		"ACME Corp announces record quarterly profits, beating analyst expectations.",
		tools.FinancialNews("ACME"))
	assert.Equal(t, "No recent news found for Initech.", tools.FinancialNews("Initech"))
}

func TestSearchRecipe(t *testing.T) {
	assert.Equal(t,
		"Classic pasta: Boil water, add pasta, cook 10 minutes, drain, add sauce.",
		tools.SearchRecipe("pasta"))
	assert.Equal(t,
		"Pancakes: Mix flour, eggs, milk. Pour on hot griddle, flip when bubbles form.",
		tools.SearchRecipe("Pancakes"))
	assert.Equal(t,
		"Recipe for lasagna not found in our database.",
		tools.SearchRecipe("lasagna"))
}

func TestCheckPantry(t *testing.T) {
	for _, item := range []string{"flour", "sugar", "eggs", "milk", "butter"} {
		got, err := tools.CheckPantry(item)
		require.NoError(t, err)
		assert.Equal(t, "Yes, you have "+item+" in the pantry.", got)
	}

	got, err := tools.CheckPantry("Flour")
	require.NoError(t, err)
	assert.Equal(t, "Yes, you have Flour in the pantry.", got)

	got, err = tools.CheckPantry("saffron")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, you don't have saffron.", got)

	_, err = tools.CheckPantry("error")
	require.Error(t, err)
	assert.Equal(t, "Pantry database connection failed!", err.Error())

	_, err = tools.CheckPantry("ERROR")
	require.Error(t, err)
}

func TestServerStatus(t *testing.T) {
	assert.Equal(t, "Server at 192.168.1.1 is ONLINE.", tools.ServerStatus("192.168.1.1"))
	assert.Equal(t, "Server at 192.168.1.2 is OFFLINE.", tools.ServerStatus("192.168.1.2"))
	assert.Equal(t, "Server at 192.168.1.3 is MAINTENANCE.", tools.ServerStatus("192.168.1.3"))
	assert.Equal(t, "Server at 10.0.0.1 is UNKNOWN.", tools.ServerStatus("10.0.0.1"))
}

func TestToolWrappers_InvokeThroughSchema(t *testing.T) {
	ctx := context.Background()

	result, err := tools.FlightStatusTool().Invoke(ctx, json.RawMessage(`{"flight_number":"UA456"}`))
	require.NoError(t, err)
	assert.Equal(t, "Flight UA456 is on time.", result)

	result, err = tools.StockPriceTool().Invoke(ctx, json.RawMessage(`{"ticker":"GOOGL"}`))
	require.NoError(t, err)
	assert.Equal(t, 142.50, result)

	result, err = tools.CheckPantryTool().Invoke(ctx, json.RawMessage(`{"ingredient":"milk"}`))
	require.NoError(t, err)
	assert.Equal(t, "Yes, you have milk in the pantry.", result)

	_, err = tools.CheckPantryTool().Invoke(ctx, json.RawMessage(`{"ingredient":"error"}`))
	require.Error(t, err)

	result, err = tools.ServerStatusTool().Invoke(ctx, json.RawMessage(`{"server_ip":"192.168.1.2"}`))
	require.NoError(t, err)
	assert.Equal(t, "Server at 192.168.1.2 is OFFLINE.", result)
}
