// Copyright (c) Microsoft. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

var stockPrices = map[string]float64{
	"ACME":  150.75,
	"AAPL":  180.25,
	"GOOGL": 142.50,
}

var financialNews = map[string]string{
	"ACME":  "ACME Corp announces record quarterly profits, beating analyst expectations.",
	"Apple": "Apple unveils new product line, investors respond positively.",
}

// StockPrice returns the mock price for a ticker (case-insensitive).
// Unknown tickers are worth 0.0.
func StockPrice(ticker string) float64 {
	return stockPrices[strings.ToUpper(ticker)]
}

// FinancialNews returns the latest mock headline for a company. The lookup is
// case-sensitive; unknown companies get a fixed not-found message.
func FinancialNews(companyName string) string {
	if headline, ok := financialNews[companyName]; ok {
		return headline
	}
	return fmt.Sprintf("No recent news found for %s.", companyName)
}

// StockPriceTool wraps [StockPrice] as an [agentlab.Tool].
func StockPriceTool() *al.FunctionTool {
	return al.NewTypedTool("get_stock_price",
		"Gets the current stock price for a given ticker symbol.",
		func(ctx context.Context, args struct {
			Ticker string `json:"ticker" jsonschema:"description=The stock ticker symbol,required"`
		}) (any, error) {
			return StockPrice(args.Ticker), nil
		},
	)
}

// FinancialNewsTool wraps [FinancialNews] as an [agentlab.Tool].
func FinancialNewsTool() *al.FunctionTool {
	return al.NewTypedTool("get_financial_news",
		"Searches for the latest financial news about a company.",
		func(ctx context.Context, args struct {
			CompanyName string `json:"company_name" jsonschema:"description=The company to search news for,required"`
		}) (any, error) {
			return FinancialNews(args.CompanyName), nil
		},
	)
}
