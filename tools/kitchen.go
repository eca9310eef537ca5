// Copyright (c) Microsoft. All rights reserved.

package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	al "github.com/microsoft/agentlab/agentlab"
)

var recipes = map[string]string{
	"pasta":    "Classic pasta: Boil water, add pasta, cook 10 minutes, drain, add sauce.",
	"pancakes": "Pancakes: Mix flour, eggs, milk. Pour on hot griddle, flip when bubbles form.",
}

var pantry = map[string]bool{
	"flour":  true,
	"sugar":  true,
	"eggs":   true,
	"milk":   true,
	"butter": true,
}

// SearchRecipe looks up a recipe by dish name (case-insensitive). Unknown
// dishes get a fixed not-found message.
func SearchRecipe(dishName string) string {
	if recipe, ok := recipes[strings.ToLower(dishName)]; ok {
		return recipe
	}
	return fmt.Sprintf("Recipe for %s not found in our database.", dishName)
}

// CheckPantry reports whether an ingredient is stocked (case-insensitive).
// The ingredient "error" simulates a backend failure and returns an error.
func CheckPantry(ingredient string) (string, error) {
	switch {
	case strings.ToLower(ingredient) == "error":
		return "", errors.New("Pantry database connection failed!")
	case pantry[strings.ToLower(ingredient)]:
		return fmt.Sprintf("Yes, you have %s in the pantry.", ingredient), nil
	default:
		return fmt.Sprintf("Sorry, you don't have %s.", ingredient), nil
	}
}

// SearchRecipeTool wraps [SearchRecipe] as an [agentlab.Tool].
func SearchRecipeTool() *al.FunctionTool {
	return al.NewTypedTool("search_recipe",
		"Searches for a recipe for a specific dish.",
		func(ctx context.Context, args struct {
			DishName string `json:"dish_name" jsonschema:"description=The name of the dish to search for,required"`
		}) (any, error) {
			return SearchRecipe(args.DishName), nil
		},
	)
}

// CheckPantryTool wraps [CheckPantry] as an [agentlab.Tool]. Pair it with
// [agentlab.ToolErrorRecovery] so a simulated failure reaches the model as a
// recoverable message.
func CheckPantryTool() *al.FunctionTool {
	return al.NewTypedTool("check_pantry",
		"Checks if an ingredient is available in the pantry.",
		func(ctx context.Context, args struct {
			Ingredient string `json:"ingredient" jsonschema:"description=The ingredient to check for,required"`
		}) (any, error) {
			result, err := CheckPantry(args.Ingredient)
			if err != nil {
				return nil, err
			}
			return result, nil
		},
	)
}
