// Search command: ingredient-filtered recipe queries.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [ingredient]...",
	Short: "Search fully resolved recipes by included ingredients",
	Long: `Search lists recipes whose ingredients include every given name.
Names are matched by identity, so "Carote" finds recipes stored under
"carota". With no arguments, all fully resolved recipes are listed.

Example:
  wtc search carota aglio`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	recipes, err := searcher.GetRecipes(args)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}
	for _, r := range recipes {
		fmt.Printf("%s\n  %s\n", r.Title, r.URL)
		for _, ingr := range r.IngredientsKnown {
			fmt.Printf("  - %s\n", ingr.Display())
		}
	}
	return nil
}
