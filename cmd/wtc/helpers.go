// Shared helpers for wtc CLI commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ftambara/what-to-cook/internal/source"
)

// recipeSourceFor returns a file or HTTP recipe source depending on the
// argument shape.
func recipeSourceFor(arg string) source.RecipeSource {
	if isURL(arg) {
		return source.NewHTTPRecipeSource(arg)
	}
	return source.FileRecipeSource{Path: arg}
}

// catalogSourceFor returns a file or HTTP catalog source depending on
// the argument shape.
func catalogSourceFor(arg string) source.CatalogSource {
	if isURL(arg) {
		return source.NewHTTPCatalogSource(arg)
	}
	return source.FileCatalogSource{Path: arg}
}

func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// confirm prompts for a y/n answer and keeps asking until it gets one.
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s [y/n]: ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true
		case "n":
			return false
		}
	}
}
