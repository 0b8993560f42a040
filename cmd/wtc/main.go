// Package main provides the wtc CLI: ingredient catalog loading, recipe
// ingestion, unknown-review workflow, and recipe search.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
