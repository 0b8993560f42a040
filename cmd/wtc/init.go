// Init command: prepare the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the wtc configuration and database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Setup already created the config file and the database; this
		// command exists so first-time initialization is an explicit,
		// visible step.
		fmt.Printf("Initialized database in %s (language: %s)\n",
			appConfig.DataDir, appConfig.Language)
		return nil
	},
}
