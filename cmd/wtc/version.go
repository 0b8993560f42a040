// Version command for the wtc CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftambara/what-to-cook/pkg/wtc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wtc version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wtc", wtc.Version)
	},
}
