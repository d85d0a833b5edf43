// Command teamform forms teams and assigns projects from a submissions file
// without running the HTTP service.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "teamform",
	Short:        "Form student teams and assign projects",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newAssignCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
