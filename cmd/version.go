package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofault/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofault",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Short-Circuit Fault Calculator")
		fmt.Fprintln(out, "LLL, LL and LG faults from sequence impedances")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
