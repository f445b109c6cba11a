package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gofault/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofault",
	Short: "Short-Circuit Fault Calculator",
	Long: `gofault - Go Short-Circuit Fault Calculator

A CLI tool for estimating short-circuit currents and fault power
at a single bus of a three-phase network.

Given the line-to-line voltage and the sequence impedance magnitudes
Z1, Z2 and Z0, this tool computes:
  - Three-phase (LLL) fault current
  - Phase-to-phase (LL) fault current
  - Phase-to-ground (LG) fault current
  - Fault apparent power in MVA

Numbers may use either a period or a comma as decimal separator.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofault v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Short-Circuit Fault Calculator                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for short-circuit current and fault MVA estimation")
		fmt.Println("  at a single bus of a three-phase network.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Three-phase, phase-to-phase and phase-to-ground faults")
		fmt.Println("    • Fault type comparison and governing case")
		fmt.Println("    • Impedance sweeps with plot export")
		fmt.Println("    • Batch cases from YAML, JSON or Excel with PDF reports")
		fmt.Println("    • Interactive form and HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gofault --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
