package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofault/internal/diagram"
	"github.com/alexiusacademia/gofault/internal/fault"
	"github.com/spf13/cobra"
)

var (
	// Fault inputs, kept as text so comma decimals are accepted
	computeType    string
	computeVoltage string
	computeZ1      string
	computeZ2      string
	computeZ0      string

	// Output options
	computeJSON    bool
	computeDiagram bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Calculate the short-circuit current for one fault type",
	Long: `Calculate the fault current and fault power at a bus for a single
fault type.

Formulas (VLL in volts, impedances in ohms):
  LLL  I = VLL / (√3·Z1)
  LL   I = √3·VLL / (2·(Z1+Z2))
  LG   I = √3·VLL / (Z1+Z2+Z0)
  S    = √3·VLL·I

Z2 is required for LL and LG faults, Z0 for LG faults only.

Examples:
  # Three-phase fault on a 220 kV bus
  gofault compute --type lll --voltage 220 --z1 0.05

  # Phase-to-ground fault, comma decimals
  gofault compute -t lg -v 220 --z1 0,05 --z2 0,05 --z0 0,15

  # Machine-readable output
  gofault compute -t ll -v 13.8 --z1 0.4 --z2 0.4 --json`,
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVarP(&computeType, "type", "t", "lll", "Fault type: lll, ll or lg")
	computeCmd.Flags().StringVarP(&computeVoltage, "voltage", "v", "", "Line-to-line voltage VLL (kV) [required]")
	computeCmd.Flags().StringVar(&computeZ1, "z1", "", "Positive-sequence impedance Z1 (Ω) [required]")
	computeCmd.Flags().StringVar(&computeZ2, "z2", "", "Negative-sequence impedance Z2 (Ω) [LL, LG]")
	computeCmd.Flags().StringVar(&computeZ0, "z0", "", "Zero-sequence impedance Z0 (Ω) [LG]")

	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "Print the result as JSON")
	computeCmd.Flags().BoolVar(&computeDiagram, "diagram", false, "Show the sequence network connection")

	computeCmd.MarkFlagRequired("voltage")
	computeCmd.MarkFlagRequired("z1")
}

func runCompute(cmd *cobra.Command, args []string) error {
	t, err := fault.ParseType(computeType)
	if err != nil {
		return err
	}

	res, err := fault.Compute(t, computeVoltage, computeZ1, computeZ2, computeZ0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if computeJSON {
		return printJSON(out, res)
	}

	printResult(out, res)
	if computeDiagram {
		fmt.Fprint(out, diagram.DrawSequenceNetwork(t))
		fmt.Fprintln(out)
	}
	return nil
}
