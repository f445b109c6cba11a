package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gofault/internal/diagram"
	"github.com/alexiusacademia/gofault/internal/fault"
	"github.com/spf13/cobra"
)

var (
	compareVoltage string
	compareZ1      string
	compareZ2      string
	compareZ0      string
	compareOutput  string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all fault types at one bus",
	Long: `Calculate every fault type the given impedances allow and report
the governing (highest current) case.

Fault types whose impedances are missing are listed as skipped:
without Z2 only LLL is computed, without Z0 LG is skipped.

Examples:
  gofault compare --voltage 220 --z1 0.05 --z2 0.05 --z0 0.15
  gofault compare -v 13,8 --z1 0,4 --z2 0,4 --z0 0,1 -o compare.png`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareVoltage, "voltage", "v", "", "Line-to-line voltage VLL (kV) [required]")
	compareCmd.Flags().StringVar(&compareZ1, "z1", "", "Positive-sequence impedance Z1 (Ω) [required]")
	compareCmd.Flags().StringVar(&compareZ2, "z2", "", "Negative-sequence impedance Z2 (Ω)")
	compareCmd.Flags().StringVar(&compareZ0, "z0", "", "Zero-sequence impedance Z0 (Ω)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Export bar chart to file (png, svg, pdf)")

	compareCmd.MarkFlagRequired("voltage")
	compareCmd.MarkFlagRequired("z1")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmp, err := fault.Compare(compareVoltage, compareZ1, compareZ2, compareZ0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "FAULT TYPE COMPARISON")

	printSection(out, "RESULTS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Type\tI (kA)\tS (MVA)\tI / I(LLL)")
	for _, r := range cmp.Results {
		fmt.Fprintf(w, "  %s\t%.3f\t%.2f\t%.3f\n", r.Type, r.CurrentKA, r.PowerMVA, cmp.Ratio(r))
	}
	w.Flush()
	fmt.Fprintln(out)

	if len(cmp.Skipped) > 0 {
		printSection(out, "SKIPPED")
		for _, s := range cmp.Skipped {
			fmt.Fprintf(out, "  %s: %v\n", s.Type, s)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, diagram.DrawCurrentBars(cmp.Results))
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING FAULT", []string{
		cmp.Governing.Type.Description(),
		fmt.Sprintf("Icc = %.3f kA", cmp.Governing.CurrentKA),
		fmt.Sprintf("Scc = %.2f MVA", cmp.Governing.PowerMVA),
	}))
	fmt.Fprintln(out)

	if compareOutput != "" {
		if err := diagram.ExportComparisonChart(cmp.Results, compareOutput); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Fprintf(out, "  Chart exported to: %s\n\n", compareOutput)
	}
	return nil
}
