package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofault/internal/diagram"
	"github.com/alexiusacademia/gofault/internal/fault"
	"github.com/spf13/cobra"
)

var (
	sweepType    string
	sweepField   string
	sweepVoltage string
	sweepZ1      string
	sweepZ2      string
	sweepZ0      string
	sweepFrom    string
	sweepTo      string
	sweepSteps   int
	sweepChart   bool
	sweepOutput  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate fault current over a range of one impedance",
	Long: `Evaluate a fault repeatedly while one sequence impedance varies
between --from and --to, holding the other inputs fixed.

The default sweeps Z0 for a phase-to-ground fault, showing how the
grounding impedance limits the fault current.

Examples:
  gofault sweep --voltage 220 --z1 0.05 --z2 0.05 --from 0.05 --to 1
  gofault sweep -t lll --field z1 -v 11 --from 0.1 --to 2 --steps 20 -o z1.png`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepType, "type", "t", "lg", "Fault type: lll, ll or lg")
	sweepCmd.Flags().StringVar(&sweepField, "field", "z0", "Impedance to sweep: z1, z2 or z0")
	sweepCmd.Flags().StringVarP(&sweepVoltage, "voltage", "v", "", "Line-to-line voltage VLL (kV) [required]")
	sweepCmd.Flags().StringVar(&sweepZ1, "z1", "", "Positive-sequence impedance Z1 (Ω)")
	sweepCmd.Flags().StringVar(&sweepZ2, "z2", "", "Negative-sequence impedance Z2 (Ω)")
	sweepCmd.Flags().StringVar(&sweepZ0, "z0", "", "Zero-sequence impedance Z0 (Ω)")
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "", "Start of the swept range (Ω) [required]")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "End of the swept range (Ω) [required]")
	sweepCmd.Flags().IntVarP(&sweepSteps, "steps", "n", 10, "Number of points including both ends")
	sweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Show ASCII bar chart")
	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "Export plot to file (png, svg, pdf)")

	sweepCmd.MarkFlagRequired("voltage")
	sweepCmd.MarkFlagRequired("from")
	sweepCmd.MarkFlagRequired("to")
}

func runSweep(cmd *cobra.Command, args []string) error {
	t, err := fault.ParseType(sweepType)
	if err != nil {
		return err
	}
	field, err := fault.ParseField(sweepField)
	if err != nil {
		return err
	}

	spec, err := fault.ParseSweep(t, field, sweepVoltage, sweepZ1, sweepZ2, sweepZ0, sweepFrom, sweepTo, sweepSteps)
	if err != nil {
		return err
	}
	points, err := fault.Sweep(spec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, fmt.Sprintf("%s SWEEP - %s", strings.ToUpper(field.String()), t.Description()))
	printInputs(out, points[0].Result)

	printSection(out, "RESULTS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  %s (Ω)\tI (A)\tI (kA)\tS (MVA)\t\n", strings.ToUpper(field.String()))
	for _, p := range points {
		fmt.Fprintf(w, "  %.4f\t%.2f\t%.3f\t%.2f\t\n", p.Value, p.Result.CurrentA, p.Result.CurrentKA, p.Result.PowerMVA)
	}
	w.Flush()
	fmt.Fprintln(out)

	if sweepChart {
		fmt.Fprint(out, diagram.DrawSweep(field, points))
		fmt.Fprintln(out)
	}

	if sweepOutput != "" {
		if err := diagram.ExportSweepPlot(t, field, points, sweepOutput); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Fprintf(out, "  Plot exported to: %s\n\n", sweepOutput)
	}
	return nil
}
