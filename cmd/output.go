package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gofault/internal/diagram"
	"github.com/alexiusacademia/gofault/internal/fault"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)
}

func printSection(out io.Writer, name string) {
	fmt.Fprintf(out, "%s:\n", name)
	fmt.Fprintln(out, lightRule)
}

// printInputs prints the validated inputs used by the fault type
func printInputs(out io.Writer, res *fault.Result) {
	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fault type:\t%s\n", res.Type.Description())
	fmt.Fprintf(w, "  Line-to-line voltage (VLL):\t%.3f kV\n", res.Input.LineVoltageKV)
	fmt.Fprintf(w, "  Positive-sequence Z1:\t%.4f Ω\n", res.Input.Z1)
	if res.Type.NeedsZ2() {
		fmt.Fprintf(w, "  Negative-sequence Z2:\t%.4f Ω\n", res.Input.Z2)
	}
	if res.Type.NeedsZ0() {
		fmt.Fprintf(w, "  Zero-sequence Z0:\t%.4f Ω\n", res.Input.Z0)
	}
	w.Flush()
	fmt.Fprintln(out)
}

// printResult prints the full report for one calculation
func printResult(out io.Writer, res *fault.Result) {
	printTitle(out, "SHORT-CIRCUIT CALCULATION - "+res.Type.Description())
	printInputs(out, res)

	printSection(out, "FAULT CURRENT")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Icc:\t%.2f A\n", res.CurrentA)
	fmt.Fprintf(w, "  Icc:\t%.3f kA\n", res.CurrentKA)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("FAULT POWER", []string{
		fmt.Sprintf("Scc = √3·VLL·Icc = %.2f MVA", res.PowerMVA),
	}))
	fmt.Fprintln(out)
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
