package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/alexiusacademia/gofault/internal/cases"
	"github.com/alexiusacademia/gofault/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFile   string
	batchPDF    string
	batchXLSX   string
	batchAuthor string
	batchWatch  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a file of fault cases",
	Long: `Evaluate every case in a YAML, JSON or Excel (.xlsx) file.

YAML / JSON layout:
  project: Substation A
  cases:
    - name: bus 1
      type: lg
      voltage_kv: 220
      z1: 0.05
      z2: 0.05
      z0: 0.15

Excel layout: first sheet, header row, then one case per row with the
columns name, type, voltage_kv, z1, z2, z0.

An invalid case is reported and does not stop the others.

Examples:
  gofault batch --file cases.yaml
  gofault batch -f cases.xlsx --pdf report.pdf --xlsx results.xlsx
  gofault batch -f cases.yaml --watch`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to case file (.yaml, .json, .xlsx) [required]")
	batchCmd.Flags().StringVar(&batchPDF, "pdf", "", "Write a PDF calculation report")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write results to an Excel workbook")
	batchCmd.Flags().StringVar(&batchAuthor, "author", "", "Author shown on the PDF report")
	batchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "Re-evaluate whenever the case file changes")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	set, err := cases.Load(batchFile)
	if err != nil {
		return fmt.Errorf("loading cases: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := evaluateBatch(out, set, cases.Evaluate(set)); err != nil {
		return err
	}

	if !batchWatch {
		return nil
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cases.Watch(ctx, batchFile, func(set *cases.Set, outcomes []cases.Outcome) {
		if err := evaluateBatch(out, set, outcomes); err != nil {
			slog.Error("batch: writing outputs failed", "err", err)
		}
	})
}

// evaluateBatch prints the outcome table and writes the requested reports
func evaluateBatch(out io.Writer, set *cases.Set, outcomes []cases.Outcome) error {
	printBatchTable(out, set, outcomes)

	if batchPDF != "" {
		f, err := os.Create(batchPDF)
		if err != nil {
			return err
		}
		err = report.Write(f, report.Header{Project: set.Project, Author: batchAuthor, Notes: set.Description}, outcomes)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing PDF report: %w", err)
		}
		fmt.Fprintf(out, "  PDF report written to: %s\n", batchPDF)
	}

	if batchXLSX != "" {
		if err := cases.WriteXLSX(batchXLSX, set, outcomes); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(out, "  Workbook written to: %s\n", batchXLSX)
	}
	return nil
}

func printBatchTable(out io.Writer, set *cases.Set, outcomes []cases.Outcome) {
	printTitle(out, "BATCH SHORT-CIRCUIT CALCULATION")
	if set.Project != "" {
		fmt.Fprintf(out, "  Project: %s\n\n", set.Project)
	}

	printSection(out, "RESULTS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Case\tType\tVLL (kV)\tI (kA)\tS (MVA)\tStatus")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "  %s\t%s\t%s\t-\t-\t⚠ %v\n", o.Case.Name, o.Case.Type, o.Case.VoltageKV, o.Err)
			continue
		}
		r := o.Result
		fmt.Fprintf(w, "  %s\t%s\t%.3f\t%.3f\t%.2f\t✓\n", o.Case.Name, r.Type, r.Input.LineVoltageKV, r.CurrentKA, r.PowerMVA)
	}
	w.Flush()
	fmt.Fprintln(out)

	failed := cases.Failed(outcomes)
	fmt.Fprintf(out, "  %d case(s), %d computed, %d invalid\n\n", len(outcomes), len(outcomes)-failed, failed)
}
