package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gofault/internal/fault"
	"github.com/alexiusacademia/gofault/internal/form"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Interactive calculator form",
	Long: `Open an interactive form pre-filled with an example 220 kV bus.

Commands:
  type lll|ll|lg   select the fault type
  v <kV>           set the line-to-line voltage
  z1|z2|z0 <Ω>     set a sequence impedance
  calc             compute with the current fields
  reset            clear all fields and the last result
  show             print the current fields
  help             list commands
  quit             leave the form

Example session:
  > type lg
  > z0 0,2
  > calc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd.InOrStdin(), cmd.OutOrStdout(), form.New())
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// runForm reads commands line by line until quit or end of input
func runForm(in io.Reader, out io.Writer, f *form.Form) error {
	fmt.Fprintln(out, "Short-circuit calculator form. Type 'help' for commands.")
	showForm(out, f)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")

		switch cmd {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(out, "commands: type, v, z1, z2, z0, calc, reset, show, quit")
		case "show":
			showForm(out, f)
		case "type":
			t, err := fault.ParseType(arg)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			f.Type = t
		case "v", "voltage":
			f.Set(fault.FieldVoltage, arg)
		case "z1", "z2", "z0":
			field, _ := fault.ParseField(cmd)
			f.Set(field, arg)
		case "calc", "compute":
			res, err := f.Compute()
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "%s: Icc = %.3f kA (%.2f A), Scc = %.2f MVA\n",
				res.Type.Description(), res.CurrentKA, res.CurrentA, res.PowerMVA)
		case "reset", "clear":
			f.Reset()
			fmt.Fprintln(out, "Form cleared.")
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

func showForm(out io.Writer, f *form.Form) {
	fmt.Fprintf(out, "  type=%s  VLL=%q kV  Z1=%q  Z2=%q  Z0=%q\n", f.Type, f.VoltageKV, f.Z1, f.Z2, f.Z0)
}
