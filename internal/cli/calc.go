package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stigoleg/timecalc/internal/calc"
)

// ErrInvalidInput is returned when a sum input cannot be parsed. The
// field-specific message has already been printed.
var ErrInvalidInput = errors.New("invalid input")

func (a *App) diffCmd() *cobra.Command {
	var (
		start   string
		end     string
		brk     string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Worked time between a start and an end time",
		Long: `Compute the stay between --start and --end and the worked time after
subtracting --break minutes. An end before the start is taken to be on the
next day. A break longer than the stay is capped at the stay.

Example:
  timecalc diff --start 09:00 --end 17:30 --break 60
  timecalc diff --start 22:00 --end 06:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := calc.ComputeDiff(start, end, brk)
			if jsonOut {
				d, ok := calc.Difference(start, end, brk)
				payload := struct {
					calc.Outcome
					Detail *calc.Diff `json:"detail,omitempty"`
				}{Outcome: out}
				if ok {
					payload.Detail = &d
				}
				return writeJSON(cmd.OutOrStdout(), payload)
			}
			printOutcome(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start time HH:MM")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End time HH:MM")
	cmd.Flags().StringVarP(&brk, "break", "b", "", "Break in minutes")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}

func (a *App) sumCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sum [A] [B]",
		Short: "Total of two durations",
		Long: `Add two durations written as "h:mm" or plain minutes. A missing
duration counts as zero.

Example:
  timecalc sum 1:30 45
  timecalc sum 0:45 90`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in [2]string
			copy(in[:], args)

			out := calc.ComputeSum(in[0], in[1])
			if jsonOut {
				s, err := calc.Add(in[0], in[1])
				payload := struct {
					calc.Outcome
					Detail *calc.Sum `json:"detail,omitempty"`
				}{Outcome: out}
				if err == nil {
					payload.Detail = &s
				}
				if err := writeJSON(cmd.OutOrStdout(), payload); err != nil {
					return err
				}
			} else {
				printOutcome(cmd.OutOrStdout(), out)
			}

			if out.Failed() {
				return fmt.Errorf("%w: %s", ErrInvalidInput, out.Error)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}

// printOutcome writes the label, main and detail lines, then the error text if any.
func printOutcome(w io.Writer, out calc.Outcome) {
	fmt.Fprintln(w, colorLabel.Sprint(out.Result.Label))
	fmt.Fprintln(w, "  "+colorMain.Sprint(out.Result.Main))
	fmt.Fprintln(w, "  "+colorMuted.Sprint(out.Result.Sub))
	if out.Error != "" {
		fmt.Fprintln(w, "  "+colorError.Sprint(out.Error))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
