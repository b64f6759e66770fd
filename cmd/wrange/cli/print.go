package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caballa/wrapped-intervals/classical"
	"github.com/caballa/wrapped-intervals/lattice"
)

func newPrintCommand() *cobra.Command {
	var width uint8
	var withClassical bool
	cmd := &cobra.Command{
		Use:   "print <v>",
		Short: "Print a value spec's wrapped form, optionally alongside its classical baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWidth(width)
			if err != nil {
				return err
			}
			v, err := parseValue(w, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, v)
			if !withClassical {
				return nil
			}
			fmt.Fprintln(out, "signed baseline:  ", classicalOf(w, classical.Signed, v))
			fmt.Fprintln(out, "unsigned baseline:", classicalOf(w, classical.Unsigned, v))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().BoolVar(&withClassical, "classical", false, "also print the classical (non-wrapping) baseline of the value")
	return cmd
}

// classicalOf lifts a wrapped value into the classical domain by joining
// the classical singleton of every machine int it contains, exercised here
// rather than inside package classical itself since this lift is only
// meaningful as a display/comparison aid for the CLI, not a domain operator.
func classicalOf(w lattice.Width, signed classical.Signedness, v lattice.Wrapped) classical.Interval {
	if v.IsBot() {
		return classical.Bot(w, signed)
	}
	if v.IsTop() {
		return classical.Top(w, signed)
	}
	split := lattice.SSplit
	if signed == classical.Signed {
		split = lattice.NSplit
	}
	result := classical.Bot(w, signed)
	for _, piece := range split(v) {
		lo := classical.FromMachineInt(w, signed, piece.Lb())
		hi := classical.FromMachineInt(w, signed, piece.Ub())
		result = result.Join(classical.FromBounds(w, signed, lo.Low(), hi.High()))
	}
	return result
}
