package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caballa/wrapped-intervals/ops"
)

var predicates = map[string]ops.Predicate{
	"eq": ops.EQ, "ne": ops.NE,
	"ult": ops.ULT, "ule": ops.ULE, "ugt": ops.UGT, "uge": ops.UGE,
	"slt": ops.SLT, "sle": ops.SLE, "sgt": ops.SGT, "sge": ops.SGE,
}

func parsePredicate(name string) (ops.Predicate, error) {
	p, ok := predicates[name]
	if !ok {
		return 0, fmt.Errorf("unknown predicate %q", name)
	}
	return p, nil
}

func newCompareCommand() *cobra.Command {
	var width uint8
	var predName string
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Evaluate the three-valued comparison pred(a, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, b, err := parsePair(width, args)
			if err != nil {
				return err
			}
			pred, err := parsePredicate(predName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops.Compare(pred, a, b))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().StringVar(&predName, "pred", "eq", "eq|ne|ult|ule|ugt|uge|slt|sle|sgt|sge")
	return cmd
}

func newFilterCommand() *cobra.Command {
	var width uint8
	var predName string
	cmd := &cobra.Command{
		Use:   "filter <self> <other>",
		Short: "Narrow self to the subset consistent with pred(self, other) having held",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, self, other, err := parsePair(width, args)
			if err != nil {
				return err
			}
			pred, err := parsePredicate(predName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops.FilterSigma(pred, self, other))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().StringVar(&predName, "pred", "eq", "eq|ne|ult|ule|ugt|uge|slt|sle|sgt|sge")
	return cmd
}
