package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caballa/wrapped-intervals/ops"
)

var arithOps = map[string]ops.ArithOp{
	"add": ops.Add, "sub": ops.Sub, "mul": ops.Mul,
	"sdiv": ops.SDiv, "udiv": ops.UDiv, "srem": ops.SRem, "urem": ops.URem,
}

var bitOps = map[string]ops.BitOp{
	"and": ops.And, "or": ops.Or, "xor": ops.Xor,
	"shl": ops.Shl, "lshr": ops.LShr, "ashr": ops.AShr,
}

var castOps = map[string]ops.CastOp{
	"trunc": ops.Trunc, "sext": ops.SExt, "zext": ops.ZExt, "bitcast": ops.BitCast,
}

func newArithCommand() *cobra.Command {
	var width uint8
	var op string
	cmd := &cobra.Command{
		Use:   "arith <a> <b>",
		Short: "Evaluate an arithmetic transfer function: add, sub, mul, sdiv, udiv, srem, urem",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, b, err := parsePair(width, args)
			if err != nil {
				return err
			}
			o, ok := arithOps[op]
			if !ok {
				return fmt.Errorf("unknown arith op %q", op)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops.ArithBinOp(o, a, b))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().StringVar(&op, "op", "add", "add|sub|mul|sdiv|udiv|srem|urem")
	return cmd
}

func newBitCommand() *cobra.Command {
	var width uint8
	var op string
	cmd := &cobra.Command{
		Use:   "bit <a> <b>",
		Short: "Evaluate a bitwise transfer function: and, or, xor, shl, lshr, ashr",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, b, err := parsePair(width, args)
			if err != nil {
				return err
			}
			o, ok := bitOps[op]
			if !ok {
				return fmt.Errorf("unknown bit op %q", op)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops.BitBinOp(o, a, b))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().StringVar(&op, "op", "and", "and|or|xor|shl|lshr|ashr")
	return cmd
}

func newCastCommand() *cobra.Command {
	var width uint8
	var targetWidth uint8
	var op string
	cmd := &cobra.Command{
		Use:   "cast <v>",
		Short: "Evaluate a cast transfer function: trunc, sext, zext, bitcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWidth(width)
			if err != nil {
				return err
			}
			target, err := parseWidth(targetWidth)
			if err != nil {
				return err
			}
			v, err := parseValue(w, args[0])
			if err != nil {
				return err
			}
			o, ok := castOps[op]
			if !ok {
				return fmt.Errorf("unknown cast op %q", op)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops.Cast(o, v, target))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "source bit width")
	cmd.Flags().Uint8Var(&targetWidth, "target-width", 16, "target bit width")
	cmd.Flags().StringVar(&op, "op", "zext", "trunc|sext|zext|bitcast")
	return cmd
}
