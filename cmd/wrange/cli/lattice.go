package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caballa/wrapped-intervals/lattice"
)

func newJoinCommand() *cobra.Command {
	var width uint8
	cmd := &cobra.Command{
		Use:   "join <a> <b>",
		Short: "Evaluate the binary join s ⊔ t",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, t, err := parsePair(width, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lattice.Join(s, t))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	return cmd
}

func newMeetCommand() *cobra.Command {
	var width uint8
	cmd := &cobra.Command{
		Use:   "meet <a> <b>",
		Short: "Evaluate the binary meet s ⊓ t",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, t, err := parsePair(width, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lattice.Meet(s, t))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	return cmd
}

func newWidenCommand() *cobra.Command {
	var width uint8
	var strategyName string
	var jumpFile string
	cmd := &cobra.Command{
		Use:   "widen <prev> <curr>",
		Short: "Evaluate widen(prev, curr) under the given strategy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, prev, curr, err := parsePair(width, args)
			if err != nil {
				return err
			}
			strategy, err := parseStrategy(strategyName)
			if err != nil {
				return err
			}
			jumps := lattice.EmptyJumpSet(w)
			if jumpFile != "" {
				jumps, err = lattice.LoadJumpSet(jumpFile)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), lattice.Widen(prev, curr, jumps, strategy))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&width, "width", 8, "bit width (1, 8, 16, 32, 64)")
	cmd.Flags().StringVar(&strategyName, "strategy", "jumpset", "none|classical|jumpset")
	cmd.Flags().StringVar(&jumpFile, "jump-file", "", "YAML landmark file for the jumpset strategy")
	return cmd
}

func parseStrategy(name string) (lattice.WideningStrategy, error) {
	switch name {
	case "none":
		return lattice.None, nil
	case "classical":
		return lattice.Classical, nil
	case "jumpset":
		return lattice.JumpSetStrategy, nil
	}
	return 0, fmt.Errorf("unknown widening strategy %q", name)
}

func parsePair(width uint8, args []string) (lattice.Width, lattice.Wrapped, lattice.Wrapped, error) {
	w, err := parseWidth(width)
	if err != nil {
		return 0, lattice.Wrapped{}, lattice.Wrapped{}, err
	}
	a, err := parseValue(w, args[0])
	if err != nil {
		return 0, lattice.Wrapped{}, lattice.Wrapped{}, err
	}
	b, err := parseValue(w, args[1])
	if err != nil {
		return 0, lattice.Wrapped{}, lattice.Wrapped{}, err
	}
	return w, a, b, nil
}
