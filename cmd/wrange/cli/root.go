// Package cli wires up the wrange demo CLI: one subcommand per core
// operation of the wrapped interval domain, so the domain's behavior can
// be poked at from a shell the way the teacher exposes its own analysis
// pipeline through cobra-free flags in cmd/main.go — here built on
// github.com/spf13/cobra and github.com/spf13/pflag instead, the stack
// the rest of the retrieval pack's CLIs (Notation-gscanner, roach88-nysm)
// use for exactly this kind of subcommand tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the wrange command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrange",
		Short: "wrange - inspect the wrapped interval domain from a shell",
		Long: `wrange evaluates one operation of the wrapped (signedness-agnostic)
interval domain over fixed-width machine integers and prints the result,
for interactively exploring the domain's lattice and transfer functions.`,
	}

	cmd.AddCommand(newJoinCommand())
	cmd.AddCommand(newMeetCommand())
	cmd.AddCommand(newWidenCommand())
	cmd.AddCommand(newArithCommand())
	cmd.AddCommand(newBitCommand())
	cmd.AddCommand(newCastCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newFilterCommand())
	cmd.AddCommand(newPrintCommand())

	return cmd
}
