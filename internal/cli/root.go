package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "flowmap",
		Short:        "Flowmap — generate user-flow diagrams from spec documents",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .flowmap/logs/flowmap.log")

	cmd.AddCommand(generateCmd(&debug))
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(projectsCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// exactArgs is cobra.ExactArgs plus the usage block: SilenceUsage keeps
// runtime errors quiet, but a malformed invocation should still show
// the user how to call the command.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return err
		}
		return nil
	}
}
