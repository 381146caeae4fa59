// Package cli wires the toolbelt commands: an HTTP server plus offline
// search, list and run commands over the same registry the server uses.
package cli

import "github.com/spf13/cobra"

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "toolbelt",
		Short:        "Text and data transformation toolbox",
		Long:         "toolbelt bundles encoders, hashes, naming-convention converters,\nciphers, formatters and generators behind one searchable catalog,\navailable over HTTP or directly from the terminal.",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		NewServeCmd(),
		NewSearchCmd(),
		NewListCmd(),
		NewRunCmd(),
		NewVersionCmd(),
	)

	return cmd
}
