package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devutils/toolbelt/config"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the toolbelt version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "toolbelt %s\n", cfg.GetVersion())
			return nil
		},
	}
}
