package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devutils/toolbelt/api"
	"github.com/devutils/toolbelt/config"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Start the toolbelt API server. Routes under /api are rate limited\nper client; the tier is picked by RATE_LIMIT_TIER or the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return api.Run(cmd.Context(), cfg)
		},
	}
}
