package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/devutils/toolbelt/registry"
)

func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <tool-slug> [input]",
		Short: "Run a transformation tool",
		Long:  "Run one tool from the catalog. Input comes from the second argument,\nor from stdin when the argument is omitted.",
		Example: `  toolbelt run base64-encode "hello world"
  echo '{"a":1}' | toolbelt run json-prettify`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := registry.Default().ToolBySlug(args[0])
			if !ok {
				return fmt.Errorf("unknown tool: %s", args[0])
			}

			var input string
			if len(args) == 2 {
				input = args[1]
			} else {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				input = string(raw)
			}

			output, err := tool.Fn(input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
