package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devutils/toolbelt/registry"
)

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List categories, or the tools in one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(w, "SLUG\tNAME\tTOOLS\tDESCRIPTION")
				for _, category := range reg.Categories() {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
						category.Slug, category.Name, len(reg.ToolsByCategory(category.ID)), category.Description)
				}
				return w.Flush()
			}

			category, ok := reg.CategoryBySlug(args[0])
			if !ok {
				return fmt.Errorf("unknown category: %s", args[0])
			}

			fmt.Fprintln(w, "SLUG\tNAME\tDESCRIPTION")
			for _, tool := range reg.ToolsByCategory(category.ID) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", tool.Slug, tool.Name, tool.Description)
			}
			return w.Flush()
		},
	}
}
