package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/registry"
	"github.com/devutils/toolbelt/services/search"
)

func NewSearchCmd() *cobra.Command {
	var limit int
	var itemType string
	var category string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the tool catalog",
		Example: `  toolbelt search base64
  toolbelt search "snake case" --type tool
  toolbelt search encode --category encoding --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := search.New(logger.New(), registry.Default())
			results := engine.Search(strings.Join(args, " "), search.Options{
				Limit:    limit,
				Type:     search.Type(itemType),
				Category: category,
			})

			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no results")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tTYPE\tSLUG\tNAME")
			for _, result := range results {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", result.Score, result.Type, result.Slug, result.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")
	cmd.Flags().StringVar(&itemType, "type", "all", "restrict to 'tool' or 'category'")
	cmd.Flags().StringVar(&category, "category", "", "restrict to tools in one category slug")

	return cmd
}
