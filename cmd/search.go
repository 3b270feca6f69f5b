package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/three-bundles/update-index/internal/app/cli"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the resources listed in the bundle index",
	Long: `Search the resources listed in the bundle index. The query uses bleve query string syntax and may refer to the
fields category, path, base and ext, e.g. "wood", "category:texture" or "+base:wood +ext:dds".`,
	Args: cobra.MinimumNArgs(1),
	Run:  executeSearch,
}

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of results (default 100)")
}

func executeSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	err := cli.Search(context.Background(), target(cmd), strings.Join(args, " "), limit)
	if err != nil {
		os.Exit(1)
	}
}
