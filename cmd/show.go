package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/three-bundles/update-index/internal/app/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a summary of the bundle index",
	Long:  `Show name, revision and the number of resources per category recorded in the bundle index.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := cli.Show(context.Background(), target(cmd))
		if err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
