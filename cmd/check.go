package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/three-bundles/update-index/internal/app/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the bundle index for consistency",
	Long: `Check that the bundle index has the expected structure, that every listed resource exists and has a supported
extension, and report resources present in the bundle but missing from the index.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := cli.Check(context.Background(), target(cmd))
		if err != nil {
			cli.Stderrf("check index failed")
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
