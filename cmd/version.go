package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/three-bundles/update-index/internal/config"
	"github.com/three-bundles/update-index/internal/utils"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show update-index version information",
	Long:  `Show update-index version information`,
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("update-index version %s\n", utils.GetToolVersion())
		cf := viper.ConfigFileUsed()
		if cf == "" {
			cf = fmt.Sprintf("No config.json file found in '%s'. Using default settings", config.ConfigDir)
		}
		fmt.Printf("Configuration file used: %s\n", cf)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
