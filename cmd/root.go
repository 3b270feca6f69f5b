package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/three-bundles/update-index/internal"
	"github.com/three-bundles/update-index/internal/app/cli"
	"github.com/three-bundles/update-index/internal/config"
)

// RootCmd represents the base command. Called without subcommands it updates the bundle index in the working directory.
var RootCmd = &cobra.Command{
	Use:   "update-index",
	Short: "Update the resource index of an asset bundle",
	Long: `update-index scans the resource directories of an asset bundle (material, geometry, mesh, object, scene,
shader, sound, texture, js) and writes the bundle index file index.js listing all resources found.
An existing index is merged: sections of resources no longer present are removed, others are replaced,
and the revision is incremented. Run it from the bundle's root directory.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.InitLogging()
	},
	Run: executeUpdate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("directory", "d", "", "Bundle directory. Defaults to the working directory")
	RootCmd.PersistentFlags().StringP("output", "o", "", "Name of the index file, relative to the bundle directory (default \"index.js\")")
	RootCmd.PersistentFlags().String("loglevel", "", "Enable logging at the given level (debug, info, warn, error, off)")
	_ = RootCmd.MarkPersistentFlagDirname("directory")
	_ = viper.BindPFlag(config.KeyOutput, RootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(config.KeyLogLevel, RootCmd.PersistentFlags().Lookup("loglevel"))

	RootCmd.Flags().String("name", "", "Bundle name. Defaults to the name of the bundle directory")
	RootCmd.Flags().Bool("compact", false, "Write the index as compact JSON instead of pretty-printed")
	RootCmd.Flags().Bool("lock", false, "Hold a lock file while updating the index")
	_ = viper.BindPFlag(config.KeyCompact, RootCmd.Flags().Lookup("compact"))
	_ = viper.BindPFlag(config.KeyLock, RootCmd.Flags().Lookup("lock"))
}

// target reads the persistent flags identifying the bundle and its index file
func target(cmd *cobra.Command) cli.Target {
	return cli.Target{
		Dir:    cmd.Flag("directory").Value.String(),
		Output: viper.GetString(config.KeyOutput),
	}
}

func executeUpdate(cmd *cobra.Command, args []string) {
	opts := cli.UpdateOptions{
		Target:  target(cmd),
		Name:    cmd.Flag("name").Value.String(),
		Compact: viper.GetBool(config.KeyCompact),
		Lock:    viper.GetBool(config.KeyLock),
	}
	_, err := cli.Update(context.Background(), opts)
	if err != nil {
		os.Exit(1)
	}
}
