package cmd

import (
	"github.com/spf13/cobra"
)

// Execute runs the tweetcraft command tree. version is stamped at build time.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tweetcraft",
		Short:        "LLM-backed tweet generation service",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(version))
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRandomCmd())

	return rootCmd
}
