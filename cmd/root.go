package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagPlain bool
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "repoclean",
	Short: "A CLI tool for auditing and cleaning up GitHub repositories",
	Long: `repoclean fetches your commits by date, deletes accidental commits after
a safety check, and bulk-updates repository descriptions and visibility.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable colors and table borders")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
