// Package cli implements the vocalis command-line interface.
// It wires the driven adapters (SQLite store, filesystem walker, OS
// opener, TOML config) into the core services and exposes them as
// cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "vocalis",
	Short: "Voice-assistant file catalog",
	Long: `Vocalis maintains a persistent catalog of your files and folders and
resolves spoken-style queries against it: fuzzy ranked search, open
with the OS default handler, folder listing, and a disambiguation
dialogue when several files match.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.vocalis)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "catalog data directory (default ~/.vocalis/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
