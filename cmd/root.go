package cmd

import (
	"github.com/mcpv/episcreen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "episcreen",
	Short: "Rule-based seizure questionnaire scorer",
	Long: "Episcreen classifies free-text seizure questionnaire answers into clinical flags,\n" +
		"maps flags and billing codes to diagnostic categories, and reports their agreement.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite run-history file (overrides EPISCREEN_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the run-history path using --db flag (highest
// priority), then EPISCREEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
