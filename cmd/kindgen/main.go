package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kindgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kindgen",
	Short: "Generate feature-gated Go node-type enums from tree-sitter schemas",
	Long: `kindgen reads a tree-sitter node-types.json and writes a Go enumeration of
its node types, a parse function and a String method, each member gated by
its own feature flag. The feature list in kindgen.toml is kept in step with
the schema.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(syncFeaturesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
}

// main runs the root command and exits with status 1 on error.
func main() {
	rootCmd.Version = version.Version
	err := rootCmd.Execute()
	closeTracing()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// setupRun applies the global flags before any sub-command runs.
func setupRun(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := applyColorMode(mode); err != nil {
		return err
	}
	return setupTracing(cmd)
}
