package main

import (
	"github.com/spf13/cobra"

	"kindgen/internal/driver"
)

var syncFeaturesCmd = &cobra.Command{
	Use:   "sync-features",
	Short: "Rewrite the generated feature list in kindgen.toml",
	Long: `Sync-features replaces the lines between the generated-features markers of
kindgen.toml with one entry per derived feature flag. The file is left
untouched when the list is already current. With --check nothing is written
and an outdated list is an error.`,
	Args: cobra.NoArgs,
	RunE: runSyncFeatures,
}

func init() {
	addConfigFlag(syncFeaturesCmd)
	syncFeaturesCmd.Flags().Bool("check", false, "report drift without writing")
}

func runSyncFeatures(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	res, err := driver.SyncFeatures(cmd.Context(), cfg, check, timer)
	if err != nil {
		return err
	}
	switch {
	case check:
		status(cmd, false, "up to date", relPath(res.Path))
	case res.Changed:
		status(cmd, true, "synced", relPath(res.Path))
	default:
		status(cmd, false, "unchanged", relPath(res.Path))
	}
	return nil
}
