package main

import (
	"os"

	"github.com/spf13/cobra"

	"kindgen/internal/project"
)

func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "path to kindgen.toml (default: search upwards from the working directory)")
}

// loadConfig honours --config, falling back to discovery from the working
// directory.
func loadConfig(cmd *cobra.Command) (*project.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return project.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return project.Discover(wd)
}
