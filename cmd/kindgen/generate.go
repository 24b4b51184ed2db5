package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"kindgen/internal/driver"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the node-type enumeration from the schema",
	Long: `Generate loads the schema named in kindgen.toml, derives one identifier and
one feature flag per node type, and writes the Go source file. The feature
list in kindgen.toml is rewritten only with --rewrite-features or when the
REWRITE_FEATURES environment variable is set.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addConfigFlag(generateCmd)
	generateCmd.Flags().Bool("rewrite-features", false, "also synchronise the feature list in kindgen.toml")
	generateCmd.Flags().StringP("out", "o", "", "output file (default: [generator].output)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rewrite, err := cmd.Flags().GetBool("rewrite-features")
	if err != nil {
		return err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if out != "" {
		if out, err = filepath.Abs(out); err != nil {
			return err
		}
	}

	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	res, err := driver.Generate(cmd.Context(), cfg, driver.Options{
		RewriteFeatures: rewrite,
		Output:          out,
		Timer:           timer,
	})
	if res != nil {
		reportGenerate(cmd, res)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

func reportGenerate(cmd *cobra.Command, res *driver.Result) {
	verb := "unchanged"
	if res.Changed {
		verb = "wrote"
	}
	status(cmd, res.Changed, verb, fmt.Sprintf("%s (%d node types, %d flags)",
		relPath(res.Output), len(res.Names), len(res.Flags)))
	if res.Manifest != nil {
		verb = "unchanged"
		if res.Manifest.Changed {
			verb = "synced"
		}
		status(cmd, res.Manifest.Changed, verb, relPath(res.Manifest.Path))
	}
}
