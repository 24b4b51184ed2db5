package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"kindgen/internal/emit"
	"kindgen/internal/project"
	"kindgen/internal/version"
)

// buildReport describes the binary and, on request, the defaults it fills
// into a kindgen.toml that leaves them out.
type buildReport struct {
	Tool     string             `json:"tool"`
	Version  string             `json:"version"`
	Go       string             `json:"go"`
	Commit   string             `json:"commit,omitempty"`
	Built    string             `json:"built,omitempty"`
	Defaults *generatorDefaults `json:"defaults,omitempty"`
}

type generatorDefaults struct {
	Type          string `json:"type"`
	CatchAll      string `json:"catch_all"`
	RuntimeImport string `json:"runtime_import"`
	Output        string `json:"output"`
}

var (
	versionFormat   string
	versionHash     bool
	versionDate     bool
	versionDefaults bool
	versionFull     bool
)

func init() {
	f := versionCmd.Flags()
	f.StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	f.BoolVar(&versionHash, "hash", false, "include the git commit")
	f.BoolVar(&versionDate, "date", false, "include the build date")
	f.BoolVar(&versionDefaults, "defaults", false, "include the generator defaults")
	f.BoolVar(&versionFull, "full", false, "include everything")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show kindgen build information and generator defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rep := newBuildReport(versionHash || versionFull, versionDate || versionFull, versionDefaults || versionFull)
		switch strings.ToLower(versionFormat) {
		case "pretty":
			writeBuildReport(cmd.OutOrStdout(), rep)
			return nil
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func newBuildReport(hash, date, defaults bool) buildReport {
	rep := buildReport{Tool: "kindgen", Version: strings.TrimSpace(version.Version), Go: runtime.Version()}
	if rep.Version == "" {
		rep.Version = "dev"
	}
	if hash {
		rep.Commit = orUnknown(version.Commit())
	}
	if date {
		rep.Built = orUnknown(strings.TrimSpace(version.BuildDate))
	}
	if defaults {
		rep.Defaults = &generatorDefaults{
			Type:          emit.DefaultTypeName,
			CatchAll:      emit.DefaultCatchAll,
			RuntimeImport: emit.DefaultRuntimeImport,
			Output:        project.DefaultOutput,
		}
	}
	return rep
}

func writeBuildReport(out io.Writer, rep buildReport) {
	fmt.Fprintf(out, "kindgen %s (%s)\n", version.Colored(rep.Version), rep.Go)
	if rep.Commit != "" {
		fmt.Fprintf(out, "commit:  %s\n", rep.Commit)
	}
	if rep.Built != "" {
		fmt.Fprintf(out, "built:   %s\n", rep.Built)
	}
	if d := rep.Defaults; d != nil {
		fmt.Fprintf(out, "type:    %s\n", d.Type)
		fmt.Fprintf(out, "feature: %s (catch-all)\n", d.CatchAll)
		fmt.Fprintf(out, "runtime: %s\n", d.RuntimeImport)
		fmt.Fprintf(out, "output:  %s\n", d.Output)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
