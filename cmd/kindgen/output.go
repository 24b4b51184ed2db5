package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kindgen/internal/observ"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	wroteColor   = color.New(color.FgGreen)
	skippedColor = color.New(color.FgYellow)
	headerColor  = color.New(color.Bold)
)

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func applyColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}

// status prints "<verb> <path>" unless --quiet is set; changed selects
// the colour of the verb.
func status(cmd *cobra.Command, changed bool, verb, path string) {
	if quiet(cmd) {
		return
	}
	c := skippedColor
	if changed {
		c = wroteColor
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Sprint(verb), path)
}

// newTimer returns a Timer when --timings is set, nil otherwise.
func newTimer(cmd *cobra.Command) *observ.Timer {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !on {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(cmd *cobra.Command, t *observ.Timer) {
	if t == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), t.Summary())
}
