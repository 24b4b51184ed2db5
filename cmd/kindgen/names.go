package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"kindgen/internal/driver"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the identifier and feature flag derived for every node type",
	Args:  cobra.NoArgs,
	RunE:  runNames,
}

func init() {
	addConfigFlag(namesCmd)
	namesCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

type nameEntry struct {
	Text       string `json:"text" msgpack:"text"`
	Named      bool   `json:"named" msgpack:"named"`
	Ident      string `json:"ident" msgpack:"ident"`
	Flag       string `json:"flag" msgpack:"flag"`
	Occurrence int    `json:"occurrence" msgpack:"occurrence"`
}

type namesReport struct {
	Package string      `json:"package" msgpack:"package"`
	Prefix  string      `json:"prefix" msgpack:"prefix"`
	Nodes   []nameEntry `json:"nodes" msgpack:"nodes"`
	Flags   []string    `json:"flags" msgpack:"flags"`
}

func runNames(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	naming, err := driver.Names(cmd.Context(), cfg, timer)
	if err != nil {
		return err
	}
	opts := cfg.EmitOptions()
	prefix := opts.Prefix
	if prefix == "" {
		prefix = opts.TypeName
	}
	if prefix == "" {
		prefix = "NodeType"
	}
	report := buildNamesReport(cfg.Generator.Package, prefix, naming)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "msgpack":
		return msgpack.NewEncoder(out).Encode(report)
	}
	return renderNamesPretty(out, report)
}

func buildNamesReport(pkg, prefix string, naming *driver.Naming) namesReport {
	r := namesReport{Package: pkg, Prefix: prefix, Flags: naming.Flags}
	r.Nodes = make([]nameEntry, len(naming.Names))
	for i, n := range naming.Names {
		r.Nodes[i] = nameEntry{
			Text:       n.Text,
			Named:      n.Named,
			Ident:      n.Ident,
			Flag:       n.Flag,
			Occurrence: n.Occurrence,
		}
	}
	return r
}

// renderNamesPretty prints one aligned row per node type. Literals are
// measured in terminal cells so that wide runes keep the columns straight.
func renderNamesPretty(w io.Writer, r namesReport) error {
	header := []string{"LITERAL", "KIND", "CONSTANT", "FLAG"}
	rows := make([][]string, len(r.Nodes))
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for i, n := range r.Nodes {
		kind := "unnamed"
		if n.Named {
			kind = "named"
		}
		rows[i] = []string{displayLiteral(n.Text), kind, r.Prefix + n.Ident, n.Flag}
		for j, cell := range rows[i] {
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	line := func(cells []string, bold bool) error {
		var sb strings.Builder
		for j, cell := range cells {
			if j > 0 {
				sb.WriteString("  ")
			}
			if j == len(cells)-1 {
				sb.WriteString(cell)
			} else {
				sb.WriteString(runewidth.FillRight(cell, widths[j]))
			}
		}
		text := sb.String()
		if bold {
			text = headerColor.Sprint(text)
		}
		_, err := fmt.Fprintln(w, text)
		return err
	}
	if err := line(header, true); err != nil {
		return err
	}
	for _, row := range rows {
		if err := line(row, false); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d node types, %d flags\n", len(r.Nodes), len(r.Flags))
	return err
}

// displayLiteral makes blank and control-character literals visible.
func displayLiteral(s string) string {
	if s == "" || strings.TrimSpace(s) != s || strings.ContainsAny(s, "\t\n\r") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
