// Package emit writes the Go source of a node-type enumeration: the type
// and its constants, the parse function, and the String method, all gated
// per constant by a feature flag resolved through package nodekind.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"kindgen/internal/diag"
)

// Header is the first line of every generated file.
const Header = "// Code generated by kindgen. DO NOT EDIT."

// Emit renders kinds and writes the formatted file to w. Nothing reaches w
// unless rendering succeeded.
func Emit(w io.Writer, opts Options, kinds []Kind) error {
	src, err := Render(opts, kinds)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return diag.Wrap(diag.OutputIO, "", err)
	}
	return nil
}

// Render returns the gofmt'ed source for kinds.
func Render(opts Options, kinds []Kind) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := safecast.Conv[uint16](len(kinds)); err != nil {
		return nil, diag.Errorf(diag.EmitTooManyKinds, "%d node types do not fit uint16", len(kinds))
	}

	reserved := opts.generatedNames()
	for _, k := range kinds {
		if name := opts.Prefix + k.Ident; reserved[name] {
			return nil, diag.Errorf(diag.IdentCollision,
				"node type %s derives %s, which the generated file already declares", quote(k.Text), name)
		}
	}

	p := &printer{opts: opts, kinds: kinds, docs: indexDocs(opts.Docs)}
	p.file()

	src, err := format.Source(p.buf.Bytes())
	if err != nil {
		return nil, &diag.Error{Code: diag.EmitFormat, Err: err}
	}
	return src, nil
}

type printer struct {
	buf   bytes.Buffer
	opts  Options
	kinds []Kind
	docs  docIndex
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) blank() { p.buf.WriteByte('\n') }

func (p *printer) constName(k Kind) string { return p.opts.Prefix + k.Ident }

func (p *printer) file() {
	p.line("%s", Header)
	if p.opts.Source != "" {
		p.line("// Source: %s", p.opts.Source)
	}
	p.blank()
	p.line("package %s", p.opts.Package)
	p.blank()
	p.line("import %s", quote(p.opts.RuntimeImport))
	p.blank()

	p.enum()
	p.features()
	p.table()
	p.parse()
	p.methods()
}

func (p *printer) enum() {
	typ := p.opts.TypeName
	if p.opts.Grammar != "" {
		p.line("// %s is a node type of the %s grammar.", typ, p.opts.Grammar)
	} else {
		p.line("// %s is a node type of the grammar.", typ)
	}
	p.line("//")
	p.line("// Each constant is enabled by its own feature flag or by the %s", quote(p.opts.CatchAll))
	p.line("// catch-all, see [Features]. The zero value is not a valid %s.", typ)
	p.line("type %s uint16", typ)
	p.blank()

	pairs := pairIndex(p.kinds)
	p.line("const (")
	for i, k := range p.kinds {
		if i > 0 {
			p.blank()
		}
		p.line("\t// %s is %s (%s).", p.constName(k), commentLiteral(k.Text), kindWord(k.Named))
		if link, ok := p.docs.lookup(k.Text); ok {
			p.line("\t//")
			if link.Label != "" {
				p.line("\t// Reference (%s): %s", link.Label, link.URL)
			} else {
				p.line("\t// Reference: %s", link.URL)
			}
		}
		if j, ok := pairs[i]; ok {
			p.line("\t//")
			p.line("\t// The %s variant is [%s].", kindWord(p.kinds[j].Named), p.constName(p.kinds[j]))
		}
		p.line("\t//")
		p.line("\t// Enabled by the %s or %s feature.", quote(k.Flag), quote(p.opts.CatchAll))
		if i == 0 {
			p.line("\t%s %s = iota + 1", p.constName(k), typ)
		} else {
			p.line("\t%s", p.constName(k))
		}
	}
	p.line(")")
	p.blank()

	p.line("// %sCount is the number of node types, enabled or not.", typ)
	p.line("const %sCount = %d", typ, len(p.kinds))
	p.blank()
}

func (p *printer) features() {
	p.line("// Features lists the enabled feature flags, separated by commas. It is")
	p.line("// read once during package initialisation; override it at link time:")
	p.line("//")
	pkg := p.opts.ImportPath
	if pkg == "" {
		pkg = "<package>"
	}
	p.line("//\tgo build -ldflags \"-X %s.Features=%s\"", pkg, p.opts.CatchAll)
	p.line("var Features = %s", quote(strings.Join(p.opts.DefaultFeatures, ",")))
	p.blank()
}

func (p *printer) table() {
	p.line("var %s = nodekind.NewTable(%s, Features, %s, []nodekind.Entry{",
		tableVar(p.opts.TypeName), quote(p.opts.TypeName), quote(p.opts.CatchAll))
	for _, k := range p.kinds {
		p.line("\t%s - 1: {Literal: %s, Flag: %s, Named: %t},",
			p.constName(k), quote(k.Text), quote(k.Flag), k.Named)
	}
	p.line("})")
	p.blank()
}

// parse emits one case per distinct named literal. Named kinds sharing a
// literal resolve to the first enabled one in declaration order.
func (p *printer) parse() {
	typ := p.opts.TypeName
	tab := tableVar(typ)

	var order []string
	groups := make(map[string][]Kind)
	for _, k := range p.kinds {
		if !k.Named {
			continue
		}
		if _, seen := groups[k.Text]; !seen {
			order = append(order, k.Text)
		}
		groups[k.Text] = append(groups[k.Text], k)
	}

	p.line("// Parse%s returns the enabled named node type whose literal is s.", typ)
	p.line("// Unnamed node types are not parseable; unknown or disabled input yields")
	p.line("// a *nodekind.ParseError.")
	p.line("func Parse%s(s string) (%s, error) {", typ, typ)
	p.line("\tvar k %s", typ)
	p.line("\tswitch s {")
	for _, lit := range order {
		group := groups[lit]
		p.line("\tcase %s:", quote(lit))
		p.line("\t\tk = %s", p.constName(group[0]))
		for _, alt := range group[1:] {
			p.line("\t\tif !k.Enabled() {")
			p.line("\t\t\tk = %s", p.constName(alt))
			p.line("\t\t}")
		}
	}
	p.line("\tdefault:")
	p.line("\t\treturn 0, %s.Unknown(s)", tab)
	p.line("\t}")
	p.line("\tif !k.Enabled() {")
	p.line("\t\treturn 0, %s.Unknown(s)", tab)
	p.line("\t}")
	p.line("\treturn k, nil")
	p.line("}")
	p.blank()
}

func (p *printer) methods() {
	typ := p.opts.TypeName
	tab := tableVar(typ)

	p.line("// String returns the literal text of k, or %q when k is", typ+"(n)")
	p.line("// disabled or invalid.")
	p.line("func (k %s) String() string { return %s.Format(int(k)) }", typ, tab)
	p.blank()
	p.line("// Enabled reports whether k's feature flag or the catch-all is set.")
	p.line("func (k %s) Enabled() bool { return %s.Enabled(int(k)) }", typ, tab)
	p.blank()
	p.line("// IsNamed reports whether k is a named rule rather than a raw token.")
	p.line("func (k %s) IsNamed() bool { return %s.Named(int(k)) }", typ, tab)
	p.blank()
	p.line("// Flag returns the feature flag gating k.")
	p.line("func (k %s) Flag() string { return %s.Flag(int(k)) }", typ, tab)
	p.blank()
	p.line("// MarshalText implements encoding.TextMarshaler.")
	p.line("func (k %s) MarshalText() ([]byte, error) { return []byte(k.String()), nil }", typ)
	p.blank()
	p.line("// UnmarshalText implements encoding.TextUnmarshaler for named node types.")
	p.line("func (k *%s) UnmarshalText(text []byte) error {", typ)
	p.line("\tv, err := Parse%s(string(text))", typ)
	p.line("\tif err != nil {")
	p.line("\t\treturn err")
	p.line("\t}")
	p.line("\t*k = v")
	p.line("\treturn nil")
	p.line("}")
	p.blank()
	p.line("// Enabled%ss lists the enabled node types in declaration order.", typ)
	p.line("func Enabled%ss() []%s {", typ, typ)
	p.line("\tkinds := %s.EnabledKinds()", tab)
	p.line("\tout := make([]%s, len(kinds))", typ)
	p.line("\tfor i, k := range kinds {")
	p.line("\t\tout[i] = %s(k)", typ)
	p.line("\t}")
	p.line("\treturn out")
	p.line("}")
}

// pairIndex maps each kind to the first kind with the same literal and the
// opposite named-ness.
func pairIndex(kinds []Kind) map[int]int {
	byText := make(map[string][]int)
	for i, k := range kinds {
		byText[k.Text] = append(byText[k.Text], i)
	}
	pairs := make(map[int]int)
	for i, k := range kinds {
		for _, j := range byText[k.Text] {
			if kinds[j].Named != k.Named {
				pairs[i] = j
				break
			}
		}
	}
	return pairs
}

func quote(s string) string { return strconv.Quote(s) }
