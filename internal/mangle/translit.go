package mangle

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// literalWords and runeWords spell out literals that are not word-like.
// Whole-literal entries win over the per-rune table.
var (
	literalWords = map[string]string{
		"->": "Arrow",
		"=>": "FatArrow",
		"&&": "AndAnd",
		"||": "OrOr",
	}

	runeWords = map[rune]string{
		'!':  "Bang",
		'"':  "DoubleQuote",
		'#':  "Hash",
		'$':  "Dollar",
		'%':  "Percent",
		'&':  "Amp",
		'\'': "Quote",
		'(':  "LParen",
		')':  "RParen",
		'*':  "Star",
		'+':  "Plus",
		',':  "Comma",
		'-':  "Dash",
		'.':  "Dot",
		'/':  "Slash",
		':':  "Colon",
		';':  "Semicolon",
		'<':  "Lt",
		'=':  "Eq",
		'>':  "Gt",
		'?':  "Question",
		'@':  "At",
		'[':  "LBracket",
		'\\': "Backslash",
		']':  "RBracket",
		'^':  "Caret",
		'`':  "Backtick",
		'{':  "LBrace",
		'|':  "Pipe",
		'}':  "RBrace",
		'~':  "Tilde",
		' ':  "Space",
		'\t': "Tab",
		'\n': "Newline",
		'\r': "Return",
	}
)

// BaseName transliterates a node-type literal into a PascalCase Go
// identifier. The result contains only ASCII letters and digits and always
// starts with an upper-case letter.
//
//	function_item -> FunctionItem
//	macro_rules!  -> MacroRulesBang
//	..=           -> DotDotEq
//	_             -> Underscore
func BaseName(text string) string {
	if text == "" {
		return "Empty"
	}
	if w, ok := literalWords[text]; ok {
		return w
	}

	text = stripMarks(text)

	var sb strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); {
		if isWordRune(rs[i]) {
			j := i
			for j < len(rs) && isWordRune(rs[j]) {
				j++
			}
			writeWordRun(&sb, rs[i:j])
			i = j
			continue
		}
		sb.WriteString(runeWord(rs[i]))
		i++
	}

	out := sb.String()
	if out == "" {
		return "Empty"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "N" + out
	}
	return out
}

// stripMarks decomposes text (NFKD) and drops combining marks so that
// accented letters fold onto their ASCII base.
func stripMarks(text string) string {
	decomposed := norm.NFKD.String(text)
	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// writeWordRun emits one capitalised word per '_'-separated part, further
// split at lower-to-upper case boundaries. A run made only of underscores
// spells each of them out.
func writeWordRun(sb *strings.Builder, run []rune) {
	wrote := false
	for _, part := range strings.Split(string(run), "_") {
		for _, w := range splitCase(part) {
			sb.WriteString(capitalize(w))
			wrote = true
		}
	}
	if !wrote {
		for range run {
			sb.WriteString("Underscore")
		}
	}
}

func splitCase(s string) []string {
	if s == "" {
		return nil
	}
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if isLower(s[i-1]) && isUpper(s[i]) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}

func capitalize(w string) string {
	if w == "" || !isLower(w[0]) {
		return w
	}
	return string(w[0]-'a'+'A') + w[1:]
}

func runeWord(r rune) string {
	if w, ok := runeWords[r]; ok {
		return w
	}
	return fmt.Sprintf("U%04X", r)
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
