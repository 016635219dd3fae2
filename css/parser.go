package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser collects class names from CSS stylesheets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Rulesets nested in @media,
// @supports and similar blocks are included. The optional source parameter
// identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	var src string
	if len(source) > 0 {
		src = source[0]
	}
	sheet := newStylesheet(src)

	if src != "" {
		p.log.Debug("Parsing CSS", zap.String("source", src), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	depth := 0

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			if depth != 0 {
				sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("%d unterminated @-rule block(s)", depth))
			}
			p.log.Debug("Parsed CSS", zap.String("source", src), zap.Int("rulesets", sheet.Rulesets), zap.Int("classes", sheet.Len()))
			return sheet

		case css.BeginAtRuleGrammar:
			depth++
			p.log.Debug("Entering @-rule block", zap.ByteString("rule", data))

		case css.EndAtRuleGrammar:
			depth--

		case css.QualifiedRuleGrammar:
			// one of comma separated selectors, last one comes as ruleset
			p.collect(sheet, data, parser.Values())

		case css.BeginRulesetGrammar:
			sheet.Rulesets++
			p.collect(sheet, data, parser.Values())
		}
	}
}

// collect adds class names referenced by selector tokens.
func (p *Parser) collect(sheet *Stylesheet, data []byte, values []css.Token) {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	for _, name := range selectorClasses(sb.String()) {
		sheet.addClass(name)
	}
}

// selectorClasses returns class names used in a selector string, including
// those inside functional pseudo classes like :not(). Quoted strings and
// attribute selectors are skipped, CSS escapes are resolved.
func selectorClasses(sel string) []string {
	var out []string
	for i := 0; i < len(sel); i++ {
		switch c := sel[i]; c {
		case '"', '\'':
			end := strings.IndexByte(sel[i+1:], c)
			if end < 0 {
				return out
			}
			i += end + 1
		case '[':
			end := strings.IndexByte(sel[i:], ']')
			if end < 0 {
				return out
			}
			i += end
		case '.':
			name, n := readIdent(sel[i+1:])
			if name != "" {
				out = append(out, name)
			}
			i += n
		}
	}
	return out
}

// readIdent reads CSS identifier and returns it together with number of
// bytes consumed.
func readIdent(s string) (string, int) {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isHex(s[i+1]):
			r, n := readHexEscape(s[i+1:])
			sb.WriteRune(r)
			i += 1 + n
		case c == '\\' && i+1 < len(s) && s[i+1] != '\n':
			sb.WriteByte(s[i+1])
			i += 2
		case c == '-' || c == '_' || c >= 0x80 ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9' && sb.Len() > 0):
			sb.WriteByte(c)
			i++
		default:
			return sb.String(), i
		}
	}
	return sb.String(), i
}

// readHexEscape decodes up to 6 hex digits and single whitespace following
// them. Zero, surrogates and values above maximum code point give U+FFFD.
func readHexEscape(s string) (rune, int) {
	var r rune
	i := 0
	for ; i < len(s) && i < 6 && isHex(s[i]); i++ {
		r = r<<4 | rune(hexValue(s[i]))
	}
	switch {
	case strings.HasPrefix(s[i:], "\r\n"):
		i += 2
	case i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f'):
		i++
	}
	if r == 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		r = utf8.RuneError
	}
	return r, i
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}
