package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// ParseAttrs parses the bracketed attribute text of a directive header into
// a typed map. Accepted forms:
//
//	[key=value key2="quoted with spaces" flag num=42]
//	[type=tip, title="Hi", sortable]
//	[highlight=["a","b"]]
//
// Pairs may be separated by whitespace, commas, or both. Bare keys without
// a value are boolean flags. Unquoted values coerce to bool, number, or
// enum symbol; quoted values stay strings; a bracketed value is a list of
// strings.
//
// Parsing never fails: malformed text yields the pairs recovered so far
// plus diagnostics located at the directive header line. Duplicate keys
// keep the first occurrence and flag the repeat.
func ParseAttrs(raw string, at ast.SourceSpan) (ast.Attrs, []ast.Diagnostic) {
	attrs := ast.Attrs{}
	var diags []ast.Diagnostic

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return attrs, nil
	}

	inner := trimmed
	if strings.HasPrefix(inner, "[") {
		if strings.HasSuffix(inner, "]") {
			inner = inner[1 : len(inner)-1]
		} else {
			inner = inner[1:]
			diags = append(diags, ast.NewDiagnostic(ast.CodeInvalidAttrSyntax, at,
				"attribute list is missing its closing ']'"))
		}
	}

	p := &attrParser{input: inner, at: at}
	for {
		p.skipSeparators()
		if p.done() {
			break
		}

		key, ok := p.scanKey()
		if !ok {
			diags = append(diags, p.errorf("unexpected character %q in attribute list", p.peek()))
			p.pos++ // skip the offender and keep going
			continue
		}

		value := ast.BoolValue(true)
		if p.consume('=') {
			v, vdiags := p.scanValue(key)
			diags = append(diags, vdiags...)
			value = v
		}

		if _, dup := attrs[key]; dup {
			diags = append(diags, p.errorfCode(ast.CodeDuplicateAttribute,
				"attribute '%s' given more than once; keeping the first value", key))
			continue
		}
		attrs[key] = value
	}

	return attrs, diags
}

type attrParser struct {
	input string
	pos   int
	at    ast.SourceSpan
}

func (p *attrParser) done() bool { return p.pos >= len(p.input) }

func (p *attrParser) peek() byte { return p.input[p.pos] }

func (p *attrParser) consume(c byte) bool {
	if !p.done() && p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// skipSeparators advances past whitespace and pair-separating commas.
func (p *attrParser) skipSeparators() {
	for !p.done() {
		switch p.peek() {
		case ' ', '\t', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *attrParser) scanKey() (string, bool) {
	start := p.pos
	for !p.done() && isKeyChar(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}

func (p *attrParser) scanValue(key string) (ast.AttrValue, []ast.Diagnostic) {
	if p.done() {
		return ast.StringValue(""), []ast.Diagnostic{
			p.errorf("missing value after '=' for attribute '%s'", key)}
	}

	switch p.peek() {
	case '"':
		s, ok := p.scanQuoted()
		if !ok {
			return ast.StringValue(s), []ast.Diagnostic{
				p.errorf("unterminated quoted value for attribute '%s'", key)}
		}
		return ast.StringValue(s), nil
	case '[':
		return p.scanList(key)
	default:
		start := p.pos
		for !p.done() && !isValueTerminator(p.peek()) {
			p.pos++
		}
		return coerceBare(p.input[start:p.pos]), nil
	}
}

// scanQuoted reads a double-quoted string supporting \" and \\ escapes.
// The opening quote must be at the current position.
func (p *attrParser) scanQuoted() (string, bool) {
	p.pos++ // opening quote
	var b strings.Builder
	for !p.done() {
		c := p.peek()
		if c == '"' {
			p.pos++
			return b.String(), true
		}
		if c == '\\' && p.pos+1 < len(p.input) {
			next := p.input[p.pos+1]
			if next == '"' || next == '\\' {
				b.WriteByte(next)
				p.pos += 2
				continue
			}
		}
		b.WriteByte(c)
		p.pos++
	}
	return b.String(), false
}

// scanList reads a bracketed list of comma-separated strings. Elements may
// be quoted or bare.
func (p *attrParser) scanList(key string) (ast.AttrValue, []ast.Diagnostic) {
	var diags []ast.Diagnostic
	p.pos++ // opening bracket
	var items []string
	for {
		for !p.done() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == ',') {
			p.pos++
		}
		if p.done() {
			diags = append(diags, p.errorf("unterminated list value for attribute '%s'", key))
			break
		}
		if p.peek() == ']' {
			p.pos++
			break
		}
		if p.peek() == '"' {
			s, ok := p.scanQuoted()
			items = append(items, s)
			if !ok {
				diags = append(diags, p.errorf("unterminated quoted value for attribute '%s'", key))
				break
			}
			continue
		}
		start := p.pos
		for !p.done() && p.peek() != ',' && p.peek() != ']' && p.peek() != ' ' && p.peek() != '\t' {
			p.pos++
		}
		items = append(items, p.input[start:p.pos])
	}
	return ast.ListValue(items...), diags
}

func (p *attrParser) errorf(format string, args ...any) ast.Diagnostic {
	return p.errorfCode(ast.CodeInvalidAttrSyntax, format, args...)
}

func (p *attrParser) errorfCode(code ast.Code, format string, args ...any) ast.Diagnostic {
	return ast.NewDiagnostic(code, p.at, fmt.Sprintf(format, args...))
}

// coerceBare maps an unquoted value to its most specific type: booleans,
// then numbers, otherwise an enum symbol.
func coerceBare(raw string) ast.AttrValue {
	switch raw {
	case "true":
		return ast.BoolValue(true)
	case "false":
		return ast.BoolValue(false)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return ast.NumberValue(n)
	}
	return ast.SymbolValue(raw)
}

func isKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isValueTerminator(c byte) bool {
	return c == ' ' || c == '\t' || c == ','
}
