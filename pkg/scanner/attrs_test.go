package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

func parseAttrs(t *testing.T, raw string) (ast.Attrs, []ast.Diagnostic) {
	t.Helper()
	return ParseAttrs(raw, ast.SourceSpan{StartLine: 1, EndLine: 1})
}

func TestParseAttrsEmpty(t *testing.T) {
	for _, raw := range []string{"", "[]", "  "} {
		attrs, diags := parseAttrs(t, raw)
		assert.Empty(t, attrs, "%q", raw)
		assert.Empty(t, diags, "%q", raw)
	}
}

func TestParseAttrsValueForms(t *testing.T) {
	attrs, diags := parseAttrs(t, `[type=tip title="Hello World" sortable count=42 ratio=-3.14 ok=true off=false]`)
	require.Empty(t, diags)
	assert.Equal(t, ast.SymbolValue("tip"), attrs["type"])
	assert.Equal(t, ast.StringValue("Hello World"), attrs["title"])
	assert.Equal(t, ast.BoolValue(true), attrs["sortable"])
	assert.Equal(t, ast.NumberValue(42), attrs["count"])
	assert.Equal(t, ast.NumberValue(-3.14), attrs["ratio"])
	assert.Equal(t, ast.BoolValue(true), attrs["ok"])
	assert.Equal(t, ast.BoolValue(false), attrs["off"])
}

func TestParseAttrsCommaSeparated(t *testing.T) {
	attrs, diags := parseAttrs(t, `[type=tip, title="Hi", sortable]`)
	require.Empty(t, diags)
	require.Len(t, attrs, 3)
	assert.Equal(t, ast.SymbolValue("tip"), attrs["type"])
	assert.Equal(t, ast.StringValue("Hi"), attrs["title"])
	assert.True(t, attrs.Flag("sortable"))
}

func TestParseAttrsEscapedQuotes(t *testing.T) {
	attrs, diags := parseAttrs(t, `[msg="say \"hi\" to \\ everyone"]`)
	require.Empty(t, diags)
	assert.Equal(t, `say "hi" to \ everyone`, attrs.Text("msg"))
}

func TestParseAttrsList(t *testing.T) {
	attrs, diags := parseAttrs(t, `[highlight=["3","7-9"] lang=go]`)
	require.Empty(t, diags)
	assert.Equal(t, ast.ListValue("3", "7-9"), attrs["highlight"])
	assert.Equal(t, ast.SymbolValue("go"), attrs["lang"])
}

func TestParseAttrsBareListItems(t *testing.T) {
	attrs, diags := parseAttrs(t, `[deciders=[alice, bob]]`)
	require.Empty(t, diags)
	assert.Equal(t, ast.ListValue("alice", "bob"), attrs["deciders"])
}

func TestParseAttrsDuplicateKeyFirstWins(t *testing.T) {
	attrs, diags := parseAttrs(t, `[type=tip,type=warning]`)
	require.Len(t, diags, 1)
	assert.Equal(t, ast.CodeDuplicateAttribute, diags[0].Code)
	assert.Equal(t, ast.SeverityError, diags[0].Severity)
	assert.Equal(t, "tip", attrs.Text("type"))
}

func TestParseAttrsWithoutBrackets(t *testing.T) {
	attrs, diags := parseAttrs(t, `key=value`)
	require.Empty(t, diags)
	assert.Equal(t, ast.SymbolValue("value"), attrs["key"])
}

func TestParseAttrsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unclosed bracket", `[type=tip`},
		{"unterminated quote", `[title="oops]`},
		{"missing value", `[key=]`},
		{"garbage character", `[=x]`},
		{"unterminated list", `[highlight=["3"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parseAttrs(t, tt.raw)
			require.NotEmpty(t, diags)
			for _, d := range diags {
				assert.Equal(t, ast.CodeInvalidAttrSyntax, d.Code)
			}
		})
	}
}

func TestParseAttrsRecoversAfterError(t *testing.T) {
	// A bad token must not swallow the pairs that follow it.
	attrs, diags := parseAttrs(t, `[=bad type=tip]`)
	require.NotEmpty(t, diags)
	assert.Equal(t, "tip", attrs.Text("type"))
}
