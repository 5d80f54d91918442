package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrValueText(t *testing.T) {
	tests := []struct {
		name string
		v    AttrValue
		want string
	}{
		{"string", StringValue("hello"), "hello"},
		{"symbol", SymbolValue("info"), "info"},
		{"int number", NumberValue(42), "42"},
		{"float number", NumberValue(99.9), "99.9"},
		{"bool", BoolValue(true), "true"},
		{"list", ListValue("a", "b", "c"), "a,b,c"},
		{"empty list", ListValue(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Text())
		})
	}
}

func TestAttrValueIsNumeric(t *testing.T) {
	assert.True(t, NumberValue(1.5).IsNumeric())
	assert.True(t, StringValue("42").IsNumeric())
	assert.True(t, SymbolValue("3.14").IsNumeric())
	assert.False(t, StringValue("42 GB").IsNumeric())
	assert.False(t, BoolValue(true).IsNumeric())
	assert.False(t, ListValue("1").IsNumeric())
}

func TestAttrsAccessors(t *testing.T) {
	a := Attrs{
		"title":    StringValue("Welcome"),
		"sortable": BoolValue(true),
		"hidden":   BoolValue(false),
		"by":       StringValue("Grace Hopper"),
	}

	v, ok := a.Get("title")
	assert.True(t, ok)
	assert.Equal(t, "Welcome", v.Str)

	_, ok = a.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, "Welcome", a.Text("title"))
	assert.Equal(t, "", a.Text("missing"))

	assert.Equal(t, "Grace Hopper", a.TextAny("attribution", "by", "author"))
	assert.Equal(t, "", a.TextAny("cite", "source"))

	assert.True(t, a.Flag("sortable"))
	assert.False(t, a.Flag("hidden"))
	assert.False(t, a.Flag("title"))

	assert.Equal(t, []string{"by", "hidden", "sortable", "title"}, a.Keys())
}
