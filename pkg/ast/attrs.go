package ast

import (
	"slices"
	"strconv"
)

// AttrKind discriminates the value stored in an AttrValue.
type AttrKind uint8

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrBool
	AttrSymbol
	AttrList
)

// AttrValue is a tagged union over the value types a directive attribute
// can carry: quoted string, numeric literal, boolean, bare enum symbol, or
// a bracketed list of quoted strings.
type AttrValue struct {
	Kind   AttrKind
	Str    string   // AttrString and AttrSymbol
	Num    float64  // AttrNumber
	Bool   bool     // AttrBool
	Values []string // AttrList
}

// StringValue returns a quoted-string attribute value.
func StringValue(s string) AttrValue { return AttrValue{Kind: AttrString, Str: s} }

// NumberValue returns a numeric attribute value.
func NumberValue(n float64) AttrValue { return AttrValue{Kind: AttrNumber, Num: n} }

// BoolValue returns a boolean attribute value.
func BoolValue(b bool) AttrValue { return AttrValue{Kind: AttrBool, Bool: b} }

// SymbolValue returns a bare-identifier (enum symbol) attribute value.
func SymbolValue(s string) AttrValue { return AttrValue{Kind: AttrSymbol, Str: s} }

// ListValue returns a list-of-strings attribute value.
func ListValue(vs ...string) AttrValue { return AttrValue{Kind: AttrList, Values: vs} }

// Text renders the value as display text regardless of kind. Lists join
// their elements with commas; numbers use the shortest representation.
func (v AttrValue) Text() string {
	switch v.Kind {
	case AttrString, AttrSymbol:
		return v.Str
	case AttrNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case AttrBool:
		return strconv.FormatBool(v.Bool)
	case AttrList:
		out := ""
		for i, e := range v.Values {
			if i > 0 {
				out += ","
			}
			out += e
		}
		return out
	default:
		return ""
	}
}

// IsNumeric reports whether the value is a number or a string that parses
// as one.
func (v AttrValue) IsNumeric() bool {
	if v.Kind == AttrNumber {
		return true
	}
	if v.Kind == AttrString || v.Kind == AttrSymbol {
		_, err := strconv.ParseFloat(v.Str, 64)
		return err == nil
	}
	return false
}

// Attrs maps attribute names to parsed values. Keys are unique within one
// directive: the attribute parser keeps the first occurrence and flags
// duplicates.
type Attrs map[string]AttrValue

// Get returns the value for key and whether it was present.
func (a Attrs) Get(key string) (AttrValue, bool) {
	v, ok := a[key]
	return v, ok
}

// Text returns the display text for key, or "" when absent.
func (a Attrs) Text(key string) string {
	if v, ok := a[key]; ok {
		return v.Text()
	}
	return ""
}

// TextAny returns the display text for the first present key.
// Used for attribute aliases (by/attribution/author and friends).
func (a Attrs) TextAny(keys ...string) string {
	for _, k := range keys {
		if v, ok := a[k]; ok {
			return v.Text()
		}
	}
	return ""
}

// Flag returns true when key is present as boolean true.
func (a Attrs) Flag(key string) bool {
	v, ok := a[key]
	return ok && v.Kind == AttrBool && v.Bool
}

// Keys returns the attribute names in sorted order for deterministic
// iteration.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
