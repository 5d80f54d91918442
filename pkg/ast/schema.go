package ast

// AttrType constrains the value accepted for a schema attribute.
type AttrType uint8

const (
	// TypeText accepts quoted strings and bare symbols.
	TypeText AttrType = iota

	// TypeNumber accepts numeric literals (and numeric strings).
	TypeNumber

	// TypeFlag accepts booleans, including the bare-flag shorthand.
	TypeFlag

	// TypeEnum accepts one symbol out of a fixed domain.
	TypeEnum

	// TypeList accepts a bracketed list of quoted strings; a single
	// string is promoted to a one-element list.
	TypeList
)

func (t AttrType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNumber:
		return "number"
	case TypeFlag:
		return "flag"
	case TypeEnum:
		return "enum"
	case TypeList:
		return "list"
	}
	return "unknown"
}

// AttrSpec describes one attribute accepted by a block kind.
type AttrSpec struct {
	Name     string
	Type     AttrType
	Required bool

	// Enum is the accepted symbol domain for TypeEnum attributes.
	Enum []string

	// Aliases are alternative attribute names accepted for this spec
	// (e.g. quote attribution via by/attribution/author).
	Aliases []string
}

// Matches reports whether the given attribute name refers to this spec.
func (s AttrSpec) Matches(name string) bool {
	if s.Name == name {
		return true
	}
	for _, a := range s.Aliases {
		if a == name {
			return true
		}
	}
	return false
}

// InEnum reports whether the symbol is in the spec's enum domain.
func (s AttrSpec) InEnum(sym string) bool {
	for _, e := range s.Enum {
		if e == sym {
			return true
		}
	}
	return false
}

// Schema is the fixed attribute contract of one block kind.
type Schema struct {
	Kind  BlockKind
	Attrs []AttrSpec
}

// Spec returns the AttrSpec matching name (directly or via alias).
func (s Schema) Spec(name string) (AttrSpec, bool) {
	for _, a := range s.Attrs {
		if a.Matches(name) {
			return a, true
		}
	}
	return AttrSpec{}, false
}

// idAttr is accepted on every typed directive for cross-reference anchors.
var idAttr = AttrSpec{Name: "id", Type: TypeText}

// schemas holds the fixed attribute contract per kind. Kinds absent from
// the map accept only the universal id attribute.
var schemas = map[BlockKind]Schema{
	KindCallout: {Kind: KindCallout, Attrs: []AttrSpec{
		{Name: "type", Type: TypeEnum, Required: true,
			Enum: []string{"info", "warning", "danger", "tip", "note", "success"}},
		{Name: "title", Type: TypeText},
		idAttr,
	}},
	KindData: {Kind: KindData, Attrs: []AttrSpec{
		{Name: "format", Type: TypeEnum, Enum: []string{"table", "csv", "json"}},
		{Name: "sortable", Type: TypeFlag},
		idAttr,
	}},
	KindCode: {Kind: KindCode, Attrs: []AttrSpec{
		{Name: "lang", Type: TypeText},
		{Name: "file", Type: TypeText},
		{Name: "highlight", Type: TypeList},
		idAttr,
	}},
	KindDecision: {Kind: KindDecision, Attrs: []AttrSpec{
		{Name: "status", Type: TypeEnum,
			Enum: []string{"proposed", "accepted", "rejected", "superseded"}},
		{Name: "date", Type: TypeText},
		{Name: "deciders", Type: TypeList},
		idAttr,
	}},
	KindMetric: {Kind: KindMetric, Attrs: []AttrSpec{
		{Name: "label", Type: TypeText, Required: true},
		{Name: "value", Type: TypeText, Required: true},
		{Name: "unit", Type: TypeText},
		{Name: "trend", Type: TypeEnum, Enum: []string{"up", "down", "flat"}},
		idAttr,
	}},
	KindFigure: {Kind: KindFigure, Attrs: []AttrSpec{
		{Name: "src", Type: TypeText, Required: true},
		{Name: "caption", Type: TypeText},
		{Name: "alt", Type: TypeText},
		{Name: "width", Type: TypeText},
		idAttr,
	}},
	KindQuote: {Kind: KindQuote, Attrs: []AttrSpec{
		{Name: "by", Type: TypeText, Aliases: []string{"attribution", "author"}},
		{Name: "cite", Type: TypeText, Aliases: []string{"source"}},
		idAttr,
	}},
	KindCTA: {Kind: KindCTA, Attrs: []AttrSpec{
		{Name: "label", Type: TypeText, Required: true},
		{Name: "href", Type: TypeText, Required: true},
		{Name: "primary", Type: TypeFlag},
		{Name: "icon", Type: TypeText},
		idAttr,
	}},
	KindHeroImage: {Kind: KindHeroImage, Attrs: []AttrSpec{
		{Name: "src", Type: TypeText, Required: true},
		{Name: "alt", Type: TypeText},
		idAttr,
	}},
	KindTestimonial: {Kind: KindTestimonial, Attrs: []AttrSpec{
		{Name: "author", Type: TypeText, Aliases: []string{"name"}},
		{Name: "role", Type: TypeText, Aliases: []string{"title"}},
		{Name: "company", Type: TypeText, Aliases: []string{"org"}},
		idAttr,
	}},
	KindSite: {Kind: KindSite, Attrs: []AttrSpec{
		{Name: "domain", Type: TypeText},
		idAttr,
	}},
	KindPage: {Kind: KindPage, Attrs: []AttrSpec{
		{Name: "route", Type: TypeText},
		{Name: "title", Type: TypeText},
		{Name: "layout", Type: TypeText},
		{Name: "sidebar", Type: TypeFlag},
		{Name: "order", Type: TypeNumber},
		idAttr,
	}},
	KindTasks:        {Kind: KindTasks, Attrs: []AttrSpec{idAttr}},
	KindSummary:      {Kind: KindSummary, Attrs: []AttrSpec{idAttr}},
	KindTabs:         {Kind: KindTabs, Attrs: []AttrSpec{idAttr}},
	KindColumns:      {Kind: KindColumns, Attrs: []AttrSpec{idAttr}},
	KindStyle:        {Kind: KindStyle, Attrs: []AttrSpec{idAttr}},
	KindFAQ:          {Kind: KindFAQ, Attrs: []AttrSpec{idAttr}},
	KindPricingTable: {Kind: KindPricingTable, Attrs: []AttrSpec{idAttr}},
}

// SchemaFor returns the attribute schema for a block kind. The second
// result is false for Markdown and Unknown, which have no schema.
func SchemaFor(kind BlockKind) (Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

// AcceptsValue reports whether the attribute value satisfies the spec's
// type, ignoring enum domain membership (checked separately so the two
// failure modes produce distinct diagnostics).
func (s AttrSpec) AcceptsValue(v AttrValue) bool {
	switch s.Type {
	case TypeText:
		return v.Kind == AttrString || v.Kind == AttrSymbol || v.Kind == AttrNumber
	case TypeNumber:
		return v.IsNumeric()
	case TypeFlag:
		return v.Kind == AttrBool
	case TypeEnum:
		return v.Kind == AttrSymbol || v.Kind == AttrString
	case TypeList:
		return v.Kind == AttrList || v.Kind == AttrString || v.Kind == AttrSymbol
	default:
		return false
	}
}
