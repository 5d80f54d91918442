// Package ast defines the typed document tree produced by parsing SurfDoc
// text: the block variants, attribute values, source spans, and diagnostics.
package ast

// BlockKind classifies a block node.
type BlockKind uint8

// Block kinds. KindMarkdown covers prose spans between directives; the
// remaining kinds map one-to-one onto directive tags, with KindUnknown as
// the passthrough for unrecognized tags.
const (
	KindMarkdown BlockKind = iota
	KindUnknown
	KindCallout
	KindData
	KindCode
	KindTasks
	KindDecision
	KindMetric
	KindSummary
	KindFigure
	KindTabs
	KindColumns
	KindQuote
	KindCTA
	KindHeroImage
	KindTestimonial
	KindStyle
	KindFAQ
	KindPricingTable
	KindSite
	KindPage
)

var kindNames = map[BlockKind]string{
	KindMarkdown:     "markdown",
	KindUnknown:      "unknown",
	KindCallout:      "callout",
	KindData:         "data",
	KindCode:         "code",
	KindTasks:        "tasks",
	KindDecision:     "decision",
	KindMetric:       "metric",
	KindSummary:      "summary",
	KindFigure:       "figure",
	KindTabs:         "tabs",
	KindColumns:      "columns",
	KindQuote:        "quote",
	KindCTA:          "cta",
	KindHeroImage:    "hero-image",
	KindTestimonial:  "testimonial",
	KindStyle:        "style",
	KindFAQ:          "faq",
	KindPricingTable: "pricing-table",
	KindSite:         "site",
	KindPage:         "page",
}

// String returns the directive tag for the kind ("callout", "pricing-table", …).
func (k BlockKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindForTag maps a directive tag (case-folded by the scanner) to its typed
// kind. Unrecognized tags map to KindUnknown.
func KindForTag(tag string) BlockKind {
	for k, name := range kindNames {
		if k == KindMarkdown || k == KindUnknown {
			continue
		}
		if name == tag {
			return k
		}
	}
	return KindUnknown
}

// IsContainer reports whether blocks of this kind hold nested child blocks.
func (k BlockKind) IsContainer() bool {
	switch k {
	case KindSite, KindPage, KindTabs, KindColumns:
		return true
	default:
		return false
	}
}

// Block is the closed set of document tree nodes. Concrete types live in
// blocks.go; the unexported method keeps the set closed so renderers and the
// validator can switch exhaustively.
type Block interface {
	// Kind returns the block's immutable type tag.
	Kind() BlockKind

	// Span returns the source region the block was parsed from.
	Span() SourceSpan

	block()
}

// Container is implemented by block kinds that own nested child blocks.
type Container interface {
	Block

	// Children returns the nested blocks in document order.
	Children() []Block
}

// Anchored is implemented by typed blocks that can carry an id attribute
// used as a cross-reference or navigation anchor. Ids must be unique across
// the whole document.
type Anchored interface {
	Block

	// AnchorID returns the block's id attribute, or "" when absent.
	AnchorID() string
}

// Attributed is implemented by typed blocks that keep the attribute map
// they were built from, so schema rules can check it after the fact.
type Attributed interface {
	Block

	// BlockAttrs returns the parsed attribute map, possibly nil.
	BlockAttrs() Attrs
}
