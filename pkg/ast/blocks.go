package ast

// CalloutType is the admonition flavor of a Callout block.
type CalloutType string

const (
	CalloutInfo    CalloutType = "info"
	CalloutWarning CalloutType = "warning"
	CalloutDanger  CalloutType = "danger"
	CalloutTip     CalloutType = "tip"
	CalloutNote    CalloutType = "note"
	CalloutSuccess CalloutType = "success"
)

// DataFormat selects how a Data block's body is interpreted.
type DataFormat string

const (
	DataTable DataFormat = "table"
	DataCSV   DataFormat = "csv"
	DataJSON  DataFormat = "json"
)

// DecisionStatus is the lifecycle state of a Decision block.
type DecisionStatus string

const (
	DecisionProposed   DecisionStatus = "proposed"
	DecisionAccepted   DecisionStatus = "accepted"
	DecisionRejected   DecisionStatus = "rejected"
	DecisionSuperseded DecisionStatus = "superseded"
)

// Trend is the direction indicator of a Metric block.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Markdown is a prose span between directives. Its content is opaque to
// this package and is handed to the external markdown engine at render time.
type Markdown struct {
	Content string
	Loc     SourceSpan
}

// Unknown preserves an unrecognized directive byte-for-byte: tag, raw
// attribute text, and body, so the markdown renderer can re-emit it verbatim.
type Unknown struct {
	Tag      string
	RawAttrs string
	Attrs    Attrs
	Body     string

	// Depth is the colon count of the opening fence, at least 2, so
	// re-emission reproduces the fence as written.
	Depth int

	Loc SourceSpan
}

// Callout is an admonition box.
type Callout struct {
	ID      string
	Type    CalloutType
	Title   string
	Content string
	Attrs   Attrs
	Loc     SourceSpan
}

// Data is a structured table parsed from pipe rows or CSV lines.
type Data struct {
	ID       string
	Format   DataFormat
	Sortable bool
	Headers  []string
	Rows     [][]string
	RawBody  string
	Attrs    Attrs
	Loc      SourceSpan
}

// CodeBlock is a fenced code listing with an optional language and file
// path. The name avoids the diagnostic Code type in this package.
type CodeBlock struct {
	ID        string
	Lang      string
	File      string
	Highlight []string
	Content   string
	Attrs     Attrs
	Loc       SourceSpan
}

// TaskItem is one checklist entry in a Tasks block.
type TaskItem struct {
	Done     bool
	Text     string
	Assignee string
}

// Tasks is a checklist.
type Tasks struct {
	ID    string
	Items []TaskItem
	Attrs Attrs
	Loc   SourceSpan
}

// Decision is a decision record with a stated outcome.
type Decision struct {
	ID       string
	Status   DecisionStatus
	Date     string
	Deciders []string
	Content  string
	Attrs    Attrs
	Loc      SourceSpan
}

// Metric is a single labeled measurement.
type Metric struct {
	ID    string
	Label string
	Value string
	Unit  string
	Trend Trend
	Attrs Attrs
	Loc   SourceSpan
}

// Summary is an executive summary paragraph.
type Summary struct {
	ID      string
	Content string
	Attrs   Attrs
	Loc     SourceSpan
}

// Figure is an image with caption and alternative text.
type Figure struct {
	ID      string
	Src     string
	Caption string
	Alt     string
	Width   string
	Attrs   Attrs
	Loc     SourceSpan
}

// TabPanel is one named panel of a Tabs block.
type TabPanel struct {
	Label  string
	Blocks []Block
}

// Tabs holds named content panels.
type Tabs struct {
	ID     string
	Panels []TabPanel
	Attrs  Attrs
	Loc    SourceSpan
}

// Column is one column of a Columns block.
type Column struct {
	Blocks []Block
}

// Columns is a multi-column layout.
type Columns struct {
	ID    string
	Cols  []Column
	Attrs Attrs
	Loc   SourceSpan
}

// Quote is an attributed quotation.
type Quote struct {
	ID          string
	Content     string
	Attribution string
	Cite        string
	Attrs       Attrs
	Loc         SourceSpan
}

// CTA is a call-to-action link.
type CTA struct {
	ID      string
	Label   string
	Href    string
	Primary bool
	Icon    string
	Attrs   Attrs
	Loc     SourceSpan
}

// HeroImage is a large banner visual.
type HeroImage struct {
	ID    string
	Src   string
	Alt   string
	Attrs Attrs
	Loc   SourceSpan
}

// Testimonial is an attributed customer quote.
type Testimonial struct {
	ID      string
	Content string
	Author  string
	Role    string
	Company string
	Attrs   Attrs
	Loc     SourceSpan
}

// StyleProperty is one key/value presentation override.
type StyleProperty struct {
	Key   string
	Value string
}

// Style carries presentation overrides consumed by the HTML renderer.
type Style struct {
	ID         string
	Properties []StyleProperty
	Attrs      Attrs
	Loc        SourceSpan
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQ is an accordion of question/answer pairs.
type FAQ struct {
	ID    string
	Items []FAQItem
	Attrs Attrs
	Loc   SourceSpan
}

// PricingTable is a tier comparison grid. Headers name the tiers; each row
// is one feature across tiers.
type PricingTable struct {
	ID      string
	Headers []string
	Rows    [][]string
	Attrs   Attrs
	Loc     SourceSpan
}

// Site is the root container of a multi-page document. Its direct children
// include the Page blocks the assembler orders into a navigation index.
type Site struct {
	ID         string
	Domain     string
	Properties []StyleProperty
	Blocks     []Block
	Attrs      Attrs
	Loc        SourceSpan
}

// Page is one routable page of a Site.
type Page struct {
	ID      string
	Route   string
	Title   string
	Layout  string
	Sidebar bool
	// Order is the explicit navigation position; nil when the order
	// attribute is absent.
	Order  *int
	Blocks []Block
	// RawBody keeps the unparsed page content for degradation rendering.
	RawBody string
	Attrs   Attrs
	Loc     SourceSpan
}

func (b *Markdown) Kind() BlockKind     { return KindMarkdown }
func (b *Unknown) Kind() BlockKind      { return KindUnknown }
func (b *Callout) Kind() BlockKind      { return KindCallout }
func (b *Data) Kind() BlockKind         { return KindData }
func (b *CodeBlock) Kind() BlockKind    { return KindCode }
func (b *Tasks) Kind() BlockKind        { return KindTasks }
func (b *Decision) Kind() BlockKind     { return KindDecision }
func (b *Metric) Kind() BlockKind       { return KindMetric }
func (b *Summary) Kind() BlockKind      { return KindSummary }
func (b *Figure) Kind() BlockKind       { return KindFigure }
func (b *Tabs) Kind() BlockKind         { return KindTabs }
func (b *Columns) Kind() BlockKind      { return KindColumns }
func (b *Quote) Kind() BlockKind        { return KindQuote }
func (b *CTA) Kind() BlockKind          { return KindCTA }
func (b *HeroImage) Kind() BlockKind    { return KindHeroImage }
func (b *Testimonial) Kind() BlockKind  { return KindTestimonial }
func (b *Style) Kind() BlockKind        { return KindStyle }
func (b *FAQ) Kind() BlockKind          { return KindFAQ }
func (b *PricingTable) Kind() BlockKind { return KindPricingTable }
func (b *Site) Kind() BlockKind         { return KindSite }
func (b *Page) Kind() BlockKind         { return KindPage }

func (b *Markdown) Span() SourceSpan     { return b.Loc }
func (b *Unknown) Span() SourceSpan      { return b.Loc }
func (b *Callout) Span() SourceSpan      { return b.Loc }
func (b *Data) Span() SourceSpan         { return b.Loc }
func (b *CodeBlock) Span() SourceSpan    { return b.Loc }
func (b *Tasks) Span() SourceSpan        { return b.Loc }
func (b *Decision) Span() SourceSpan     { return b.Loc }
func (b *Metric) Span() SourceSpan       { return b.Loc }
func (b *Summary) Span() SourceSpan      { return b.Loc }
func (b *Figure) Span() SourceSpan       { return b.Loc }
func (b *Tabs) Span() SourceSpan         { return b.Loc }
func (b *Columns) Span() SourceSpan      { return b.Loc }
func (b *Quote) Span() SourceSpan        { return b.Loc }
func (b *CTA) Span() SourceSpan          { return b.Loc }
func (b *HeroImage) Span() SourceSpan    { return b.Loc }
func (b *Testimonial) Span() SourceSpan  { return b.Loc }
func (b *Style) Span() SourceSpan        { return b.Loc }
func (b *FAQ) Span() SourceSpan          { return b.Loc }
func (b *PricingTable) Span() SourceSpan { return b.Loc }
func (b *Site) Span() SourceSpan         { return b.Loc }
func (b *Page) Span() SourceSpan         { return b.Loc }

func (b *Markdown) block()     {}
func (b *Unknown) block()      {}
func (b *Callout) block()      {}
func (b *Data) block()         {}
func (b *CodeBlock) block()    {}
func (b *Tasks) block()        {}
func (b *Decision) block()     {}
func (b *Metric) block()       {}
func (b *Summary) block()      {}
func (b *Figure) block()       {}
func (b *Tabs) block()         {}
func (b *Columns) block()      {}
func (b *Quote) block()        {}
func (b *CTA) block()          {}
func (b *HeroImage) block()    {}
func (b *Testimonial) block()  {}
func (b *Style) block()        {}
func (b *FAQ) block()          {}
func (b *PricingTable) block() {}
func (b *Site) block()         {}
func (b *Page) block()         {}

// Children implements Container for Site.
func (b *Site) Children() []Block { return b.Blocks }

// Children implements Container for Page.
func (b *Page) Children() []Block { return b.Blocks }

// Children implements Container for Tabs, flattening panel contents in
// panel order.
func (b *Tabs) Children() []Block {
	var out []Block
	for _, p := range b.Panels {
		out = append(out, p.Blocks...)
	}
	return out
}

// Children implements Container for Columns, flattening column contents in
// column order.
func (b *Columns) Children() []Block {
	var out []Block
	for _, c := range b.Cols {
		out = append(out, c.Blocks...)
	}
	return out
}

func (b *Callout) AnchorID() string      { return b.ID }
func (b *Data) AnchorID() string         { return b.ID }
func (b *CodeBlock) AnchorID() string    { return b.ID }
func (b *Tasks) AnchorID() string        { return b.ID }
func (b *Decision) AnchorID() string     { return b.ID }
func (b *Metric) AnchorID() string       { return b.ID }
func (b *Summary) AnchorID() string      { return b.ID }
func (b *Figure) AnchorID() string       { return b.ID }
func (b *Tabs) AnchorID() string         { return b.ID }
func (b *Columns) AnchorID() string      { return b.ID }
func (b *Quote) AnchorID() string        { return b.ID }
func (b *CTA) AnchorID() string          { return b.ID }
func (b *HeroImage) AnchorID() string    { return b.ID }
func (b *Testimonial) AnchorID() string  { return b.ID }
func (b *Style) AnchorID() string        { return b.ID }
func (b *FAQ) AnchorID() string          { return b.ID }
func (b *PricingTable) AnchorID() string { return b.ID }
func (b *Site) AnchorID() string         { return b.ID }
func (b *Page) AnchorID() string         { return b.ID }

func (b *Callout) BlockAttrs() Attrs      { return b.Attrs }
func (b *Data) BlockAttrs() Attrs         { return b.Attrs }
func (b *CodeBlock) BlockAttrs() Attrs    { return b.Attrs }
func (b *Tasks) BlockAttrs() Attrs        { return b.Attrs }
func (b *Decision) BlockAttrs() Attrs     { return b.Attrs }
func (b *Metric) BlockAttrs() Attrs       { return b.Attrs }
func (b *Summary) BlockAttrs() Attrs      { return b.Attrs }
func (b *Figure) BlockAttrs() Attrs       { return b.Attrs }
func (b *Tabs) BlockAttrs() Attrs         { return b.Attrs }
func (b *Columns) BlockAttrs() Attrs      { return b.Attrs }
func (b *Quote) BlockAttrs() Attrs        { return b.Attrs }
func (b *CTA) BlockAttrs() Attrs          { return b.Attrs }
func (b *HeroImage) BlockAttrs() Attrs    { return b.Attrs }
func (b *Testimonial) BlockAttrs() Attrs  { return b.Attrs }
func (b *Style) BlockAttrs() Attrs        { return b.Attrs }
func (b *FAQ) BlockAttrs() Attrs          { return b.Attrs }
func (b *PricingTable) BlockAttrs() Attrs { return b.Attrs }
func (b *Site) BlockAttrs() Attrs         { return b.Attrs }
func (b *Page) BlockAttrs() Attrs         { return b.Attrs }
