package validate

import (
	"fmt"
	"slices"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// MaxNestingDepth is the deepest container nesting a document may use.
// Top-level blocks sit at depth 0.
const MaxNestingDepth = 8

func init() {
	DefaultRegistry.Register(newOrphanPageRule())
	DefaultRegistry.Register(newSiteWithoutPagesRule())
	DefaultRegistry.Register(newEmptyContainerRule())
	DefaultRegistry.Register(newNestingDepthRule())
	DefaultRegistry.Register(newDuplicateIDRule())
	DefaultRegistry.Register(newPageOrderRule())
}

// orphanPageRule reports page directives that are not direct children of a
// site. The page stays in the tree and renders as a plain section.
type orphanPageRule struct {
	BaseRule
}

func newOrphanPageRule() *orphanPageRule {
	return &orphanPageRule{NewBaseRule(
		ast.CodeOrphanPage,
		"orphan-page",
		"Page directives belong directly under a site root.",
	)}
}

func (r *orphanPageRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, parent ast.Block) {
		p, ok := b.(*ast.Page)
		if !ok {
			return
		}
		if parent != nil && parent.Kind() == ast.KindSite {
			return
		}
		diags = append(diags, r.report(p.Loc, fmt.Sprintf(
			"page %s is not inside a site", pageLabel(p))))
	})
	return diags
}

func pageLabel(p *ast.Page) string {
	if p.Title != "" {
		return fmt.Sprintf("'%s'", p.Title)
	}
	if p.Route != "" {
		return fmt.Sprintf("'%s'", p.Route)
	}
	return fmt.Sprintf("at line %d", p.Loc.StartLine)
}

// siteWithoutPagesRule reports a site root that declares no pages at all.
type siteWithoutPagesRule struct {
	BaseRule
}

func newSiteWithoutPagesRule() *siteWithoutPagesRule {
	return &siteWithoutPagesRule{NewBaseRule(
		ast.CodeSiteWithoutPages,
		"site-without-pages",
		"A site root must contain at least one page.",
	)}
}

func (r *siteWithoutPagesRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		site, ok := b.(*ast.Site)
		if !ok {
			return
		}
		for _, child := range site.Blocks {
			if _, ok := child.(*ast.Page); ok {
				return
			}
		}
		diags = append(diags, r.report(site.Loc, "site declares no pages"))
	})
	return diags
}

// emptyContainerRule reports tabs and columns with nothing to lay out.
type emptyContainerRule struct {
	BaseRule
}

func newEmptyContainerRule() *emptyContainerRule {
	return &emptyContainerRule{NewBaseRule(
		ast.CodeEmptyContainer,
		"empty-container",
		"Tabs and columns need at least one panel or column.",
	)}
}

func (r *emptyContainerRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		switch t := b.(type) {
		case *ast.Tabs:
			if len(t.Panels) == 0 {
				diags = append(diags, r.report(t.Loc, "tabs has no panels"))
			}
		case *ast.Columns:
			if len(t.Cols) == 0 {
				diags = append(diags, r.report(t.Loc, "columns has no columns"))
			}
		}
	})
	return diags
}

// nestingDepthRule reports container nesting past the fixed limit. The
// first block over the limit is flagged and its subtree skipped, so one
// deep chain yields one diagnostic.
type nestingDepthRule struct {
	BaseRule
	max int
}

func newNestingDepthRule() *nestingDepthRule {
	return &nestingDepthRule{NewBaseRule(
		ast.CodeNestingTooDeep,
		"nesting-too-deep",
		"Container nesting must stay within the supported depth.",
	), MaxNestingDepth}
}

// NewNestingDepthRule builds the depth rule with a custom limit, for
// callers that assemble their own registry.
func NewNestingDepthRule(max int) Rule {
	r := newNestingDepthRule()
	r.max = max
	return r
}

func (r *nestingDepthRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	ast.Walk(doc, func(b ast.Block, depth int) ast.WalkStatus {
		if depth < r.max {
			return ast.WalkContinue
		}
		diags = append(diags, r.report(b.Span(), fmt.Sprintf(
			"%s nests deeper than %d levels", b.Kind(), r.max)))
		return ast.WalkSkipChildren
	})
	return diags
}

// duplicateIDRule reports id attributes reused across the document. The
// diagnostic points at the later occurrence and relates the first.
type duplicateIDRule struct {
	BaseRule
}

func newDuplicateIDRule() *duplicateIDRule {
	return &duplicateIDRule{NewBaseRule(
		ast.CodeDuplicateID,
		"duplicate-id",
		"Anchor ids must be unique across the whole document.",
	)}
}

func (r *duplicateIDRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	first := make(map[string]ast.SourceSpan)
	eachBlock(doc, func(b, _ ast.Block) {
		a, ok := b.(ast.Anchored)
		if !ok {
			return
		}
		id := a.AnchorID()
		if id == "" {
			return
		}
		if prev, seen := first[id]; seen {
			diags = append(diags, r.report(b.Span(), fmt.Sprintf(
				"id '%s' is already used at line %d", id, prev.StartLine)).
				WithRelated(prev))
			return
		}
		first[id] = b.Span()
	})
	return diags
}

// pageOrderRule reports ambiguous explicit page ordering under a site:
// duplicate order values, gaps in the sequence, or a mix of ordered and
// unordered pages.
type pageOrderRule struct {
	BaseRule
}

func newPageOrderRule() *pageOrderRule {
	return &pageOrderRule{NewBaseRule(
		ast.CodePageOrderAmbiguous,
		"page-order-ambiguous",
		"Explicit page orders should form one unambiguous sequence.",
	)}
}

func (r *pageOrderRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		site, ok := b.(*ast.Site)
		if !ok {
			return
		}
		diags = append(diags, r.checkSite(site)...)
	})
	return diags
}

func (r *pageOrderRule) checkSite(site *ast.Site) []ast.Diagnostic {
	var pages []*ast.Page
	for _, child := range site.Blocks {
		if p, ok := child.(*ast.Page); ok {
			pages = append(pages, p)
		}
	}

	type ordered struct {
		order int
		page  *ast.Page
	}
	var withOrder []ordered
	for _, p := range pages {
		if p.Order != nil {
			withOrder = append(withOrder, ordered{*p.Order, p})
		}
	}
	if len(withOrder) == 0 {
		return nil
	}

	var diags []ast.Diagnostic
	if len(withOrder) < len(pages) {
		diags = append(diags, r.report(site.Loc, fmt.Sprintf(
			"%d of %d pages declare an order; the rest fall back to document order",
			len(withOrder), len(pages))))
	}

	slices.SortStableFunc(withOrder, func(a, b ordered) int {
		return a.order - b.order
	})
	for i := 1; i < len(withOrder); i++ {
		prev, cur := withOrder[i-1], withOrder[i]
		switch {
		case cur.order == prev.order:
			diags = append(diags, r.report(cur.page.Loc, fmt.Sprintf(
				"page %s shares order %d with page %s",
				pageLabel(cur.page), cur.order, pageLabel(prev.page))).
				WithRelated(prev.page.Loc))
		case cur.order > prev.order+1:
			diags = append(diags, r.report(cur.page.Loc, fmt.Sprintf(
				"page order jumps from %d to %d", prev.order, cur.order)))
		}
	}
	return diags
}
