package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

func init() {
	DefaultRegistry.Register(newFAQEntryRule())
	DefaultRegistry.Register(newPricingTierRule())
	DefaultRegistry.Register(newMetricValueRule())
	DefaultRegistry.Register(newDecisionOutcomeRule())
	DefaultRegistry.Register(newCodeLanguageRule())
	DefaultRegistry.Register(newFigureAltRule())
	DefaultRegistry.Register(newTestimonialAuthorRule())
}

// faqEntryRule reports FAQ entries with an empty question or answer.
type faqEntryRule struct {
	BaseRule
}

func newFAQEntryRule() *faqEntryRule {
	return &faqEntryRule{NewBaseRule(
		ast.CodeFAQEntryIncomplete,
		"faq-entry-incomplete",
		"Every FAQ entry needs both a question and an answer.",
	)}
}

func (r *faqEntryRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		faq, ok := b.(*ast.FAQ)
		if !ok {
			return
		}
		for i, item := range faq.Items {
			switch {
			case strings.TrimSpace(item.Question) == "":
				diags = append(diags, r.report(faq.Loc, fmt.Sprintf(
					"faq entry %d has no question", i+1)))
			case strings.TrimSpace(item.Answer) == "":
				diags = append(diags, r.report(faq.Loc, fmt.Sprintf(
					"faq entry '%s' has no answer", item.Question)))
			}
		}
	})
	return diags
}

// pricingTierRule reports pricing rows whose cell count does not match the
// header row.
type pricingTierRule struct {
	BaseRule
}

func newPricingTierRule() *pricingTierRule {
	return &pricingTierRule{NewBaseRule(
		ast.CodePricingTierMismatch,
		"pricing-tier-mismatch",
		"Pricing table rows must match the header's tier count.",
	)}
}

func (r *pricingTierRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		pt, ok := b.(*ast.PricingTable)
		if !ok {
			return
		}
		for i, row := range pt.Rows {
			if len(row) != len(pt.Headers) {
				diags = append(diags, r.report(pt.Loc, fmt.Sprintf(
					"pricing row %d has %d cells; the header declares %d",
					i+1, len(row), len(pt.Headers))))
			}
		}
	})
	return diags
}

// metricUnits is the recognized unit vocabulary for metric blocks,
// compared case-insensitively.
var metricUnits = map[string]bool{
	"%": true, "$": true, "€": true, "£": true,
	"usd": true, "eur": true, "gbp": true,
	"ms": true, "s": true, "min": true, "h": true, "d": true,
	"kb": true, "mb": true, "gb": true, "tb": true,
	"x": true, "pts": true,
	"users": true, "seats": true, "reqs": true, "rps": true,
}

// metricValueRule reports metric values that are not numeric and units
// outside the recognized vocabulary. A missing value is the required-
// attribute rule's job.
type metricValueRule struct {
	BaseRule
}

func newMetricValueRule() *metricValueRule {
	return &metricValueRule{NewBaseRule(
		ast.CodeMetricValueInvalid,
		"metric-value-invalid",
		"Metric values must be numeric, with a recognized unit if any.",
	)}
}

func (r *metricValueRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		m, ok := b.(*ast.Metric)
		if !ok {
			return
		}
		if m.Value != "" {
			if _, err := strconv.ParseFloat(m.Value, 64); err != nil {
				diags = append(diags, r.report(m.Loc, fmt.Sprintf(
					"metric value '%s' is not numeric", m.Value)))
			}
		}
		if m.Unit != "" && !metricUnits[strings.ToLower(m.Unit)] {
			diags = append(diags, r.report(m.Loc, fmt.Sprintf(
				"metric unit '%s' is not recognized", m.Unit)))
		}
	})
	return diags
}

// decisionOutcomeRule reports decision records that never state an
// outcome. The builder falls back to "proposed", so the check reads the
// original attribute map rather than the built field.
type decisionOutcomeRule struct {
	BaseRule
}

func newDecisionOutcomeRule() *decisionOutcomeRule {
	return &decisionOutcomeRule{NewBaseRule(
		ast.CodeDecisionOutcomeMissing,
		"decision-outcome-missing",
		"Decision records must state their outcome explicitly.",
	)}
}

func (r *decisionOutcomeRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		d, ok := b.(*ast.Decision)
		if !ok {
			return
		}
		if _, stated := d.Attrs.Get("status"); !stated {
			diags = append(diags, r.report(d.Loc, "decision does not state an outcome"))
		}
	})
	return diags
}

// codeLanguageRule reports code blocks without a declared language, which
// disables syntax highlighting downstream.
type codeLanguageRule struct {
	BaseRule
}

func newCodeLanguageRule() *codeLanguageRule {
	return &codeLanguageRule{NewBaseRule(
		ast.CodeCodeLanguageMissing,
		"code-language-missing",
		"Code blocks should declare a language for highlighting.",
	)}
}

func (r *codeLanguageRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		c, ok := b.(*ast.CodeBlock)
		if !ok {
			return
		}
		if c.Lang == "" {
			diags = append(diags, r.report(c.Loc, "code block does not declare a language"))
		}
	})
	return diags
}

// figureAltRule reports figures without alt text.
type figureAltRule struct {
	BaseRule
}

func newFigureAltRule() *figureAltRule {
	return &figureAltRule{NewBaseRule(
		ast.CodeFigureAltMissing,
		"figure-alt-missing",
		"Figures should carry alt text for accessibility.",
	)}
}

func (r *figureAltRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		f, ok := b.(*ast.Figure)
		if !ok {
			return
		}
		if f.Alt == "" {
			diags = append(diags, r.report(f.Loc, "figure has no alt text"))
		}
	})
	return diags
}

// testimonialAuthorRule reports testimonials that never name who said it.
type testimonialAuthorRule struct {
	BaseRule
}

func newTestimonialAuthorRule() *testimonialAuthorRule {
	return &testimonialAuthorRule{NewBaseRule(
		ast.CodeTestimonialAuthorMissing,
		"testimonial-author-missing",
		"Testimonials must name their author.",
	)}
}

func (r *testimonialAuthorRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachBlock(doc, func(b, _ ast.Block) {
		t, ok := b.(*ast.Testimonial)
		if !ok {
			return
		}
		if t.Author == "" {
			diags = append(diags, r.report(t.Loc, "testimonial does not name its author"))
		}
	})
	return diags
}
