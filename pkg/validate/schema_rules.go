package validate

import (
	"fmt"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

func init() {
	DefaultRegistry.Register(newRequiredAttrRule())
	DefaultRegistry.Register(newAttrTypeRule())
	DefaultRegistry.Register(newEnumValueRule())
}

// eachBlock visits every block in document order along with its parent
// container (nil for top-level blocks).
func eachBlock(doc *ast.Document, fn func(b, parent ast.Block)) {
	var walk func(blocks []ast.Block, parent ast.Block)
	walk = func(blocks []ast.Block, parent ast.Block) {
		for _, b := range blocks {
			fn(b, parent)
			if c, ok := b.(ast.Container); ok {
				walk(c.Children(), b)
			}
		}
	}
	walk(doc.Blocks, nil)
}

// eachAttributed visits every typed block that retains its attribute map.
func eachAttributed(doc *ast.Document, fn func(b ast.Attributed, schema ast.Schema)) {
	eachBlock(doc, func(b, _ ast.Block) {
		ab, ok := b.(ast.Attributed)
		if !ok {
			return
		}
		schema, ok := ast.SchemaFor(b.Kind())
		if !ok {
			return
		}
		fn(ab, schema)
	})
}

func hasAttr(attrs ast.Attrs, spec ast.AttrSpec) bool {
	if _, ok := attrs.Get(spec.Name); ok {
		return true
	}
	for _, alias := range spec.Aliases {
		if _, ok := attrs.Get(alias); ok {
			return true
		}
	}
	return false
}

// requiredAttrRule reports directives missing an attribute their schema
// marks required. The builder substitutes defaults or empty fields, so the
// block itself stays in the tree.
type requiredAttrRule struct {
	BaseRule
}

func newRequiredAttrRule() *requiredAttrRule {
	return &requiredAttrRule{NewBaseRule(
		ast.CodeRequiredAttrMissing,
		"required-attribute-missing",
		"Directives must carry every attribute their schema marks required.",
	)}
}

func (r *requiredAttrRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachAttributed(doc, func(b ast.Attributed, schema ast.Schema) {
		for _, spec := range schema.Attrs {
			if !spec.Required || hasAttr(b.BlockAttrs(), spec) {
				continue
			}
			diags = append(diags, r.report(b.Span(), fmt.Sprintf(
				"%s is missing required attribute '%s'", b.Kind(), spec.Name)))
		}
	})
	return diags
}

// attrTypeRule reports attribute values whose shape does not fit the
// schema's declared type. Attributes the schema does not know about pass
// through unchecked.
type attrTypeRule struct {
	BaseRule
}

func newAttrTypeRule() *attrTypeRule {
	return &attrTypeRule{NewBaseRule(
		ast.CodeAttrTypeMismatch,
		"attribute-type-mismatch",
		"Attribute values must fit the type their schema declares.",
	)}
}

func (r *attrTypeRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachAttributed(doc, func(b ast.Attributed, schema ast.Schema) {
		attrs := b.BlockAttrs()
		for _, key := range attrs.Keys() {
			spec, known := schema.Spec(key)
			if !known {
				continue
			}
			v, _ := attrs.Get(key)
			if spec.AcceptsValue(v) {
				continue
			}
			diags = append(diags, r.report(b.Span(), fmt.Sprintf(
				"attribute '%s' on %s must be a %s value", key, b.Kind(), spec.Type)))
		}
	})
	return diags
}

// enumValueRule reports enum attributes set to a symbol outside their
// domain. Values of the wrong shape entirely are left to the type rule.
type enumValueRule struct {
	BaseRule
}

func newEnumValueRule() *enumValueRule {
	return &enumValueRule{NewBaseRule(
		ast.CodeInvalidEnumValue,
		"invalid-enum-value",
		"Enum attributes must use one of the symbols in their domain.",
	)}
}

func (r *enumValueRule) Check(doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	eachAttributed(doc, func(b ast.Attributed, schema ast.Schema) {
		attrs := b.BlockAttrs()
		for _, key := range attrs.Keys() {
			spec, known := schema.Spec(key)
			if !known || spec.Type != ast.TypeEnum {
				continue
			}
			v, _ := attrs.Get(key)
			if !spec.AcceptsValue(v) || spec.InEnum(v.Text()) {
				continue
			}
			diags = append(diags, r.report(b.Span(), fmt.Sprintf(
				"attribute '%s' on %s must be one of %s; got '%s'",
				key, b.Kind(), strings.Join(spec.Enum, ", "), v.Text())))
		}
	})
	return diags
}
