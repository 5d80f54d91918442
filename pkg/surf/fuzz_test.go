package surf_test

import (
	"testing"

	"github.com/yaklabco/surfdoc/pkg/render"
	"github.com/yaklabco/surfdoc/pkg/surf"
)

// FuzzParse checks that the pipeline is total: any input yields a
// document, never a panic, and the renderers accept whatever comes out.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("# Heading\n\nprose\n")
	f.Add("::page[route=/]\nbody\n::\n")
	f.Add("::site[domain=x]\n::page[route=/]\n::\n::")
	f.Add("::callout[type=info\nunclosed bracket\n::")
	f.Add("::code\nfmt.Println(1)\n")
	f.Add("---\ntitle: x\n---\nbody")
	f.Add(":::\n::\n:")
	f.Add("::a[k=v k=v]\n::")
	f.Add("\x00\xff::page\n")

	f.Fuzz(func(t *testing.T, input string) {
		result := surf.Parse(input)

		if result.Document == nil {
			t.Fatal("Parse returned nil document")
		}

		for _, d := range result.Diagnostics {
			if d.Code == "" {
				t.Errorf("diagnostic without code: %+v", d)
			}
			if d.Severity == "" {
				t.Errorf("diagnostic without severity: %+v", d)
			}
		}

		// Rendering is total over whatever block tree came out.
		_ = render.Render(result.Document, render.Config{Format: render.FormatHTML})
		_ = render.Render(result.Document, render.Config{Format: render.FormatMarkdown})
		_ = render.Render(result.Document, render.Config{Format: render.FormatTerm})
	})
}
