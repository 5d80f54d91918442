package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/prose"
	"github.com/yaklabco/surfdoc/pkg/render"
)

// pageRenderer produces standalone HTML for one page, wrapped in the
// site chrome: navigation bar, content article, footer. It is shared by
// all workers; the underlying renderer is safe for concurrent use.
type pageRenderer struct {
	siteName string
	accent   string
	nav      []NavEntry
	html     *render.HTML
	doc      *ast.Document
}

func newPageRenderer(name, flavor string, root *ast.Site, doc *ast.Document, nav []NavEntry) *pageRenderer {
	if flavor == "" {
		flavor = prose.FlavorGFM
	}
	accent := ""
	for _, prop := range root.Properties {
		if prop.Key == "accent" {
			accent = prop.Value
		}
	}
	return &pageRenderer{
		siteName: name,
		accent:   accent,
		nav:      nav,
		html:     render.NewHTML(flavor),
		doc:      doc,
	}
}

func (r *pageRenderer) page(p *ast.Page) RenderedPage {
	content := r.html.Fragment(&ast.Document{
		Blocks:      p.Blocks,
		FrontMatter: r.doc.FrontMatter,
	})

	title := pageTitle(p)
	fullTitle := title
	if r.siteName != "" && r.siteName != title {
		fullTitle = title + " — " + r.siteName
	}

	override := ""
	if r.accent != "" {
		override = fmt.Sprintf("\n    <style>:root { --accent: %s; }</style>", html.EscapeString(r.accent))
	}

	layout := ""
	if p.Layout != "" {
		layout = fmt.Sprintf(" data-layout=%q", html.EscapeString(p.Layout))
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <meta name="generator" content="surfdoc">
    <title>%s</title>
    <style>%s</style>%s
</head>
<body>
%s
<main>
<article class="surfdoc"%s>
%s
</article>
</main>
<footer class="surfdoc-site-footer">Built with SurfDoc</footer>
</body>
</html>`,
		html.EscapeString(fullTitle),
		render.Stylesheet+render.SiteStylesheet,
		override,
		r.navHTML(p.Route),
		layout,
		content)

	return RenderedPage{
		Route: p.Route,
		Title: title,
		File:  RouteFile(p.Route),
		HTML:  page,
	}
}

func (r *pageRenderer) navHTML(activeRoute string) string {
	var sb strings.Builder
	sb.WriteString(`<nav class="surfdoc-site-nav">`)
	fmt.Fprintf(&sb, `<a class="site-name" href="/index.html">%s</a>`,
		html.EscapeString(r.siteName))
	for _, entry := range r.nav {
		active := ""
		if entry.Route == activeRoute {
			active = ` class="active"`
		}
		fmt.Fprintf(&sb, `<a%s href="/%s">%s</a>`,
			active, entry.File, html.EscapeString(entry.Title))
	}
	sb.WriteString("</nav>")
	return sb.String()
}
