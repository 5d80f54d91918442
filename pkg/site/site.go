// Package site assembles a multi-page document into a rendered site:
// page ordering, a navigation index, and per-page standalone HTML
// produced through a bounded worker pool.
package site

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// Config controls assembly.
type Config struct {
	// SiteName labels the navigation bar and page titles. Empty falls
	// back to the site's name property, then its domain, then "SurfDoc".
	SiteName string

	// Flavor is the markdown flavor for prose spans; empty means gfm.
	Flavor string

	// Workers bounds the render pool. Zero or negative means one worker
	// per CPU; the pool never exceeds the page count.
	Workers int
}

// NavEntry is one link of the site navigation, in final order.
type NavEntry struct {
	Route string
	Title string

	// File is the output-relative path the page renders to.
	File string
}

// RenderedPage is one assembled page.
type RenderedPage struct {
	Route string
	Title string
	File  string
	HTML  string
}

// Output is the result of assembling a site.
type Output struct {
	Pages []RenderedPage
	Nav   []NavEntry

	// Diagnostics echoes the document's diagnostics so callers holding
	// only the output can still report ordering warnings.
	Diagnostics []ast.Diagnostic
}

// Assemble renders every page of the document's site root. Pages are
// rendered concurrently; output order follows the navigation order.
// The only error is context cancellation, checked at page granularity.
func Assemble(ctx context.Context, doc *ast.Document, cfg Config) (*Output, error) {
	out := &Output{Diagnostics: doc.Diagnostics}

	siteRoot := doc.SiteRoot()
	if siteRoot == nil {
		return out, nil
	}

	pages := OrderPages(doc.Pages())
	name := siteName(cfg, siteRoot, doc)
	for _, p := range pages {
		out.Nav = append(out.Nav, NavEntry{
			Route: p.Route,
			Title: pageTitle(p),
			File:  RouteFile(p.Route),
		})
	}
	if len(pages) == 0 {
		return out, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	renderer := newPageRenderer(name, cfg.Flavor, siteRoot, doc, out.Nav)

	// Results carry their nav position so reassembly stays positional:
	// two pages sharing a route both survive.
	type indexedPage struct {
		idx  int
		page RenderedPage
	}

	workCh := make(chan int)
	resCh := make(chan indexedPage)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				select {
				case <-ctx.Done():
					return
				case resCh <- indexedPage{idx: i, page: renderer.page(pages[i])}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i := range pages {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	// Workers finish out of order; reassemble along the nav order.
	rendered := make([]*RenderedPage, len(pages))
	for rp := range resCh {
		page := rp.page
		rendered[rp.idx] = &page
	}
	for _, rp := range rendered {
		if rp != nil {
			out.Pages = append(out.Pages, *rp)
		}
	}

	if ctx.Err() != nil {
		return out, fmt.Errorf("site assembly cancelled: %w", ctx.Err())
	}
	return out, nil
}

// OrderPages sorts pages for navigation: explicitly ordered pages first,
// ascending, with document order breaking ties; pages without an order
// follow in document order.
func OrderPages(pages []*ast.Page) []*ast.Page {
	var ordered, rest []*ast.Page
	for _, p := range pages {
		if p.Order != nil {
			ordered = append(ordered, p)
		} else {
			rest = append(rest, p)
		}
	}
	// Insertion keeps equal orders in document order.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && *ordered[j].Order < *ordered[j-1].Order; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return append(ordered, rest...)
}

// RouteFile maps a page route to its output-relative file name.
func RouteFile(route string) string {
	trimmed := strings.Trim(strings.TrimSpace(route), "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + ".html"
}

func pageTitle(p *ast.Page) string {
	if p.Title != "" {
		return p.Title
	}
	if p.Route == "/" || p.Route == "" {
		return "Home"
	}
	return strings.Trim(p.Route, "/")
}

func siteName(cfg Config, root *ast.Site, doc *ast.Document) string {
	if cfg.SiteName != "" {
		return cfg.SiteName
	}
	for _, prop := range root.Properties {
		if prop.Key == "name" {
			return prop.Value
		}
	}
	if title := doc.FrontMatter["title"]; title != "" {
		return title
	}
	if root.Domain != "" {
		return root.Domain
	}
	return "SurfDoc"
}
