package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkDoc() *Document {
	return &Document{Blocks: []Block{
		&Markdown{Content: "intro"},
		&Site{Blocks: []Block{
			&Page{Route: "/", Blocks: []Block{
				&Callout{Type: CalloutInfo},
				&Tabs{Panels: []TabPanel{
					{Label: "a", Blocks: []Block{&Metric{Label: "latency"}}},
				}},
			}},
		}},
	}}
}

func TestWalkDocumentOrder(t *testing.T) {
	var visited []BlockKind
	var depths []int
	Walk(walkDoc(), func(b Block, depth int) WalkStatus {
		visited = append(visited, b.Kind())
		depths = append(depths, depth)
		return WalkContinue
	})

	assert.Equal(t, []BlockKind{
		KindMarkdown, KindSite, KindPage, KindCallout, KindTabs, KindMetric,
	}, visited)
	assert.Equal(t, []int{0, 0, 1, 2, 2, 3}, depths)
}

func TestWalkSkipChildren(t *testing.T) {
	var visited []BlockKind
	Walk(walkDoc(), func(b Block, depth int) WalkStatus {
		visited = append(visited, b.Kind())
		if b.Kind() == KindPage {
			return WalkSkipChildren
		}
		return WalkContinue
	})

	assert.Equal(t, []BlockKind{KindMarkdown, KindSite, KindPage}, visited)
}

func TestWalkStop(t *testing.T) {
	var count int
	Walk(walkDoc(), func(b Block, depth int) WalkStatus {
		count++
		if b.Kind() == KindPage {
			return WalkStop
		}
		return WalkContinue
	})

	assert.Equal(t, 3, count)
}
