package ast

// WalkStatus controls traversal from a visitor.
type WalkStatus int

const (
	// WalkContinue descends into children and proceeds to siblings.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren proceeds to siblings without descending.
	WalkSkipChildren

	// WalkStop aborts the traversal.
	WalkStop
)

// Visitor is called for each block with its container nesting depth.
// Top-level blocks are at depth 0.
type Visitor func(b Block, depth int) WalkStatus

// Walk performs a depth-first, document-order traversal of the tree.
func Walk(doc *Document, visit Visitor) {
	walkBlocks(doc.Blocks, 0, visit)
}

// WalkBlock traverses a single subtree rooted at b.
func WalkBlock(b Block, visit Visitor) {
	walkBlocks([]Block{b}, 0, visit)
}

func walkBlocks(blocks []Block, depth int, visit Visitor) WalkStatus {
	for _, b := range blocks {
		switch visit(b, depth) {
		case WalkStop:
			return WalkStop
		case WalkSkipChildren:
			continue
		}
		if c, ok := b.(Container); ok {
			if walkBlocks(c.Children(), depth+1, visit) == WalkStop {
				return WalkStop
			}
		}
	}
	return WalkContinue
}
