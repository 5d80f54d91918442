package ast

// SourceSpan identifies a region of the original document text.
// Lines and columns are 1-based; byte offsets are 0-based and half-open
// (StartOffset inclusive, EndOffset exclusive).
type SourceSpan struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
	StartOffset int
	EndOffset   int
}

// Len returns the length of the span in bytes.
func (s SourceSpan) Len() int {
	return s.EndOffset - s.StartOffset
}

// IsEmpty returns true if the span covers zero bytes.
func (s SourceSpan) IsEmpty() bool {
	return s.StartOffset == s.EndOffset
}

// IsValid returns true if the span has positive line information.
func (s SourceSpan) IsValid() bool {
	return s.StartLine > 0 && s.EndLine >= s.StartLine
}

// Contains returns true if the given byte offset falls within the span.
func (s SourceSpan) Contains(offset int) bool {
	return offset >= s.StartOffset && offset < s.EndOffset
}
