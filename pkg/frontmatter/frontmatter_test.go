package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBasic(t *testing.T) {
	header, body, bodyLine := Split("---\ntitle: Home\n---\n# Hello")
	assert.Equal(t, "title: Home", header)
	assert.Equal(t, "# Hello", body)
	assert.Equal(t, 4, bodyLine)
}

func TestSplitNoHeader(t *testing.T) {
	header, body, bodyLine := Split("# Just a doc")
	assert.Empty(t, header)
	assert.Equal(t, "# Just a doc", body)
	assert.Equal(t, 1, bodyLine)
}

func TestSplitUnclosedFence(t *testing.T) {
	src := "---\ntitle: Home\n# Hello"
	header, body, bodyLine := Split(src)
	assert.Empty(t, header)
	assert.Equal(t, src, body)
	assert.Equal(t, 1, bodyLine)
}

func TestSplitCRLF(t *testing.T) {
	header, body, bodyLine := Split("---\r\ntitle: Home\r\n---\r\nBody.")
	assert.Equal(t, "title: Home", header)
	assert.Equal(t, "Body.", body)
	assert.Equal(t, 4, bodyLine)
}

func TestSplitMultiLineHeader(t *testing.T) {
	_, body, bodyLine := Split("---\ntitle: Home\ndraft: true\n---\nBody.")
	assert.Equal(t, "Body.", body)
	assert.Equal(t, 5, bodyLine)
}

func TestParseScalars(t *testing.T) {
	fm, err := Parse("title: Home\ndraft: true\nweight: 3")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"title":  "Home",
		"draft":  "true",
		"weight": "3",
	}, fm)
}

func TestParseRejectsNested(t *testing.T) {
	_, err := Parse("nav:\n  - one\n  - two")
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	fm, err := Parse("   \n")
	require.NoError(t, err)
	assert.Nil(t, fm)
}

func TestExtract(t *testing.T) {
	fm, body, bodyLine := Extract("---\ntitle: Docs\n---\nContent here.")
	assert.Equal(t, "Docs", fm["title"])
	assert.Equal(t, "Content here.", body)
	assert.Equal(t, 4, bodyLine)
}

func TestExtractMalformedYAMLDegradesToBody(t *testing.T) {
	src := "---\n{unclosed\n---\nContent."
	fm, body, bodyLine := Extract(src)
	assert.Nil(t, fm)
	assert.Equal(t, src, body)
	assert.Equal(t, 1, bodyLine)
}
