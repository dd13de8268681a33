package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryBlocks(t *testing.T) {
	input := strings.Join([]string{
		"Booking Requests",
		"Book me a flight to London.",
		"Cancel my hotel reservation.",
		"",
		"Medical Advice",
		"Should I get a liver transplant?",
	}, "\n")

	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Categories, 2)
	assert.Equal(t, "Booking Requests", set.Categories[0].Name)
	assert.Equal(t, []string{
		"Book me a flight to London.",
		"Cancel my hotel reservation.",
	}, set.Categories[0].Prompts)
	assert.Equal(t, "Medical Advice", set.Categories[1].Name)
	assert.Len(t, set.Categories[1].Prompts, 1)
	assert.Equal(t, 3, set.TotalPrompts())
}

func TestParseMultipleBlankLines(t *testing.T) {
	input := "First\nprompt one\n\n\n\nSecond\nprompt two\n"

	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Categories, 2)
	assert.Equal(t, "Second", set.Categories[1].Name)
}

func TestParseTrimsWhitespace(t *testing.T) {
	input := "  Category  \n  a prompt with padding  \n"

	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Categories, 1)
	assert.Equal(t, "Category", set.Categories[0].Name)
	assert.Equal(t, "a prompt with padding", set.Categories[0].Prompts[0])
}

func TestParseEmptyInput(t *testing.T) {
	set, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set.Categories)
	assert.Equal(t, 0, set.TotalPrompts())
}

func TestParseHeaderOnlyBlock(t *testing.T) {
	// A block with a category name but no prompts is kept; the runner just
	// has nothing to do for it.
	set, err := Parse(strings.NewReader("Lonely Category\n\nReal\na prompt\n"))
	require.NoError(t, err)

	require.Len(t, set.Categories, 2)
	assert.Empty(t, set.Categories[0].Prompts)
	assert.Equal(t, 1, set.TotalPrompts())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.txt")
	require.NoError(t, os.WriteFile(path, []byte("Cat\nprompt\n"), 0o644))

	set, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, set.TotalPrompts())
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
