package treesitter_test

import (
	"testing"

	"github.com/docspell/docspell"
	"github.com/docspell/docspell/treesitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonExtractor(t *testing.T) {
	t.Parallel()

	t.Run("module docstring maps to the empty section", func(t *testing.T) {
		t.Parallel()

		source := `"""Module prose here."""

x = 1
`
		result, err := treesitter.NewPythonExtractor().Extract([]byte(source))

		require.NoError(t, err)
		require.Len(t, result.Chunks, 1)
		assert.Equal(t, docspell.FileSection(), result.Chunks[0].Section)
		assert.Equal(t, []string{"Module prose here."}, result.Chunks[0].Lines)
	})

	t.Run("class and function docstrings are kind-qualified", func(t *testing.T) {
		t.Parallel()

		source := `class Spell:
    """Class prose."""

    def apply(self):
        """Function prose."""
        return None
`
		result, err := treesitter.NewPythonExtractor().Extract([]byte(source))

		require.NoError(t, err)
		require.Len(t, result.Chunks, 2)
		assert.Equal(t, docspell.BlockSection("class Spell"), result.Chunks[0].Section)
		assert.Equal(t, []string{"Class prose."}, result.Chunks[0].Lines)
		assert.Equal(t, docspell.BlockSection("def apply"), result.Chunks[1].Section)
		assert.Equal(t, []string{"Function prose."}, result.Chunks[1].Lines)
	})

	t.Run("decorated and nested definitions are found", func(t *testing.T) {
		t.Parallel()

		source := `def outer():
    """Outer prose."""

    @staticmethod
    def inner():
        """Inner prose."""
        return 1
`
		result, err := treesitter.NewPythonExtractor().Extract([]byte(source))

		require.NoError(t, err)
		sections := make([]docspell.Section, 0, len(result.Chunks))
		for _, chunk := range result.Chunks {
			sections = append(sections, chunk.Section)
		}
		assert.Contains(t, sections, docspell.BlockSection("def outer"))
		assert.Contains(t, sections, docspell.BlockSection("def inner"))
	})

	t.Run("blocks without docstrings contribute nothing", func(t *testing.T) {
		t.Parallel()

		source := `def silent():
    return 1
`
		result, err := treesitter.NewPythonExtractor().Extract([]byte(source))

		require.NoError(t, err)
		assert.Empty(t, result.Chunks)
	})

	t.Run("multi-line docstrings lose common indentation", func(t *testing.T) {
		t.Parallel()

		source := `def doc():
    """First line.

    Indented body line.
    """
    return 1
`
		result, err := treesitter.NewPythonExtractor().Extract([]byte(source))

		require.NoError(t, err)
		require.Len(t, result.Chunks, 1)
		assert.Equal(t, []string{"First line.", "", "Indented body line."}, result.Chunks[0].Lines)
	})

	t.Run("syntax errors fail the whole file", func(t *testing.T) {
		t.Parallel()

		result, err := treesitter.NewPythonExtractor().Extract([]byte("def broken(:\n"))

		assert.Nil(t, result)
		assert.Equal(t, docspell.EINVALID, docspell.ErrorCode(err))
	})
}
