package json_test

import (
	"testing"

	"github.com/docspell/docspell"
	dsjson "github.com/docspell/docspell/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts markdown cells only, keyed by absolute cell index", func(t *testing.T) {
		t.Parallel()

		notebook := `{
			"cells": [
				{"cell_type": "code", "source": "x = 1"},
				{"cell_type": "markdown", "source": "# Intro\nSome prose."},
				{"cell_type": "raw", "source": "ignored"},
				{"cell_type": "markdown", "source": "More prose."}
			]
		}`

		result, err := dsjson.NewNotebookExtractor().Extract([]byte(notebook))

		require.NoError(t, err)
		require.Len(t, result.Chunks, 2)
		assert.Equal(t, docspell.CellSection(1), result.Chunks[0].Section)
		assert.Equal(t, []string{"# Intro", "Some prose."}, result.Chunks[0].Lines)
		assert.Equal(t, docspell.CellSection(3), result.Chunks[1].Section)
		assert.Equal(t, []string{"More prose."}, result.Chunks[1].Lines)
	})

	t.Run("array-form source equals string-form source", func(t *testing.T) {
		t.Parallel()

		asString := `{"cells": [{"cell_type": "markdown", "source": "line one\nline two"}]}`
		asArray := `{"cells": [{"cell_type": "markdown", "source": ["line one\n", "line two"]}]}`

		fromString, err := dsjson.NewNotebookExtractor().Extract([]byte(asString))
		require.NoError(t, err)
		fromArray, err := dsjson.NewNotebookExtractor().Extract([]byte(asArray))
		require.NoError(t, err)

		assert.Equal(t, fromString.Chunks, fromArray.Chunks)
	})

	t.Run("notebook without markdown cells contributes nothing", func(t *testing.T) {
		t.Parallel()

		result, err := dsjson.NewNotebookExtractor().Extract([]byte(`{"cells": [{"cell_type": "code", "source": "x"}]}`))

		require.NoError(t, err)
		assert.Empty(t, result.Chunks)
	})

	t.Run("malformed notebook fails the whole file", func(t *testing.T) {
		t.Parallel()

		result, err := dsjson.NewNotebookExtractor().Extract([]byte("not json"))

		assert.Nil(t, result)
		assert.Equal(t, docspell.EINVALID, docspell.ErrorCode(err))
	})
}
