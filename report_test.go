package docspell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docspell/docspell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	t.Run("one line per distinct wrong word, sorted case-insensitively", func(t *testing.T) {
		t.Parallel()

		wrong := map[string]string{
			"wrod": "word",
			"Teh":  "The",
			"xqzt": docspell.NoCorrection,
		}

		var buf bytes.Buffer
		require.NoError(t, docspell.WriteSummary(&buf, wrong))

		assert.Equal(t, "Teh=>The\nwrod=>word\nxqzt=>XX\n", buf.String())
	})

	t.Run("empty wrong map writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, docspell.WriteSummary(&buf, nil))

		assert.Empty(t, buf.String())
	})
}

func TestWriteLocations(t *testing.T) {
	t.Parallel()

	t.Run("emits task separators on change only", func(t *testing.T) {
		t.Parallel()

		ix := docspell.NewIndex()
		ix.Record("Teh", "/t1", "a.md", docspell.FileSection())
		ix.Record("wrod", "/t1", "a.md", docspell.BlockSection("def b"))
		ix.Record("wrod", "/t1", "a.md", docspell.BlockSection("class A"))
		ix.Record("wrod", "/t2", "b.ipynb", docspell.CellSection(3))
		wrong := map[string]string{"wrod": "word", "Teh": "The"}

		var buf bytes.Buffer
		require.NoError(t, docspell.WriteLocations(&buf, ix, wrong, []string{"/t1", "/t2"}))

		assert.Equal(t, strings.Join([]string{
			"=/t1",
			"Teh|The|a.md|e",
			"wrod|word|a.md|class A",
			"wrod|word|a.md|def b",
			"=/t2",
			"wrod|word|b.ipynb|3",
			"",
			"",
		}, "\n"), buf.String())
	})

	t.Run("two sections in one file share one task separator", func(t *testing.T) {
		t.Parallel()

		ix := docspell.NewIndex()
		ix.Record("wrod", "/t1", "a.py", docspell.BlockSection("def x"))
		ix.Record("wrod", "/t1", "a.py", docspell.BlockSection("def y"))
		wrong := map[string]string{"wrod": "word"}

		var buf bytes.Buffer
		require.NoError(t, docspell.WriteLocations(&buf, ix, wrong, []string{"/t1"}))

		assert.Equal(t, 1, strings.Count(buf.String(), "=/t1"))
		assert.Contains(t, buf.String(), "wrod|word|a.py|def x\nwrod|word|a.py|def y")
	})

	t.Run("is deterministic across renders", func(t *testing.T) {
		t.Parallel()

		ix := docspell.NewIndex()
		for _, word := range []string{"wrod", "Wrod", "teh", "Teh"} {
			ix.Record(word, "/t1", "a.md", docspell.FileSection())
			ix.Record(word, "/t2", "b.md", docspell.FileSection())
		}
		wrong := map[string]string{"wrod": "word", "Wrod": "Word", "teh": "the", "Teh": "The"}

		var first, second bytes.Buffer
		require.NoError(t, docspell.WriteLocations(&first, ix, wrong, []string{"/t1", "/t2"}))
		require.NoError(t, docspell.WriteLocations(&second, ix, wrong, []string{"/t1", "/t2"}))

		assert.Equal(t, first.String(), second.String())
	})
}

func TestWriteRunTable(t *testing.T) {
	t.Parallel()

	rows := []docspell.TaskStats{
		{Task: "~/t1", Files: 2, RawLines: 10, FilteredLines: 8, Words: 5, Wrong: 1, Locations: 3},
		{Task: docspell.TotalTask, Files: 2, RawLines: 10, FilteredLines: 8, Words: 5, Wrong: 1, Locations: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, docspell.WriteRunTable(&buf, rows))
	out := buf.String()

	t.Run("renders header and rule lines", func(t *testing.T) {
		assert.Contains(t, out, "| files |")
		assert.Contains(t, out, "| words | wrong |")
		assert.Equal(t, 2, strings.Count(out, strings.Repeat("-", 40)))
	})

	t.Run("task rows are 1-indexed", func(t *testing.T) {
		assert.Contains(t, out, "  1 | ~/t1")
	})

	t.Run("total row has a blank index", func(t *testing.T) {
		assert.Contains(t, out, "    | TOTAL")
	})
}

func TestComputeWordStats(t *testing.T) {
	t.Parallel()

	ix := docspell.NewIndex()
	ix.Record("good", "t1", "a.md", docspell.FileSection())
	ix.Record("wrod", "t1", "a.md", docspell.FileSection())
	ix.Record("wrod", "t1", "b.md", docspell.FileSection())
	ix.Record("Teh", "t2", "c.ipynb", docspell.CellSection(1))
	wrong := map[string]string{"wrod": "word", "Teh": "The"}

	rows := []docspell.TaskStats{
		{Task: "t1"},
		{Task: "t2"},
		{Task: docspell.TotalTask},
	}
	docspell.ComputeWordStats(rows, ix, wrong)

	assert.Equal(t, 2, rows[0].Words)
	assert.Equal(t, 1, rows[0].Wrong)
	assert.Equal(t, 2, rows[0].Locations)

	assert.Equal(t, 1, rows[1].Words)
	assert.Equal(t, 1, rows[1].Wrong)
	assert.Equal(t, 1, rows[1].Locations)

	assert.Equal(t, 3, rows[2].Words)
	assert.Equal(t, 2, rows[2].Wrong)
	assert.Equal(t, 3, rows[2].Locations)
}
