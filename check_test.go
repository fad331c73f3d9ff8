package docspell_test

import (
	"testing"

	"github.com/docspell/docspell"
	"github.com/docspell/docspell/mock"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	newIndex := func(words ...string) *docspell.Index {
		ix := docspell.NewIndex()
		for _, word := range words {
			ix.Record(word, "task", "a.md", docspell.FileSection())
		}
		return ix
	}

	t.Run("wrong word maps to the transferred-case suggestion", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			SuggestFn: func(word string, maxDist int) []docspell.Suggestion {
				assert.Equal(t, 2, maxDist)
				return []docspell.Suggestion{{Term: "The", Distance: 1, Count: 100}}
			},
		}

		wrong := docspell.Classify(newIndex("Teh"), nil, dict)

		assert.Equal(t, map[string]string{"Teh": "The"}, wrong)
	})

	t.Run("word equal to its top suggestion is correct", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			SuggestFn: func(word string, maxDist int) []docspell.Suggestion {
				return []docspell.Suggestion{{Term: word, Distance: 0, Count: 100}}
			},
		}

		wrong := docspell.Classify(newIndex("fine"), nil, dict)

		assert.Empty(t, wrong)
	})

	t.Run("word with no suggestion maps to the sentinel", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			SuggestFn: func(word string, maxDist int) []docspell.Suggestion { return nil },
		}

		wrong := docspell.Classify(newIndex("xqzt"), nil, dict)

		assert.Equal(t, map[string]string{"xqzt": docspell.NoCorrection}, wrong)
	})

	t.Run("allow-listed words are skipped", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			SuggestFn: func(word string, maxDist int) []docspell.Suggestion {
				t.Fatalf("dictionary queried for allow-listed word %q", word)
				return nil
			},
		}
		allowed := map[string]struct{}{"Teh": {}}

		wrong := docspell.Classify(newIndex("Teh"), allowed, dict)

		assert.Empty(t, wrong)
	})

	t.Run("words are classified in stable sorted order", func(t *testing.T) {
		t.Parallel()

		var queried []string
		dict := &mock.Dictionary{
			SuggestFn: func(word string, maxDist int) []docspell.Suggestion {
				queried = append(queried, word)
				return nil
			},
		}

		docspell.Classify(newIndex("zebra", "Apple", "mango"), nil, dict)

		assert.Equal(t, []string{"Apple", "mango", "zebra"}, queried)
	})
}
