package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusTokens(docs ...string) [][]string {
	out := make([][]string, len(docs))
	for i, d := range docs {
		out[i] = Tokenize(d)
	}
	return out
}

func TestBM25Scores(t *testing.T) {
	model := newBM25(corpusTokens(
		"inteligencia artificial y datos",
		"marketing digital para redes sociales",
		"curso corto de datos y analítica",
	))

	t.Run("matching document scores highest", func(t *testing.T) {
		scores := model.scores(Tokenize("marketing digital"))
		require.Len(t, scores, 3)
		assert.Greater(t, scores[1], scores[0])
		assert.Greater(t, scores[1], scores[2])
	})

	t.Run("term in multiple documents scores both", func(t *testing.T) {
		scores := model.scores(Tokenize("datos"))
		assert.Greater(t, scores[0], 0.0)
		assert.Greater(t, scores[2], 0.0)
		assert.Zero(t, scores[1])
	})

	t.Run("empty query yields zeros", func(t *testing.T) {
		scores := model.scores(nil)
		assert.Equal(t, []float64{0, 0, 0}, scores)
	})

	t.Run("unknown terms yield zeros", func(t *testing.T) {
		scores := model.scores(Tokenize("astronomía"))
		assert.Equal(t, []float64{0, 0, 0}, scores)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := model.scores(Tokenize("datos analítica"))
		b := model.scores(Tokenize("datos analítica"))
		assert.Equal(t, a, b)
	})
}

func TestBM25NegativeIDFFloor(t *testing.T) {
	// "datos" appears in every document; raw Okapi idf would be negative.
	model := newBM25(corpusTokens(
		"datos abiertos",
		"datos personales",
		"datos masivos",
	))
	scores := model.scores(Tokenize("datos"))
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "doc %d", i)
	}
}

func TestBM25EmptyCorpus(t *testing.T) {
	model := newBM25(nil)
	assert.Empty(t, model.scores(Tokenize("datos")))
}

func TestBM25LengthNormalization(t *testing.T) {
	// Same term frequency; the shorter document wins.
	model := newBM25(corpusTokens(
		"python",
		"python y muchas otras palabras que alargan bastante el documento",
	))
	scores := model.scores(Tokenize("python"))
	assert.Greater(t, scores[0], scores[1])
}
