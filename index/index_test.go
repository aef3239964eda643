package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atenea/rumbo/core"
)

func testCatalog() *core.Catalog {
	return &core.Catalog{Courses: []core.Course{
		{
			Title: "AI Basics", Description: "Introducción a la inteligencia artificial",
			Keywords: "ia, datos", Level: "Básico", Hours: 10, Sheet: "Tecnología",
		},
		{
			Title: "AI Advanced", Description: "Aprendizaje profundo y modelos",
			Level: "Avanzado", Hours: 40, Sheet: "Tecnología",
		},
		{
			Title: "Marketing 101", Description: "Fundamentos de marketing digital",
			Keywords: "marketing", Level: "Básico", Hours: 5, Sheet: "Negocios",
		},
	}}
}

func buildIndex(t *testing.T, catalog *core.Catalog) *Index {
	t.Helper()
	idx, err := New(catalog, WithPoolSize(2))
	require.NoError(t, err)
	return idx
}

func TestNew(t *testing.T) {
	t.Run("nil catalog", func(t *testing.T) {
		_, err := New(nil)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		idx := buildIndex(t, &core.Catalog{})
		assert.Empty(t, idx.HybridSearch("inteligencia artificial", 10))
	})

	t.Run("fingerprint matches catalog", func(t *testing.T) {
		catalog := testCatalog()
		idx := buildIndex(t, catalog)
		assert.Equal(t, catalog.Fingerprint(), idx.Fingerprint())
		assert.Same(t, catalog, idx.Catalog())
	})
}

func TestHybridSearch(t *testing.T) {
	idx := buildIndex(t, testCatalog())

	t.Run("returns at most topk candidates", func(t *testing.T) {
		assert.Len(t, idx.HybridSearch("inteligencia artificial", 2), 2)
		assert.Len(t, idx.HybridSearch("inteligencia artificial", 80), 3)
	})

	t.Run("normalized scores are non-negative", func(t *testing.T) {
		for _, c := range idx.HybridSearch("marketing datos", 80) {
			assert.GreaterOrEqual(t, c.BM25Norm, 0.0)
			assert.GreaterOrEqual(t, c.TFIDFNorm, 0.0)
		}
	})

	t.Run("best match leads with full contributions", func(t *testing.T) {
		results := idx.HybridSearch("marketing digital", 80)
		require.NotEmpty(t, results)
		top := results[0]
		assert.Equal(t, "Marketing 101", top.Course.Title)
		// Rank 1 in both lists: contribution is score/topscore = 1 per model.
		assert.InDelta(t, 1.0, top.BM25Norm, 1e-9)
		assert.InDelta(t, 1.0, top.TFIDFNorm, 1e-9)
	})

	t.Run("candidates reference catalog records", func(t *testing.T) {
		catalog := testCatalog()
		idx := buildIndex(t, catalog)
		for _, c := range idx.HybridSearch("ia", 80) {
			assert.Same(t, &catalog.Courses[c.Index], c.Course)
		}
	})

	t.Run("empty query returns zero scores, no error", func(t *testing.T) {
		results := idx.HybridSearch("", 80)
		for _, c := range results {
			assert.Zero(t, c.BM25Norm)
			assert.Zero(t, c.TFIDFNorm)
		}
	})

	t.Run("zero topk", func(t *testing.T) {
		assert.Empty(t, idx.HybridSearch("datos", 0))
	})
}

func TestHybridSearchIdempotent(t *testing.T) {
	// Two indexes over identical catalogs rank identically with identical
	// normalized scores.
	first := buildIndex(t, testCatalog())
	second := buildIndex(t, testCatalog())

	a := first.HybridSearch("inteligencia artificial datos", 80)
	b := second.HybridSearch("inteligencia artificial datos", 80)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Index, b[i].Index)
		assert.InDelta(t, a[i].BM25Norm, b[i].BM25Norm, 1e-12)
		assert.InDelta(t, a[i].TFIDFNorm, b[i].TFIDFNorm, 1e-12)
	}
}

func TestTopIndices(t *testing.T) {
	scores := []float64{0.2, 0.9, 0.2, 0.0}

	top := topIndices(scores, 3)
	require.Len(t, top, 3)
	assert.Equal(t, 1, top[0].doc)
	// Equal scores keep ascending document order.
	assert.Equal(t, 0, top[1].doc)
	assert.Equal(t, 2, top[2].doc)

	assert.Len(t, topIndices(scores, 10), 4)
}

func TestAddContribs(t *testing.T) {
	got := map[int]float64{}
	addContribs([]scored{{doc: 7, score: 2.0}, {doc: 3, score: 1.0}}, func(doc int, v float64) {
		got[doc] = v
	})
	assert.InDelta(t, 1.0, got[7], 1e-12)      // 2/2 * 1/1
	assert.InDelta(t, 0.25, got[3], 1e-12)     // 1/2 * 1/2
	assert.False(t, math.IsNaN(got[7]))

	// All-zero list: the floor divisor keeps contributions at zero.
	got = map[int]float64{}
	addContribs([]scored{{doc: 1, score: 0}}, func(doc int, v float64) { got[doc] = v })
	assert.Zero(t, got[1])
}

func TestCache(t *testing.T) {
	cache := NewCache(WithPoolSize(1))

	t.Run("builds once per fingerprint", func(t *testing.T) {
		first, err := cache.Get(testCatalog())
		require.NoError(t, err)
		second, err := cache.Get(testCatalog())
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("changed catalog gets a new index", func(t *testing.T) {
		changed := testCatalog()
		changed.Courses[0].Title = "AI Fundamentals"
		idx, err := cache.Get(changed)
		require.NoError(t, err)
		assert.Equal(t, changed.Fingerprint(), idx.Fingerprint())
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := cache.Get(nil)
		assert.Equal(t, ErrCatalogRequired, err)
	})
}
