package index

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/atenea/rumbo/core"
)

// scoreFloor avoids division by zero when normalizing by a model's top score.
const scoreFloor = 1e-9

// Index is the lexical index over one catalog: the tokenized corpus and the
// statistics of both retrieval models. Immutable after construction, safe
// for concurrent reads.
type Index struct {
	catalog     *core.Catalog
	fingerprint core.ID
	bm25        *bm25Model
	tfidf       *tfidfModel
	logger      *slog.Logger
}

// Option configures index construction.
type Option func(*builder) error

type builder struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the worker pool size used to tokenize the corpus during
// construction. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *builder) error {
		if size < 1 {
			size = 1
		}
		b.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// New builds an index over the catalog. The catalog may be empty; retrieval
// then returns empty results. Construction is the only concurrent phase; the
// resulting index is read-only.
func New(catalog *core.Catalog, opts ...Option) (*Index, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	b := &builder{poolSize: poolSize, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	n := catalog.Len()
	bm25Docs := make([][]string, n)
	tfidfDocs := make([][]string, n)

	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			text := DocumentText(&catalog.Courses[i])
			bm25Docs[i] = Tokenize(text)
			tfidfDocs[i] = ngrams(wordTokens(text))
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	idx := &Index{
		catalog:     catalog,
		fingerprint: catalog.Fingerprint(),
		bm25:        newBM25(bm25Docs),
		tfidf:       newTFIDF(tfidfDocs),
		logger:      b.logger,
	}
	idx.logger.Info("lexical index built", "documents", n, "fingerprint", uint64(idx.fingerprint))
	return idx, nil
}

// Catalog returns the catalog this index was built over.
func (idx *Index) Catalog() *core.Catalog {
	return idx.catalog
}

// Fingerprint returns the identity of the indexed catalog.
func (idx *Index) Fingerprint() core.ID {
	return idx.fingerprint
}

// HybridSearch retrieves the topk most relevant courses for the query.
//
// Both models retrieve their own topk lists; each document's per-model
// contribution is its raw score divided by the model's top score (floored at
// 1e-9) and by its 1-based rank in that list. A document missing from one
// list contributes zero there. Candidates are ordered by the summed fused
// score and carry both per-model contributions for downstream scoring.
func (idx *Index) HybridSearch(query string, topk int) []core.Candidate {
	if topk <= 0 || idx.catalog.Len() == 0 {
		return []core.Candidate{}
	}

	bm25Top := topIndices(idx.bm25.scores(Tokenize(query)), topk)
	tfidfTop := topIndices(idx.tfidf.scores(ngrams(wordTokens(query))), topk)

	type contrib struct{ bm25, tfidf float64 }
	items := make(map[int]*contrib, len(bm25Top)+len(tfidfTop))

	addContribs(bm25Top, func(doc int, v float64) {
		c, ok := items[doc]
		if !ok {
			c = &contrib{}
			items[doc] = c
		}
		c.bm25 = v
	})
	addContribs(tfidfTop, func(doc int, v float64) {
		c, ok := items[doc]
		if !ok {
			c = &contrib{}
			items[doc] = c
		}
		c.tfidf = v
	})

	fused := make([]core.Candidate, 0, len(items))
	for doc, c := range items {
		fused = append(fused, core.Candidate{
			Index:     doc,
			Course:    &idx.catalog.Courses[doc],
			BM25Norm:  c.bm25,
			TFIDFNorm: c.tfidf,
		})
	}
	// Fused score descending; record index breaks ties so identical inputs
	// always produce identical orderings.
	sort.SliceStable(fused, func(i, j int) bool {
		si := fused[i].BM25Norm + fused[i].TFIDFNorm
		sj := fused[j].BM25Norm + fused[j].TFIDFNorm
		if si != sj {
			return si > sj
		}
		return fused[i].Index < fused[j].Index
	})
	if len(fused) > topk {
		fused = fused[:topk]
	}
	return fused
}

// scored pairs a document with its raw model score for one result list.
type scored struct {
	doc   int
	score float64
}

// topIndices returns the k best documents by score, ties broken by document
// index. Zero-scoring documents participate; their fusion contribution is
// zero anyway.
func topIndices(scores []float64, k int) []scored {
	all := make([]scored, len(scores))
	for i, s := range scores {
		all[i] = scored{doc: i, score: s}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].doc < all[j].doc
	})
	if len(all) > k {
		all = all[:k]
	}
	return all
}

// addContribs applies the fusion normalization to one result list: raw score
// over the list's top score, times the reciprocal 1-based rank.
func addContribs(list []scored, set func(doc int, v float64)) {
	if len(list) == 0 {
		return
	}
	div := list[0].score // list is sorted descending
	if div < scoreFloor {
		div = scoreFloor
	}
	for rank, item := range list {
		set(item.doc, item.score/div*(1.0/float64(rank+1)))
	}
}
