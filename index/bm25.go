package index

import "math"

// Okapi BM25 parameters. The epsilon floor keeps very common terms from
// contributing negative relevance.
const (
	bm25K1      = 1.5
	bm25B       = 0.75
	bm25Epsilon = 0.25
)

// bm25Model holds the corpus statistics of the probabilistic model.
// Immutable after newBM25.
type bm25Model struct {
	termFreqs []map[string]int // Per-document term counts
	docLens   []int
	avgDocLen float64
	idf       map[string]float64
}

// newBM25 builds the model from pre-tokenized documents.
func newBM25(docs [][]string) *bm25Model {
	m := &bm25Model{
		termFreqs: make([]map[string]int, len(docs)),
		docLens:   make([]int, len(docs)),
		idf:       make(map[string]float64),
	}

	df := make(map[string]int)
	total := 0
	for i, tokens := range docs {
		freqs := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freqs[tok]++
		}
		m.termFreqs[i] = freqs
		m.docLens[i] = len(tokens)
		total += len(tokens)
		for tok := range freqs {
			df[tok]++
		}
	}
	if len(docs) > 0 {
		m.avgDocLen = float64(total) / float64(len(docs))
	}

	// Okapi idf with flooring: negative idf values (terms in more than half
	// the corpus) are raised to epsilon times the average idf. On degenerate
	// corpora the average itself can go negative; epsilon is the floor then.
	n := float64(len(docs))
	idfSum := 0.0
	var negative []string
	for tok, freq := range df {
		idf := math.Log((n - float64(freq) + 0.5) / (float64(freq) + 0.5))
		m.idf[tok] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, tok)
		}
	}
	if len(df) > 0 {
		floor := bm25Epsilon * idfSum / float64(len(df))
		if floor <= 0 {
			floor = bm25Epsilon
		}
		for _, tok := range negative {
			m.idf[tok] = floor
		}
	}
	return m
}

// scores returns the BM25 relevance of every document for the query tokens.
// An empty query yields all zeros.
func (m *bm25Model) scores(query []string) []float64 {
	out := make([]float64, len(m.termFreqs))
	if len(query) == 0 || m.avgDocLen == 0 {
		return out
	}
	for i, freqs := range m.termFreqs {
		norm := bm25K1 * (1 - bm25B + bm25B*float64(m.docLens[i])/m.avgDocLen)
		var score float64
		for _, tok := range query {
			f := float64(freqs[tok])
			if f == 0 {
				continue
			}
			score += m.idf[tok] * f * (bm25K1 + 1) / (f + norm)
		}
		out[i] = score
	}
	return out
}
