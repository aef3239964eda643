package index

import "math"

// tfidfModel is the vector-space model: TF-IDF weighting over unigram and
// bigram features with smoothed idf and l2-normalized document vectors, so
// cosine similarity reduces to a dot product. Immutable after newTFIDF.
type tfidfModel struct {
	vocab    map[string]int
	idf      []float64
	postings map[int][]posting // feature id -> weights of documents containing it
	docCount int
}

type posting struct {
	doc    int
	weight float64
}

// newTFIDF builds the model from per-document feature lists (unigrams and
// bigrams, minimum document frequency 1).
func newTFIDF(docs [][]string) *tfidfModel {
	m := &tfidfModel{
		vocab:    make(map[string]int),
		postings: make(map[int][]posting),
		docCount: len(docs),
	}

	counts := make([]map[int]int, len(docs))
	df := []int{}
	for i, features := range docs {
		docCounts := make(map[int]int, len(features))
		for _, feat := range features {
			id, ok := m.vocab[feat]
			if !ok {
				id = len(m.vocab)
				m.vocab[feat] = id
				df = append(df, 0)
			}
			if docCounts[id] == 0 {
				df[id]++
			}
			docCounts[id]++
		}
		counts[i] = docCounts
	}

	// Smoothed idf: ln((1+N)/(1+df)) + 1.
	n := float64(len(docs))
	m.idf = make([]float64, len(df))
	for id, freq := range df {
		m.idf[id] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	for i, docCounts := range counts {
		var norm float64
		for id, count := range docCounts {
			w := float64(count) * m.idf[id]
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for id, count := range docCounts {
			w := float64(count) * m.idf[id] / norm
			m.postings[id] = append(m.postings[id], posting{doc: i, weight: w})
		}
	}
	return m
}

// scores returns the cosine similarity between the query and every document.
// Query features outside the vocabulary are dropped; a query with no known
// features yields all zeros.
func (m *tfidfModel) scores(query []string) []float64 {
	out := make([]float64, m.docCount)

	queryCounts := make(map[int]int, len(query))
	for _, feat := range query {
		if id, ok := m.vocab[feat]; ok {
			queryCounts[id]++
		}
	}
	if len(queryCounts) == 0 {
		return out
	}

	var norm float64
	for id, count := range queryCounts {
		w := float64(count) * m.idf[id]
		norm += w * w
	}
	norm = math.Sqrt(norm)

	for id, count := range queryCounts {
		qw := float64(count) * m.idf[id] / norm
		for _, p := range m.postings[id] {
			out[p.doc] += qw * p.weight
		}
	}
	return out
}
