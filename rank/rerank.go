package rank

import (
	"log/slog"
	"sort"

	"github.com/atenea/rumbo/core"
)

// Scorer computes feature vectors and weighted scores for candidates.
type Scorer struct {
	weights Weights
	maxHits int
	logger  *slog.Logger
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithWeights overrides the default feature weights. Unknown feature names
// are ignored at scoring time; missing ones weigh zero.
func WithWeights(weights Weights) ScorerOption {
	return func(s *Scorer) {
		if weights != nil {
			s.weights = weights
		}
	}
}

// WithMaxKeywordHits overrides the kw_overlap cap.
func WithMaxKeywordHits(maxHits int) ScorerOption {
	return func(s *Scorer) {
		if maxHits >= 0 {
			s.maxHits = maxHits
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewScorer creates a scorer with the default weights and cap.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		weights: DefaultWeights(),
		maxHits: DefaultMaxKeywordHits,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the scorer's weight table.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Rerank enriches every candidate with its feature vector and weighted
// score, stable-sorts descending by score, and truncates to finalCount when
// finalCount is positive. An empty input yields an empty output.
func (s *Scorer) Rerank(candidates []core.Candidate, facets Facets, userTokens []string, finalCount int) []core.Candidate {
	ranked := make([]core.Candidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		feats := featurize(&ranked[i], facets, userTokens, s.maxHits)
		ranked[i].Feats = feats
		ranked[i].Score = s.score(feats)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if finalCount > 0 && len(ranked) > finalCount {
		ranked = ranked[:finalCount]
	}
	s.logger.Debug("reranked candidates", "in", len(candidates), "out", len(ranked))
	return ranked
}

// score is the weighted linear combination of the feature values.
func (s *Scorer) score(feats map[string]float64) float64 {
	total := 0.0
	for name, value := range feats {
		total += value * s.weights[name]
	}
	return total
}
