package rank

import (
	"strings"

	"github.com/atenea/rumbo/core"
)

// Feature names. Every candidate's Feats map carries exactly these keys.
const (
	FeatureAreaExact   = "area_exact"
	FeatureSheetMatch  = "sheet_match"
	FeatureLevel       = "level"
	FeatureDurationFit = "duration_fit"
	FeatureAccess      = "access"
	FeaturePopulation  = "population"
	FeatureKwOverlap   = "kw_overlap"
	FeatureSimTFIDF    = "sim_tfidf"
	FeatureSimBM25     = "sim_bm25"
)

// FeatureNames lists all nine features in their canonical order.
var FeatureNames = []string{
	FeatureAreaExact, FeatureSheetMatch, FeatureLevel,
	FeatureDurationFit, FeatureAccess, FeaturePopulation,
	FeatureKwOverlap, FeatureSimTFIDF, FeatureSimBM25,
}

// Weights maps feature names to their scoring weight. Weights are fixed,
// hand-tuned constants, never learned.
type Weights map[string]float64

// DefaultWeights returns the hand-tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		FeatureAreaExact:   3.0,
		FeatureSheetMatch:  2.0,
		FeatureLevel:       2.0,
		FeatureDurationFit: 1.0,
		FeatureAccess:      1.0,
		FeaturePopulation:  1.0,
		FeatureKwOverlap:   1.0, // per hit, capped
		FeatureSimTFIDF:    2.0,
		FeatureSimBM25:     1.5,
	}
}

// DefaultMaxKeywordHits caps the kw_overlap feature value.
const DefaultMaxKeywordHits = 4

// TextBlob concatenates the secondary text fields searched by the
// keyword-overlap feature.
func TextBlob(c *core.Course) string {
	return strings.Join([]string{
		c.Keywords,
		c.Description,
		c.Title,
		c.Competency,
		c.Skill,
	}, " | ")
}

// keywordOverlap counts user tokens appearing as substrings of the blob,
// capped at maxHits.
func keywordOverlap(userTokens []string, blob string, maxHits int) int {
	if len(userTokens) == 0 {
		return 0
	}
	s := strings.ToLower(blob)
	hits := 0
	for _, tok := range userTokens {
		if strings.Contains(s, tok) {
			hits++
		}
	}
	if hits > maxHits {
		return maxHits
	}
	return hits
}

// featurize computes the nine-dimensional feature vector for one candidate.
// area_exact and sheet_match are mutually exclusive, with area_exact winning.
func featurize(c *core.Candidate, facets Facets, userTokens []string, maxHits int) map[string]float64 {
	feats := make(map[string]float64, len(FeatureNames))
	for _, name := range FeatureNames {
		feats[name] = 0.0
	}
	course := c.Course

	if area := fold(facets.Area); area != "" {
		switch area {
		case fold(course.CompetencyGroup):
			feats[FeatureAreaExact] = 1.0
		case fold(course.Sheet):
			feats[FeatureSheetMatch] = 1.0
		}
	}

	if level := fold(facets.Level); level != "" && fold(course.Level) == level {
		feats[FeatureLevel] = 1.0
	}

	if facets.HasCeiling() && course.HasHours() && course.Hours <= facets.MaxHours {
		feats[FeatureDurationFit] = 1.0
	}

	if access := fold(facets.Access); access != "" && strings.Contains(strings.ToLower(course.Access), access) {
		feats[FeatureAccess] = 1.0
	}

	if pop := fold(facets.Population); pop != "" && strings.Contains(strings.ToLower(course.Population), pop) {
		feats[FeaturePopulation] = 1.0
	}

	feats[FeatureKwOverlap] = float64(keywordOverlap(userTokens, TextBlob(course), maxHits))
	feats[FeatureSimTFIDF] = c.TFIDFNorm
	feats[FeatureSimBM25] = c.BM25Norm

	return feats
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
