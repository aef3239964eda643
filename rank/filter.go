package rank

import (
	"math"
	"strings"

	"github.com/atenea/rumbo/core"
)

// Facets are the explicit user-selected constraints. An empty string (or a
// NaN ceiling) means the facet is unset and vacuously true for filtering.
type Facets struct {
	Area       string  // Matches the competency group or the sheet label, exactly
	Level      string  // Exact, case-preserved complexity level
	Access     string  // Case-insensitive substring of the access type
	Population string  // Case-insensitive substring of the target population
	MaxHours   float64 // Duration ceiling in hours; NaN means no ceiling
}

// NoCeiling is the MaxHours value for "no duration limit".
func NoCeiling() float64 {
	return math.NaN()
}

// HasCeiling reports whether a duration ceiling is set.
func (f Facets) HasCeiling() bool {
	return !math.IsNaN(f.MaxHours)
}

// Match reports whether the course satisfies every set facet.
//
// A course whose duration could not be parsed counts as infinitely long:
// it is silently excluded whenever a ceiling is set.
func (f Facets) Match(c *core.Course) bool {
	if f.Area != "" && c.CompetencyGroup != f.Area && c.Sheet != f.Area {
		return false
	}
	if f.Level != "" && strings.TrimSpace(c.Level) != f.Level {
		return false
	}
	if f.Access != "" && !containsFold(c.Access, f.Access) {
		return false
	}
	if f.Population != "" && !containsFold(c.Population, f.Population) {
		return false
	}
	if f.HasCeiling() {
		if !c.HasHours() || c.Hours > f.MaxHours {
			return false
		}
	}
	return true
}

// Filter keeps the candidates whose course passes the facet predicate,
// preserving retrieval order. An empty result is a valid outcome, not an
// error.
func Filter(candidates []core.Candidate, facets Facets) []core.Candidate {
	kept := make([]core.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if facets.Match(c.Course) {
			kept = append(kept, c)
		}
	}
	return kept
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
