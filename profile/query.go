package profile

import (
	"regexp"
	"strings"
)

// FallbackQuery keeps the vector-space model from ever seeing an empty
// query: an all-empty profile still retrieves something sensible.
const FallbackQuery = "fundamentos para principiantes"

// listSeparators splits free-form enumerations: comma, semicolon, slash and
// the connectives "y"/"and", case-insensitively.
var listSeparators = regexp.MustCompile(`(?i)[,;/]| y | and `)

// splitSegments cuts an enumeration into trimmed lower-case segments.
func splitSegments(text string) []string {
	parts := listSeparators.Split(text, -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// BuildQuery renders the profile as the single hybrid-search query string.
// Parts appear in fixed order joined by " | "; an empty profile yields the
// fallback query.
func BuildQuery(s State) string {
	var parts []string
	if s.Area != "" {
		parts = append(parts, "area:"+s.Area)
	}
	if s.Level != "" {
		parts = append(parts, "level:"+s.Level)
	}
	if s.Access != "" {
		parts = append(parts, "access:"+s.Access)
	}
	if s.Population != "" {
		parts = append(parts, "population:"+s.Population)
	}
	if s.KeywordsText != "" {
		parts = append(parts, s.KeywordsText)
	}
	if len(s.Interests) > 0 {
		parts = append(parts, "intereses: "+strings.Join(s.Interests, ", "))
	}
	if len(s.Values) > 0 {
		parts = append(parts, "valores: "+strings.Join(s.Values, ", "))
	}
	if s.LearningStyle != "" {
		parts = append(parts, "aprendizaje:"+s.LearningStyle)
	}
	if s.Goals != "" {
		parts = append(parts, "meta:"+s.Goals)
	}
	if s.Constraints != "" {
		parts = append(parts, "restricciones:"+s.Constraints)
	}
	if len(parts) == 0 {
		return FallbackQuery
	}
	return strings.Join(parts, " | ")
}

// UserTokens derives the keyword-overlap token list from the keyword text
// and the accumulated interests: list segments split further on whitespace,
// lower-cased, deduplicated in first-seen order.
func UserTokens(s State) []string {
	source := s.KeywordsText + " " + strings.Join(s.Interests, " ")
	seen := make(map[string]bool)
	var tokens []string
	for _, segment := range splitSegments(source) {
		for _, word := range strings.Fields(segment) {
			if word == "" || seen[word] {
				continue
			}
			seen[word] = true
			tokens = append(tokens, word)
		}
	}
	return tokens
}
