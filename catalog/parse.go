package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseHours extracts a numeric hour count from free-text duration.
// The first number in the text wins; values expressed in minutes are
// converted to hours and rounded to two decimals. Unparseable input yields
// NaN, never an error.
func ParseHours(text string) float64 {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return math.NaN()
	}
	m := numberPattern.FindString(s)
	if m == "" {
		return math.NaN()
	}
	val, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	if strings.Contains(s, "min") {
		return math.Round(val/60.0*100) / 100
	}
	return val
}

// normalizeHeader canonicalizes a column header: NFKC form with interior
// whitespace collapsed to single spaces.
func normalizeHeader(header string) string {
	h := strings.Join(strings.Fields(header), " ")
	return norm.NFKC.String(h)
}

// cleanCell trims a cell value. Values stay case-preserved; matching rules
// downstream decide their own case handling.
func cleanCell(value string) string {
	return strings.TrimSpace(value)
}
