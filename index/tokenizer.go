package index

import (
	"strings"
	"unicode"

	"github.com/atenea/rumbo/core"
)

// DocumentText flattens a course into the single string that both lexical
// models index. Field order is fixed; changing it changes every score.
func DocumentText(c *core.Course) string {
	return strings.Join([]string{
		c.Title,
		c.Description,
		c.Competency,
		c.Skill,
		c.Keywords,
		c.CompetencyGroup,
		c.Population,
		c.Sheet,
		c.Portal,
	}, " | ")
}

// Tokenize lower-cases the text and splits it on any run of characters that
// is not a letter or a digit. Accented Latin letters count as letters.
// Empty tokens are discarded.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// wordTokens is the vector-space model's own tokenizer: lower-cased runs of
// word characters (letters, digits, underscore) at least two runes long.
func wordTokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ngrams expands word tokens into unigram and bigram features. Bigrams join
// adjacent words with a single space.
func ngrams(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	features := make([]string, 0, 2*len(words)-1)
	features = append(features, words...)
	for i := 0; i+1 < len(words); i++ {
		features = append(features, words[i]+" "+words[i+1])
	}
	return features
}
