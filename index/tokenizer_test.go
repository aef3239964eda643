package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atenea/rumbo/core"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits on non-alphanumerics", func(t *testing.T) {
		tokens := Tokenize("Inteligencia Artificial: datos, IA-2024!")
		assert.Equal(t, []string{"inteligencia", "artificial", "datos", "ia", "2024"}, tokens)
	})

	t.Run("keeps accented letters", func(t *testing.T) {
		tokens := Tokenize("Diseño y Programación básica")
		assert.Equal(t, []string{"diseño", "y", "programación", "básica"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize(" ,;| "))
	})
}

func TestWordTokens(t *testing.T) {
	// Single-character words are dropped by the vector-space tokenizer.
	tokens := wordTokens("IA y datos b")
	assert.Equal(t, []string{"ia", "datos"}, tokens)
}

func TestNgrams(t *testing.T) {
	t.Run("unigrams and bigrams", func(t *testing.T) {
		features := ngrams([]string{"marketing", "digital", "redes"})
		assert.Equal(t, []string{
			"marketing", "digital", "redes",
			"marketing digital", "digital redes",
		}, features)
	})

	t.Run("single word", func(t *testing.T) {
		assert.Equal(t, []string{"datos"}, ngrams([]string{"datos"}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, ngrams(nil))
	})
}

func TestDocumentText(t *testing.T) {
	course := &core.Course{
		Title:           "AI Basics",
		Description:     "Introducción a la IA",
		Keywords:        "ia, datos",
		CompetencyGroup: "Tecnología",
		Sheet:           "Cursos TIC",
		Portal:          "Atenea",
	}
	text := DocumentText(course)
	assert.Equal(t, "AI Basics | Introducción a la IA |  |  | ia, datos | Tecnología |  | Cursos TIC | Atenea", text)
}
