package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	t.Run("empty profile yields fallback", func(t *testing.T) {
		s := NewState("es")
		s.MaxHours = 40 // not part of the query
		assert.Equal(t, FallbackQuery, BuildQuery(s))
	})

	t.Run("parts appear in fixed order", func(t *testing.T) {
		s := NewState("es")
		s.Area = "Tecnología"
		s.Level = "Básico"
		s.KeywordsText = "inteligencia artificial"
		s.Interests = []string{"datos", "ia"}
		s.LearningStyle = "proyectos"
		s.Goals = "emprender"

		query := BuildQuery(s)
		assert.Equal(t,
			"area:Tecnología | level:Básico | inteligencia artificial | intereses: datos, ia | aprendizaje:proyectos | meta:emprender",
			query)
	})

	t.Run("single facet", func(t *testing.T) {
		s := NewState("es")
		s.Access = "REA"
		assert.Equal(t, "access:REA", BuildQuery(s))
	})
}

func TestUserTokens(t *testing.T) {
	t.Run("splits on separators and whitespace", func(t *testing.T) {
		s := NewState("es")
		s.KeywordsText = "inteligencia artificial, datos; marketing / diseño y cloud and Python"
		tokens := UserTokens(s)
		assert.Equal(t, []string{
			"inteligencia", "artificial", "datos", "marketing", "diseño", "cloud", "python",
		}, tokens)
	})

	t.Run("interests contribute tokens", func(t *testing.T) {
		s := NewState("es")
		s.Interests = []string{"finanzas", "salud"}
		assert.Equal(t, []string{"finanzas", "salud"}, UserTokens(s))
	})

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		s := NewState("es")
		s.KeywordsText = "datos, IA"
		s.Interests = []string{"datos", "ia"}
		assert.Equal(t, []string{"datos", "ia"}, UserTokens(s))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, UserTokens(NewState("es")))
	})
}
