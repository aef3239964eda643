package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atenea/rumbo/core"
)

func candidateFor(c *core.Course) core.Candidate {
	return core.Candidate{Course: c}
}

func TestFacetsMatch(t *testing.T) {
	course := &core.Course{
		Title:           "AI Basics",
		CompetencyGroup: "Tecnología",
		Sheet:           "Cursos TIC",
		Level:           "Básico",
		Access:          "REA - acceso abierto",
		Population:      "Jóvenes y adultos",
		Hours:           10,
	}

	t.Run("no facets set matches everything", func(t *testing.T) {
		assert.True(t, Facets{MaxHours: NoCeiling()}.Match(course))
	})

	t.Run("area matches competency group", func(t *testing.T) {
		f := Facets{Area: "Tecnología", MaxHours: NoCeiling()}
		assert.True(t, f.Match(course))
	})

	t.Run("area matches sheet label", func(t *testing.T) {
		f := Facets{Area: "Cursos TIC", MaxHours: NoCeiling()}
		assert.True(t, f.Match(course))
	})

	t.Run("area mismatch excludes", func(t *testing.T) {
		f := Facets{Area: "Negocios", MaxHours: NoCeiling()}
		assert.False(t, f.Match(course))
	})

	t.Run("level is exact and case-preserved", func(t *testing.T) {
		assert.True(t, Facets{Level: "Básico", MaxHours: NoCeiling()}.Match(course))
		assert.False(t, Facets{Level: "básico", MaxHours: NoCeiling()}.Match(course))
		assert.False(t, Facets{Level: "Avanzado", MaxHours: NoCeiling()}.Match(course))
	})

	t.Run("access is a case-insensitive substring", func(t *testing.T) {
		assert.True(t, Facets{Access: "rea", MaxHours: NoCeiling()}.Match(course))
		assert.False(t, Facets{Access: "Moodle", MaxHours: NoCeiling()}.Match(course))
	})

	t.Run("population is a case-insensitive substring", func(t *testing.T) {
		assert.True(t, Facets{Population: "JÓVENES", MaxHours: NoCeiling()}.Match(course))
		assert.False(t, Facets{Population: "docentes", MaxHours: NoCeiling()}.Match(course))
	})

	t.Run("missing population field never matches a set facet", func(t *testing.T) {
		bare := &core.Course{Title: "X", Hours: 1}
		assert.False(t, Facets{Population: "jóvenes", MaxHours: NoCeiling()}.Match(bare))
	})
}

func TestFacetsMaxHours(t *testing.T) {
	t.Run("exact boundary passes", func(t *testing.T) {
		course := &core.Course{Title: "X", Hours: 20}
		assert.True(t, Facets{MaxHours: 20}.Match(course))
	})

	t.Run("epsilon above fails", func(t *testing.T) {
		course := &core.Course{Title: "X", Hours: 20.000001}
		assert.False(t, Facets{MaxHours: 20}.Match(course))
	})

	t.Run("unparseable hours excluded when ceiling set", func(t *testing.T) {
		course := &core.Course{Title: "X", Hours: math.NaN()}
		assert.False(t, Facets{MaxHours: 20}.Match(course))
	})

	t.Run("unparseable hours pass without ceiling", func(t *testing.T) {
		course := &core.Course{Title: "X", Hours: math.NaN()}
		assert.True(t, Facets{MaxHours: NoCeiling()}.Match(course))
	})
}

func TestFilter(t *testing.T) {
	basic := &core.Course{Title: "AI Basics", Level: "Avanzado", Hours: 10}
	other := &core.Course{Title: "Marketing 101", Level: "Básico", Hours: 5}
	candidates := []core.Candidate{candidateFor(basic), candidateFor(other)}

	t.Run("keeps only matching candidates in order", func(t *testing.T) {
		kept := Filter(candidates, Facets{Level: "Avanzado", MaxHours: NoCeiling()})
		assert.Len(t, kept, 1)
		for _, c := range kept {
			assert.Equal(t, "Avanzado", c.Course.Level)
		}
	})

	t.Run("empty result is valid", func(t *testing.T) {
		kept := Filter(candidates, Facets{Level: "Intermedio", MaxHours: NoCeiling()})
		assert.Empty(t, kept)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Filter(nil, Facets{MaxHours: NoCeiling()}))
	})
}
