package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("inteligencia artificial")
		id2 := IDFromContent("inteligencia artificial")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("marketing digital")
		id2 := IDFromContent("marketing digita")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content", func(t *testing.T) {
		id := IDFromContent("")
		assert.Equal(t, id, IDFromContent(""))
	})
}

func TestCourseHasHours(t *testing.T) {
	course := Course{Title: "AI Basics", Hours: 10}
	assert.True(t, course.HasHours())

	course.Hours = math.NaN()
	assert.False(t, course.HasHours())
}

func TestCatalogFingerprint(t *testing.T) {
	catalog := func() *Catalog {
		return &Catalog{Courses: []Course{
			{Title: "AI Basics", Level: "Básico", Hours: 10, Keywords: "ia, datos"},
			{Title: "Marketing 101", Level: "Básico", Hours: 5, Keywords: "marketing"},
		}}
	}

	t.Run("identical catalogs share fingerprint", func(t *testing.T) {
		assert.Equal(t, catalog().Fingerprint(), catalog().Fingerprint())
	})

	t.Run("row change moves fingerprint", func(t *testing.T) {
		changed := catalog()
		changed.Courses[1].Level = "Avanzado"
		assert.NotEqual(t, catalog().Fingerprint(), changed.Fingerprint())
	})

	t.Run("nan hours are stable", func(t *testing.T) {
		a := catalog()
		b := catalog()
		a.Courses[0].Hours = math.NaN()
		b.Courses[0].Hours = math.NaN()
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("empty catalog", func(t *testing.T) {
		empty := &Catalog{}
		assert.Equal(t, empty.Fingerprint(), (&Catalog{}).Fingerprint())
		assert.Equal(t, 0, empty.Len())
	})
}
