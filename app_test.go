package rumbo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atenea/rumbo/ai"
	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/rank"
)

func fixtureCatalog() *core.Catalog {
	return &core.Catalog{Courses: []core.Course{
		{
			Title:           "Introducción a la inteligencia artificial",
			Description:     "Fundamentos de IA para principiantes con proyectos prácticos",
			CompetencyGroup: "Tecnología",
			Keywords:        "ia, datos, python",
			Level:           "Básico",
			Access:          "REA",
			Population:      "Jóvenes",
			Duration:        "20 horas",
			Hours:           20,
			Sheet:           "Tecnología",
			Portal:          "Coursera",
			URL:             "https://example.org/ia",
		},
		{
			Title:           "Marketing digital aplicado",
			Description:     "Campañas, redes sociales y analítica para emprendedores",
			CompetencyGroup: "Negocios",
			Keywords:        "marketing, redes, ventas",
			Level:           "Intermedio",
			Access:          "Moodle",
			Population:      "Adultos",
			Duration:        "35 horas",
			Hours:           35,
			Sheet:           "Negocios",
			Portal:          "EdX",
		},
		{
			Title:           "Análisis de datos con Excel",
			Description:     "Tablas dinámicas y fundamentos de análisis de datos",
			CompetencyGroup: "Tecnología",
			Keywords:        "excel, datos",
			Level:           "Básico",
			Access:          "REA",
			Population:      "Jóvenes",
			Duration:        "10 horas",
			Hours:           10,
			Sheet:           "Tecnología",
			Portal:          "Coursera",
		},
	}}
}

func setupApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	app, err := NewApp(fixtureCatalog(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestNewApp(t *testing.T) {
	t.Run("requires a catalog", func(t *testing.T) {
		_, err := NewApp(nil)
		assert.ErrorIs(t, err, ErrCatalogRequired)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := NewApp(fixtureCatalog(), WithConfig(&Config{TopKCandidates: 0, TopKFinal: 12}))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("defaults to the local generator without an api key", func(t *testing.T) {
		app := setupApp(t)

		_, reply, err := app.Reply(context.Background(), 1, profile.NewState("es"), "hola")
		require.NoError(t, err)
		assert.Contains(t, reply, ai.FallbackMarker)
	})
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("returns at most TopKFinal courses", func(t *testing.T) {
		app := setupApp(t, WithConfig(&Config{TopKCandidates: 80, TopKFinal: 2}))

		state := profile.NewState("es")
		state.Interests = []string{"datos"}

		ranked, err := app.Recommend(ctx, state)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(ranked), 2)
	})

	t.Run("facet filters narrow the results", func(t *testing.T) {
		app := setupApp(t)

		state := profile.NewState("es")
		state.Area = "Tecnología"
		state.Level = "Básico"

		ranked, err := app.Recommend(ctx, state)
		require.NoError(t, err)
		require.NotEmpty(t, ranked)
		for _, c := range ranked {
			assert.Equal(t, "Tecnología", c.Course.CompetencyGroup)
			assert.Equal(t, "Básico", c.Course.Level)
		}
	})

	t.Run("duration ceiling excludes longer courses", func(t *testing.T) {
		app := setupApp(t)

		state := profile.NewState("es")
		state.MaxHours = 15

		ranked, err := app.Recommend(ctx, state)
		require.NoError(t, err)
		require.NotEmpty(t, ranked)
		for _, c := range ranked {
			assert.LessOrEqual(t, c.Course.Hours, 15.0)
		}
	})

	t.Run("interest match outranks unrelated courses", func(t *testing.T) {
		app := setupApp(t)

		state := profile.NewState("es")
		state.Interests = []string{"datos", "excel"}
		state.KeywordsText = "datos excel"

		ranked, err := app.Recommend(ctx, state)
		require.NoError(t, err)
		require.NotEmpty(t, ranked)
		assert.Contains(t, ranked[0].Course.Keywords, "datos")
	})

	t.Run("empty profile falls back to the default query", func(t *testing.T) {
		app := setupApp(t)

		state := profile.NewState("es")
		state.MaxHours = rank.NoCeiling()

		ranked, err := app.Recommend(ctx, state)
		require.NoError(t, err)
		assert.NotEmpty(t, ranked)
	})

	t.Run("monitor observes every stage", func(t *testing.T) {
		app := setupApp(t)

		state := profile.NewState("es")
		state.Area = "Tecnología"

		monitor := &recordingMonitor{}
		ranked, err := app.RecommendWithMonitor(ctx, state, monitor)
		require.NoError(t, err)

		assert.Contains(t, monitor.query, "area:Tecnología")
		assert.GreaterOrEqual(t, monitor.retrieved, monitor.filtered)
		assert.Equal(t, len(ranked), monitor.ranked)
	})
}

func TestExportPDF(t *testing.T) {
	app := setupApp(t)

	state := profile.NewState("es")
	ranked, err := app.Recommend(context.Background(), state)
	require.NoError(t, err)

	data, err := app.ExportPDF("Ruta de aprendizaje", state, ranked)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestReplyAdvancesInterview(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	session := core.IDFromContent("app-session")

	state := profile.NewState("es")
	state, reply, err := app.Reply(ctx, session, state, "tengo 23 años y me gustan: datos, python")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, 23, state.Age)
	assert.NotEmpty(t, reply)

	turns, err := app.Coach().Transcript(ctx, session)
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

type recordingMonitor struct {
	query     string
	retrieved int
	filtered  int
	ranked    int
}

func (m *recordingMonitor) Start(query string)                      { m.query = query }
func (m *recordingMonitor) AfterRetrieval(cs []core.Candidate)      { m.retrieved = len(cs) }
func (m *recordingMonitor) AfterFilter(cs []core.Candidate)         { m.filtered = len(cs) }
func (m *recordingMonitor) Finish(cs []core.Candidate)              { m.ranked = len(cs) }
