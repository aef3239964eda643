// Copyright 2025 Atenea Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package rumbo

import (
	"context"
	"log/slog"

	"github.com/atenea/rumbo/ai"
	"github.com/atenea/rumbo/ai/local"
	"github.com/atenea/rumbo/ai/openai"
	"github.com/atenea/rumbo/chat"
	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/export"
	"github.com/atenea/rumbo/index"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/rank"
	"github.com/atenea/rumbo/storage"
	"github.com/atenea/rumbo/storage/badger"
)

// App wires the course catalog, the lexical index cache, the reranker, the
// coach, and the session store into one recommender.
type App struct {
	catalog   *core.Catalog
	indexes   *index.Cache
	scorer    *rank.Scorer
	coach     *chat.Coach
	generator ai.TextGenerator
	sessions  storage.SessionRepository
	backend   *badger.Backend
	config    *Config
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig *ai.Config
	config   *Config
	weights  rank.Weights
}

// WithAIConfig sets the chat model configuration. Without an API key the
// app falls back to the deterministic local generator.
func WithAIConfig(cfg *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = cfg
	}
}

// WithConfig sets the pipeline configuration.
func WithConfig(cfg *Config) AppOption {
	return func(o *appOptions) {
		o.config = cfg
	}
}

// WithWeights overrides the reranking feature weights.
func WithWeights(weights rank.Weights) AppOption {
	return func(o *appOptions) {
		o.weights = weights
	}
}

// NewApp creates the recommender for a loaded catalog.
// Sessions live in an in-memory store; nothing survives a restart.
func NewApp(catalog *core.Catalog, opts ...AppOption) (*App, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
		config:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	sessions, err := badger.NewSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var generator ai.TextGenerator
	if options.aiConfig.Enabled() {
		generator, err = openai.NewGenerator(options.aiConfig)
		if err != nil {
			sessions.Close()
			backend.Close()
			return nil, err
		}
	} else {
		generator = local.NewGenerator()
	}

	coach, err := chat.NewCoach(generator, chat.WithSessions(sessions))
	if err != nil {
		sessions.Close()
		backend.Close()
		return nil, err
	}

	scorerOpts := []rank.ScorerOption{}
	if options.weights != nil {
		scorerOpts = append(scorerOpts, rank.WithWeights(options.weights))
	}

	return &App{
		catalog:   catalog,
		indexes:   index.NewCache(),
		scorer:    rank.NewScorer(scorerOpts...),
		coach:     coach,
		generator: generator,
		sessions:  sessions,
		backend:   backend,
		config:    options.config,
		logger:    slog.Default().With("component", "app"),
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	if err := a.sessions.Close(); err != nil {
		a.logger.Error("error closing session repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog returns the loaded course catalog.
func (a *App) Catalog() *core.Catalog {
	return a.catalog
}

// Sessions returns the session repository.
func (a *App) Sessions() storage.SessionRepository {
	return a.sessions
}

// Coach returns the conversation orchestrator.
func (a *App) Coach() *chat.Coach {
	return a.coach
}

// Greeting returns the opening coach message for a new session.
func (a *App) Greeting(language string) string {
	return chat.Greeting(language)
}

// Recommend runs the full pipeline for a profile: build the query, retrieve
// candidates with hybrid lexical search, filter on the explicit facets, and
// rerank on the weighted features. Returns at most TopKFinal courses.
func (a *App) Recommend(ctx context.Context, state profile.State) ([]core.Candidate, error) {
	return a.RecommendWithMonitor(ctx, state, nil)
}

// RecommendWithMonitor runs the pipeline with monitoring.
// The monitor receives callbacks at each stage.
func (a *App) RecommendWithMonitor(ctx context.Context, state profile.State, monitor RecommendMonitor) ([]core.Candidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query := profile.BuildQuery(state)
	monitor.Start(query)

	idx, err := a.indexes.Get(a.catalog)
	if err != nil {
		a.logger.Error("error building lexical index", "err", err)
		return nil, err
	}

	fused := idx.HybridSearch(query, a.config.TopKCandidates)
	monitor.AfterRetrieval(fused)

	facets := state.Facets()
	filtered := rank.Filter(fused, facets)
	monitor.AfterFilter(filtered)

	ranked := a.scorer.Rerank(filtered, facets, profile.UserTokens(state), a.config.TopKFinal)
	monitor.Finish(ranked)

	a.logger.Debug("recommendation pipeline finished",
		"query", query, "retrieved", len(fused), "filtered", len(filtered), "ranked", len(ranked))
	return ranked, nil
}

// Reply handles one chat message for the session and returns the updated
// profile together with the coach reply.
func (a *App) Reply(ctx context.Context, session core.ID, state profile.State, message string) (profile.State, string, error) {
	return a.coach.Reply(ctx, session, state, message)
}

// ExplainTrack asks the coach to explain the ranked path for the profile.
func (a *App) ExplainTrack(ctx context.Context, state profile.State, ranked []core.Candidate) (string, error) {
	return a.coach.ExplainTrack(ctx, state, ranked)
}

// ExportPDF renders the ranked path for the profile as a PDF document.
func (a *App) ExportPDF(title string, state profile.State, ranked []core.Candidate) ([]byte, error) {
	return export.BuildPathPDF(title, state.Summary(), ranked)
}
