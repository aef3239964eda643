package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atenea/rumbo/ai"
	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/storage"
)

// Coach drives the guided coaching conversation for one or more sessions.
// State transitions are pure; the Coach itself holds no per-session state
// and is safe for concurrent use.
type Coach struct {
	generator ai.TextGenerator
	sessions  storage.SessionRepository
	logger    *slog.Logger
}

// Option is a functional option for configuring a Coach.
type Option func(*Coach) error

// WithSessions sets the repository that records transcripts and profile
// snapshots. Without it the conversation still works, just unrecorded.
func WithSessions(sessions storage.SessionRepository) Option {
	return func(c *Coach) error {
		c.sessions = sessions
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coach) error {
		c.logger = logger
		return nil
	}
}

// NewCoach creates a Coach using the given text generator.
func NewCoach(generator ai.TextGenerator, opts ...Option) (*Coach, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	c := &Coach{
		generator: generator,
		logger:    slog.Default().With("component", "coach"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Reply handles one user message: folds it into the profile, asks the model
// for a short coaching reply, advances the interview, and appends the next
// scripted question. Returns the updated profile and the full coach reply.
func (c *Coach) Reply(ctx context.Context, session core.ID, state profile.State, message string) (profile.State, string, error) {
	if strings.TrimSpace(message) == "" {
		return state, "", ErrEmptyMessage
	}

	if err := c.recordTurn(ctx, session, core.SpeakerUser, message); err != nil {
		return state, "", err
	}

	next := profile.ApplyMessage(state, message)

	reply, err := c.generator.Generate(ctx, introMessages(next, message))
	if err != nil {
		c.logger.Error("coach reply generation failed", "err", err)
		return state, "", err
	}

	next = profile.Advance(next)
	reply = reply + "\n\n" + nextPrompt(next.Step, next.Language)

	if err := c.recordTurn(ctx, session, core.SpeakerCoach, reply); err != nil {
		return state, "", err
	}
	if err := c.saveProfile(ctx, session, next); err != nil {
		return state, "", err
	}

	c.logger.Debug("coach replied", "session", session, "step", next.Step)
	return next, reply, nil
}

// ExplainTrack asks the model to explain why the ranked courses fit the
// profile and in which order to take them.
func (c *Coach) ExplainTrack(ctx context.Context, state profile.State, candidates []core.Candidate) (string, error) {
	explanation, err := c.generator.Generate(ctx, explainMessages(state, candidates))
	if err != nil {
		c.logger.Error("track explanation failed", "err", err)
		return "", err
	}
	return explanation, nil
}

// Transcript returns the recorded conversation of a session in order.
func (c *Coach) Transcript(ctx context.Context, session core.ID) ([]*core.Turn, error) {
	if c.sessions == nil {
		return nil, nil
	}
	return c.sessions.Turns(ctx, session)
}

func (c *Coach) recordTurn(ctx context.Context, session core.ID, speaker core.Speaker, contents string) error {
	if c.sessions == nil {
		return nil
	}
	_, err := c.sessions.AppendTurn(ctx, &core.Turn{
		SessionId: session,
		Speaker:   speaker,
		Contents:  contents,
	})
	return err
}

func (c *Coach) saveProfile(ctx context.Context, session core.ID, state profile.State) error {
	if c.sessions == nil {
		return nil
	}
	return c.sessions.SaveProfile(ctx, session, state)
}
