package storage

import (
	"context"

	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}

// SessionRepository stores conversation transcripts and per-session profile
// snapshots.
type SessionRepository interface {
	Repository

	// AppendTurn appends a turn to its session transcript.
	// Assigns the sequence number and sets the timestamp if not already set.
	// Returns the turn with the generated fields populated.
	AppendTurn(ctx context.Context, turn *core.Turn) (*core.Turn, error)

	// Turns retrieves the full transcript of a session in append order.
	// A session without turns yields an empty slice, not an error.
	Turns(ctx context.Context, session core.ID) ([]*core.Turn, error)

	// SaveProfile stores the latest profile snapshot of a session,
	// replacing any previous one.
	SaveProfile(ctx context.Context, session core.ID, state profile.State) error

	// Profile retrieves the stored profile snapshot of a session.
	// Returns ErrNotFound if no snapshot was saved.
	Profile(ctx context.Context, session core.ID) (profile.State, error)
}
