package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository on the backend.
func NewSessionRepository(backend *Backend) (storage.SessionRepository, error) {
	return newSessionRepository(backend)
}

// newSessionRepository is an internal constructor that returns the concrete type.
func newSessionRepository(backend *Backend) (*SessionRepository, error) {
	seq, err := backend.GetSequence(turnSeq)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the turn sequence. The backend is closed separately.
func (r *SessionRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AppendTurn appends a turn to its session transcript.
func (r *SessionRepository) AppendTurn(ctx context.Context, turn *core.Turn) (*core.Turn, error) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}
	if err := core.ValidateTurn(turn); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Sequence values increase across all sessions, which keeps the
		// per-session order correct under the BigEndian key layout.
		next, err := r.seq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if next == 0 {
			next, err = r.seq.Next()
			if err != nil {
				return err
			}
		}
		turn.Seq = next

		key := makeTurnKey(turn.SessionId, turn.Seq)
		if err := tx.Set(key, storage.MarshalTurn(turn)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return turn, err
}

// Turns retrieves the full transcript of a session in append order.
func (r *SessionRepository) Turns(ctx context.Context, session core.ID) ([]*core.Turn, error) {
	var turns []*core.Turn

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTurnKey(session)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				turn, err := storage.UnmarshalTurn(val)
				if err != nil {
					return err
				}
				turns = append(turns, turn)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return turns, nil
}

// SaveProfile stores the latest profile snapshot of a session.
func (r *SessionRepository) SaveProfile(ctx context.Context, session core.ID, state profile.State) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeProfileKey(session), storage.MarshalProfile(state)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Profile retrieves the stored profile snapshot of a session.
func (r *SessionRepository) Profile(ctx context.Context, session core.ID) (profile.State, error) {
	var state profile.State

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(session))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			state, err = storage.UnmarshalProfile(val)
			return err
		})
	}, false)

	return state, err
}
