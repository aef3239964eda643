package badger

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/storage"
)

func setupRepo(t *testing.T) storage.SessionRepository {
	t.Helper()
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAppendTurn(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	session := core.IDFromContent("session-a")

	t.Run("assigns sequence and timestamp", func(t *testing.T) {
		turn, err := repo.AppendTurn(ctx, &core.Turn{
			SessionId: session,
			Speaker:   core.SpeakerUser,
			Contents:  "hola, tengo 23 años",
		})
		require.NoError(t, err)
		assert.NotZero(t, turn.Seq)
		assert.False(t, turn.Timestamp.IsZero())
	})

	t.Run("rejects invalid turns", func(t *testing.T) {
		_, err := repo.AppendTurn(ctx, &core.Turn{
			SessionId: session,
			Speaker:   core.SpeakerUser,
		})
		assert.ErrorIs(t, err, core.ErrInvalidTurn)

		_, err = repo.AppendTurn(ctx, &core.Turn{
			SessionId: session,
			Contents:  "sin hablante",
		})
		assert.ErrorIs(t, err, core.ErrInvalidTurn)
	})
}

func TestTurns(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("returns transcript in append order", func(t *testing.T) {
		session := core.IDFromContent("session-order")
		for i := 0; i < 5; i++ {
			_, err := repo.AppendTurn(ctx, &core.Turn{
				SessionId: session,
				Speaker:   core.SpeakerUser,
				Contents:  fmt.Sprintf("mensaje %d", i),
			})
			require.NoError(t, err)
		}

		turns, err := repo.Turns(ctx, session)
		require.NoError(t, err)
		require.Len(t, turns, 5)
		for i, turn := range turns {
			assert.Equal(t, fmt.Sprintf("mensaje %d", i), turn.Contents)
			if i > 0 {
				assert.Greater(t, turn.Seq, turns[i-1].Seq)
			}
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		first := core.IDFromContent("session-1")
		second := core.IDFromContent("session-2")

		_, err := repo.AppendTurn(ctx, &core.Turn{SessionId: first, Speaker: core.SpeakerUser, Contents: "uno"})
		require.NoError(t, err)
		_, err = repo.AppendTurn(ctx, &core.Turn{SessionId: second, Speaker: core.SpeakerCoach, Contents: "dos"})
		require.NoError(t, err)

		turns, err := repo.Turns(ctx, first)
		require.NoError(t, err)
		require.Len(t, turns, 1)
		assert.Equal(t, "uno", turns[0].Contents)
	})

	t.Run("unknown session yields empty transcript", func(t *testing.T) {
		turns, err := repo.Turns(ctx, core.IDFromContent("nobody"))
		require.NoError(t, err)
		assert.Empty(t, turns)
	})
}

func TestProfileSnapshot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	session := core.IDFromContent("session-profile")

	t.Run("missing snapshot", func(t *testing.T) {
		_, err := repo.Profile(ctx, session)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		state := profile.NewState("es")
		state.Age = 23
		state.Interests = []string{"datos", "python"}
		state.MaxHours = math.NaN()

		require.NoError(t, repo.SaveProfile(ctx, session, state))

		got, err := repo.Profile(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, state.Age, got.Age)
		assert.Equal(t, state.Interests, got.Interests)
		assert.True(t, math.IsNaN(got.MaxHours))
	})

	t.Run("latest snapshot wins", func(t *testing.T) {
		state := profile.NewState("es")
		state.Age = 30
		require.NoError(t, repo.SaveProfile(ctx, session, state))

		got, err := repo.Profile(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, 30, got.Age)
	})
}
