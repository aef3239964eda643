package local

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atenea/rumbo/ai"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator()
	ctx := context.Background()

	t.Run("reply carries the fallback marker", func(t *testing.T) {
		reply, err := g.Generate(ctx, []ai.Message{{Role: ai.RoleUser, Content: "hola"}})
		require.NoError(t, err)
		assert.Contains(t, reply, ai.FallbackMarker)
		assert.Contains(t, reply, "hola")
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		msgs := []ai.Message{{Role: ai.RoleUser, Content: "me interesan los datos"}}
		a, err := g.Generate(ctx, msgs)
		require.NoError(t, err)
		b, err := g.Generate(ctx, msgs)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("long messages are truncated", func(t *testing.T) {
		long := strings.Repeat("ñ", 500)
		reply, err := g.Generate(ctx, []ai.Message{{Role: ai.RoleUser, Content: long}})
		require.NoError(t, err)
		assert.Contains(t, reply, strings.Repeat("ñ", 200))
		assert.NotContains(t, reply, strings.Repeat("ñ", 201))
	})

	t.Run("empty conversation", func(t *testing.T) {
		reply, err := g.Generate(ctx, nil)
		require.NoError(t, err)
		assert.Contains(t, reply, ai.FallbackMarker)
	})
}
