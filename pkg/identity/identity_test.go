package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextWithUser(t *testing.T) {
	ctx := ContextWithUser(context.Background(), "alice")
	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "alice", user)
}

func TestUserFromContext(t *testing.T) {
	user, ok := UserFromContext(context.Background())
	require.False(t, ok)
	require.Empty(t, user)
}

func TestSelf_RunAs(t *testing.T) {
	t.Run("tags_context_with_user", func(t *testing.T) {
		var seen string
		err := NewSelf().RunAs(context.Background(), "bob", func(ctx context.Context) error {
			seen, _ = UserFromContext(ctx)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, "bob", seen)
	})

	t.Run("propagates_action_error", func(t *testing.T) {
		expected := errors.New("kinit failed")
		err := NewSelf().RunAs(context.Background(), "bob", func(ctx context.Context) error {
			return expected
		})
		require.ErrorIs(t, err, expected)
	})
}
