package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates_valid_ulid", func(t *testing.T) {
		s, err := New()
		require.NoError(t, err)
		require.True(t, IsValid(s))
	})

	t.Run("monotonic_within_same_millisecond", func(t *testing.T) {
		now := time.Now()
		first, err := NewFromTime(now)
		require.NoError(t, err)
		second, err := NewFromTime(now)
		require.NoError(t, err)
		require.Less(t, first, second)
	})
}

func TestIsValid(t *testing.T) {
	require.False(t, IsValid("not-a-ulid"))
	require.False(t, IsValid(""))
	require.True(t, IsValid(Must()))
}
