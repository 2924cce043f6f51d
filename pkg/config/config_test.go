package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConf(t *testing.T) {
	t.Run("from_map_copies_input", func(t *testing.T) {
		src := map[string]string{KeyMaster: "yarn"}
		c := FromMap(src)
		src[KeyMaster] = "local"
		require.Equal(t, "yarn", c.GetDefault(KeyMaster, ""))
	})

	t.Run("clone_is_independent", func(t *testing.T) {
		base := New().Set(KeyQueue, "default")
		clone := base.Clone()
		clone.Set(KeyQueue, "etl").Set(KeyAppName, "tenant-app")

		require.Equal(t, "default", base.GetDefault(KeyQueue, ""))
		require.False(t, base.Contains(KeyAppName))
		require.Equal(t, "etl", clone.GetDefault(KeyQueue, ""))
		require.Equal(t, 1, base.Len())
		require.Equal(t, 2, clone.Len())
	})

	t.Run("unset_removes_key", func(t *testing.T) {
		c := New().Set(KeyDriverHost, "host-a").Unset(KeyDriverHost)
		_, ok := c.Get(KeyDriverHost)
		require.False(t, ok)
	})

	t.Run("all_returns_copy", func(t *testing.T) {
		c := New().Set(KeyMaster, "yarn")
		m := c.All()
		m[KeyMaster] = "local"
		require.Equal(t, "yarn", c.GetDefault(KeyMaster, ""))
	})
}
