package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func staticDefaults(props map[string]string) DefaultsProvider {
	return DefaultsFunc(func() map[string]string {
		return props
	})
}

func TestReconstructor_Rebuild(t *testing.T) {
	ctx := context.Background()

	t.Run("overlays_fresh_placement_values", func(t *testing.T) {
		base := New().
			Set(KeyDriverHost, "old-host").
			Set(KeyMaster, "yarn").
			Set("spark.executor.memory", "4g")
		defaults := staticDefaults(map[string]string{
			KeyDriverHost: "new-host",
			KeyYarnAppID:  "application_1",
		})

		conf := NewReconstructor(base, defaults).Rebuild(ctx)

		require.Equal(t, "new-host", conf.GetDefault(KeyDriverHost, ""))
		require.Equal(t, "application_1", conf.GetDefault(KeyYarnAppID, ""))
		require.Equal(t, "yarn", conf.GetDefault(KeyMaster, ""))
		require.Equal(t, "4g", conf.GetDefault("spark.executor.memory", ""))
	})

	t.Run("drops_stale_driver_endpoints", func(t *testing.T) {
		base := New().
			Set(KeyDriverHost, "old-host").
			Set(KeyDriverPort, "7077")
		conf := NewReconstructor(base, staticDefaults(nil)).Rebuild(ctx)

		require.False(t, conf.Contains(KeyDriverHost))
		require.False(t, conf.Contains(KeyDriverPort))
	})

	t.Run("retains_driver_port_only_when_defaults_supply_one", func(t *testing.T) {
		base := New().Set(KeyDriverPort, "7077")
		conf := NewReconstructor(base, staticDefaults(map[string]string{
			KeyDriverPort: "7088",
		})).Rebuild(ctx)

		require.Equal(t, "7088", conf.GetDefault(KeyDriverPort, ""))
	})

	t.Run("absent_allow_list_keys_are_skipped", func(t *testing.T) {
		base := New().Set(KeyYarnPrincipal, "hive/gateway@REALM")
		conf := NewReconstructor(base, staticDefaults(nil)).Rebuild(ctx)

		require.Equal(t, "hive/gateway@REALM", conf.GetDefault(KeyYarnPrincipal, ""))
	})

	t.Run("copies_filter_params_verbatim", func(t *testing.T) {
		defaults := staticDefaults(map[string]string{
			AmIPFilterParamPrefix + "PROXY_HOSTS": "rm-1.example.com",
			AmIPFilterParamPrefix + "PROXY_URI_BASES": "http://rm-1.example.com/proxy/application_1",
		})
		conf := NewReconstructor(New(), defaults).Rebuild(ctx)

		require.Equal(t, "rm-1.example.com", conf.GetDefault(AmIPFilterParamPrefix+"PROXY_HOSTS", ""))
		require.Equal(t, "http://rm-1.example.com/proxy/application_1", conf.GetDefault(AmIPFilterParamPrefix+"PROXY_URI_BASES", ""))
	})

	t.Run("never_copies_the_bare_prefix", func(t *testing.T) {
		defaults := staticDefaults(map[string]string{
			AmIPFilterParamPrefix: "dangling",
		})
		conf := NewReconstructor(New(), defaults).Rebuild(ctx)

		require.False(t, conf.Contains(AmIPFilterParamPrefix))
	})

	t.Run("custom_prefix_is_honored", func(t *testing.T) {
		const prefix = "spark.com.example.IngressFilter.param."
		defaults := staticDefaults(map[string]string{
			prefix + "token": "s3cr3t",
			AmIPFilterParamPrefix + "PROXY_HOSTS": "ignored",
		})
		conf := NewReconstructor(New(), defaults, WithFilterPrefix(prefix)).Rebuild(ctx)

		require.Equal(t, "s3cr3t", conf.GetDefault(prefix+"token", ""))
		require.False(t, conf.Contains(AmIPFilterParamPrefix+"PROXY_HOSTS"))
	})

	t.Run("base_snapshot_is_not_mutated", func(t *testing.T) {
		base := New().Set(KeyDriverHost, "old-host")
		r := NewReconstructor(base, staticDefaults(map[string]string{KeyDriverHost: "new-host"}))
		_ = r.Rebuild(ctx)

		require.Equal(t, "old-host", base.GetDefault(KeyDriverHost, ""))
	})

	t.Run("deterministic_for_fixed_inputs", func(t *testing.T) {
		base := New().Set(KeyMaster, "yarn")
		r := NewReconstructor(base, staticDefaults(map[string]string{KeyYarnAppID: "application_2"}))

		require.Equal(t, r.Rebuild(ctx).All(), r.Rebuild(ctx).All())
	})
}
