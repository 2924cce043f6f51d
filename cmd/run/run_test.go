package run

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/pool"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, pool.DefaultQueue, cfg.Queue)
	require.Empty(t, cfg.Conf)
}

func TestReadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log.format", "json")
	viper.Set("log.level", "debug")
	viper.Set("queue", "etl")
	viper.Set("conf", map[string]string{"spark.master": "yarn"})

	cfg, err := ReadConfig()
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "etl", cfg.Queue)
	require.Equal(t, map[string]string{"spark.master": "yarn"}, cfg.Conf)
}

func TestNewRunCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := NewRunCommand()
	require.NotNil(t, cmd.Flags().Lookup("log-format"))
	require.NotNil(t, cmd.Flags().Lookup("log-level"))
	require.NotNil(t, cmd.Flags().Lookup("queue"))
	require.NotNil(t, cmd.Flags().Lookup("conf"))
}
