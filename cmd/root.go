// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags,
// environment variables prefixed with MTSPARK, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MTSPARK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/mtspark", "$HOME/.mtspark", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	_ = viper.ReadInConfig()

	return &cobra.Command{
		Use:   "mtspark",
		Short: "A multi-tenant execution-context pool for proxy-user SQL gateways",
		Long: `A multi-tenant execution-context pool for proxy-user SQL gateways.

mtspark keeps at most one shared heavyweight engine context per distinct proxy
user, reference-counted across that user's open connections, and reconstructs a
clean base configuration when a context must be rebuilt after a restart.`,
	}
}
