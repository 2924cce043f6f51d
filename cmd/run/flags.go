package run

import (
	"github.com/spf13/cobra"

	"github.com/ouyangxiaochen/multi-tenancy-spark/cmd/util"
)

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	util.MustBindPFlag("log.format", flags.Lookup("log-format"))
	util.MustBindEnv("log.format", "MTSPARK_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	util.MustBindPFlag("log.level", flags.Lookup("log-level"))
	util.MustBindEnv("log.level", "MTSPARK_LOG_LEVEL")

	flags.String("queue", defaultConfig.Queue, "the resource queue used for sessions that do not name one")
	util.MustBindPFlag("queue", flags.Lookup("queue"))
	util.MustBindEnv("queue", "MTSPARK_QUEUE")

	flags.StringToString("conf", defaultConfig.Conf, "base engine properties, as key=value pairs")
	util.MustBindPFlag("conf", flags.Lookup("conf"))
}
