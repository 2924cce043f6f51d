package main

import (
	"os"

	"github.com/ouyangxiaochen/multi-tenancy-spark/cmd"
	"github.com/ouyangxiaochen/multi-tenancy-spark/cmd/run"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	runCmd := run.NewRunCommand()
	rootCmd.AddCommand(runCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
