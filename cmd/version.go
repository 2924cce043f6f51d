package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ouyangxiaochen/multi-tenancy-spark/internal/build"
)

// NewVersionCommand returns the command to get the mtspark version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the mtspark version",
		Long:  "Return the mtspark version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(_ *cobra.Command, _ []string) error {
	log.Printf("mtspark Version %s Date %s commit id %s ", build.Version, build.Date, build.Commit)
	return nil
}
