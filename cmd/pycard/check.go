package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lostpackets/pycard/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration for the sync tools",
	Long: `Validate the configuration the way the sync tools do: the dav
user, passwd, and resource options must all be set. Unknown options in
the configuration file are reported at debug level and do not fail the
check.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	parser.Mandatory = []config.Key{
		{Section: config.SectionDAV, Option: "user"},
		{Section: config.SectionDAV, Option: "passwd"},
		{Section: config.SectionDAV, Option: "resource"},
	}

	if _, err := loadSettings(cmd); err != nil {
		return err
	}
	fmt.Println("configuration OK")
	return nil
}
