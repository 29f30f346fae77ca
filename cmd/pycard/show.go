package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lostpackets/pycard/config"
)

var showSecrets bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Show the effective configuration after merging built-in defaults,
the configuration file, and command-line flags.

The dav password is hidden by default; use --show-secrets to reveal it.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "show secret values")
}

func runShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	passwdKey := config.Key{Section: config.SectionDAV, Option: "passwd"}
	for _, p := range settings.Pairs() {
		value := p.Value
		if p.Key == passwdKey && !showSecrets && settings.DAVPasswd != "" {
			value = "<redacted>"
		}
		fmt.Printf("%s = %v\n", p.Key.Pretty(), value)
	}
	return nil
}
