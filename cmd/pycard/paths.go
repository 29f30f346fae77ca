package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lostpackets/pycard/config"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List configuration file locations in probe order",
	Long: `List every location where pycard.conf is searched for, in probe
order. The path that actually exists, if any, is marked with an
asterisk (*).`,
	Run: runPaths,
}

func runPaths(_ *cobra.Command, _ []string) {
	found := config.FindConfigFile()
	for _, path := range config.CandidatePaths() {
		marker := " "
		if path == found {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, path)
	}
	if found == "" {
		fmt.Println("\nNo configuration file found. Run 'pycard init' to create one.")
	}
}
