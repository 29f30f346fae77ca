package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lostpackets/pycard/config"
)

var version = "dev"

var parser = config.NewParser()

var rootCmd = &cobra.Command{
	Use:     "pycard",
	Version: version,
	Short:   "Configuration tool for the pycard CardDAV suite",
	Long: `pycard inspects and manages the configuration shared by the
pycard CardDAV tools.

Settings come from three sources, later ones winning: built-in
defaults, the pycard.conf configuration file, and command-line flags.
Run "pycard paths" to see where the file is searched for.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		debug, _ := cmd.Flags().GetBool(config.FlagDebug)
		setupLogging(debug)
	},
}

func init() {
	parser.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}

// captureInterrupt turns Ctrl-C into a clean exit instead of a stack
// trace at the user.
func captureInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		os.Exit(0)
	}()
}

func main() {
	captureInterrupt()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves the configuration for a subcommand and settles
// the final log level from the merged debug value: debug = True in the
// file enables verbose output even without the --debug flag.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString(config.FlagConfig)
	settings, err := parser.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	setLogLevel(settings.Debug)
	settings.Dump(nil)
	return settings, nil
}
