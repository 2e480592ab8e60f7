// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sockforge/cli/internal/config"
	"github.com/sockforge/cli/internal/output"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool

	// cfg is the configuration loaded for the current invocation.
	cfg config.Config
)

// NewRootCmd creates the base command for the sockforge CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sockforge",
		Short: "Networked service project generator",
		Long: `sockforge bootstraps new networked service projects.

It generates a project skeleton with paired TCP/TLS acceptor and protocol
handler scaffolds, optionally with a supervised entry point (--sup) or as
a multi-project umbrella container (--umbrella).`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: SOCKFORGE_CONFIG)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	root.AddCommand(NewNewCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewVersionCmd())

	return root
}

// initializeGlobals sets up logging and config based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	loaded, err := config.NewLoader().Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	output.Debug("sockforge started", "elixir_version", cfg.ElixirVersion)
	return nil
}

// CurrentConfig returns the configuration loaded for this invocation.
func CurrentConfig() config.Config {
	return cfg.WithDefaults()
}
