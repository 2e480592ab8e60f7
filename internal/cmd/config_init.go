package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sockforge/cli/internal/config"
	serrors "github.com/sockforge/cli/internal/errors"
	"github.com/sockforge/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sockforge configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default values.

The file is created at ~/.config/sockforge/config.yaml, or at the path
given with --config. An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultConfigFile()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil {
		return serrors.NewAlreadyExistsError(
			fmt.Sprintf("config file %s already exists", path), path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return serrors.NewPathUncreatableError(
			fmt.Sprintf("cannot create config directory for %s", path), path, err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	header := []byte("# sockforge configuration. Environment variables with the\n# SOCKFORGE_ prefix override values in this file.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	output.Println(output.FormatCheckmark("Wrote " + path))
	return nil
}
