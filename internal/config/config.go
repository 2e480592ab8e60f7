// Package config provides configuration loading and management.
package config

// DefaultElixirVersion is the runtime version targeted when no
// configuration overrides it.
const DefaultElixirVersion = "1.16.0"

// Config represents the sockforge CLI configuration.
// Loaded from ~/.config/sockforge/config.yaml; every field has an
// environment override.
type Config struct {
	// ElixirVersion is the full runtime version generated projects target.
	// The manifest requirement is derived from it (patch dropped).
	// Env: SOCKFORGE_ELIXIR_VERSION, Default: 1.16.0
	ElixirVersion string `mapstructure:"elixir_version" yaml:"elixir_version"`
}

// WithDefaults returns a copy with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.ElixirVersion == "" {
		c.ElixirVersion = DefaultElixirVersion
	}
	return c
}

// DefaultConfig returns a Config with all default values populated.
// Used by `sockforge config init` to generate the initial config file.
func DefaultConfig() Config {
	return Config{}.WithDefaults()
}
