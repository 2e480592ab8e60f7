package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for sockforge configuration.
const envPrefix = "SOCKFORGE"

// Loader handles loading and merging configuration from multiple sources.
// Precedence: environment > config file > defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("elixir_version", "SOCKFORGE_ELIXIR_VERSION")

	return &Loader{v: v}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sockforge", "config.yaml"), nil
}

// Load loads configuration from the given file path. If configFile is
// empty, the default path is used. A missing config file is not an error;
// defaults and environment variables still apply.
func (l *Loader) Load(configFile string) (Config, error) {
	if configFile == "" {
		var err error
		configFile, err = DefaultConfigFile()
		if err != nil {
			return Config{}, err
		}
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
