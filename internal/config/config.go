// Package config holds the atomlevels CLI configuration. Values come from
// built-in defaults, an optional .atomlevels.toml file, ATOMLEVELS_* env
// vars and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// ATOMLEVELS_LOG_LEVEL or ATOMLEVELS_EXCITE_MAX_EXCITATIONS.
const EnvPrefix = "ATOMLEVELS"

// FileName is the config file looked up in the working and home
// directories.
const FileName = ".atomlevels"

// ErrInvalidConfig indicates a value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// ExciteConfig holds the defaults of the excite command.
type ExciteConfig struct {
	MinExcitations int  `mapstructure:"min_excitations"`
	MaxExcitations int  `mapstructure:"max_excitations"`
	KeepParity     bool `mapstructure:"keep_parity"`
}

// Config holds all runtime configuration for one CLI invocation.
type Config struct {
	LogLevel     string       `mapstructure:"log_level"`
	LogFormat    string       `mapstructure:"log_format"`
	CacheSize    int          `mapstructure:"cache_size"`
	Relativistic bool         `mapstructure:"relativistic"`
	Color        bool         `mapstructure:"color"`
	Excite       ExciteConfig `mapstructure:"excite"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("cache_size", 0)
	v.SetDefault("relativistic", false)
	v.SetDefault("color", true)
	v.SetDefault("excite.min_excitations", 0)
	v.SetDefault("excite.max_excitations", 2)
	v.SetDefault("excite.keep_parity", true)
}

// New returns a viper instance with defaults and env binding in place. If
// file is empty, .atomlevels.toml is searched in the working and home
// directories; a missing file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
		return v, nil
	}
	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated and ranged fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size %d", ErrInvalidConfig, c.CacheSize)
	}
	if c.Excite.MinExcitations < 0 || c.Excite.MaxExcitations < c.Excite.MinExcitations {
		return fmt.Errorf("%w: excitations [%d, %d]", ErrInvalidConfig,
			c.Excite.MinExcitations, c.Excite.MaxExcitations)
	}
	return nil
}
