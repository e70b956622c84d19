package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix maps STAN_* environment variables onto config keys;
// STAN_PARSER_DEFAULT_OCTAVE sets parser.default_octave.
const EnvPrefix = "STAN"

const (
	FormatDebug = "debug"
	FormatLily  = "lily"
)

// ParserConfig controls the notation grammar.
type ParserConfig struct {
	Tuplets       bool `mapstructure:"tuplets"`
	DefaultOctave int  `mapstructure:"default_octave"`
}

// OutputConfig selects how parsed columns are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ServerConfig holds settings for `stan serve`.
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	SentryDSN   string   `mapstructure:"sentry_dsn"`
}

// WatchConfig holds settings for `stan watch`.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration.
// Values are populated from .stan.toml, STAN_* env vars, and CLI flags.
type Config struct {
	Parser  ParserConfig `mapstructure:"parser"`
	Output  OutputConfig `mapstructure:"output"`
	Server  ServerConfig `mapstructure:"server"`
	Watch   WatchConfig  `mapstructure:"watch"`
	Verbose bool         `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("parser.tuplets", true)
	viper.SetDefault("parser.default_octave", 4)
	viper.SetDefault("output.format", FormatDebug)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.cors_origins", []string{"*"})
	viper.SetDefault("server.sentry_dsn", "")
	viper.SetDefault("watch.debounce", 100*time.Millisecond)
	viper.SetDefault("verbose", false)
}

// BindEnv makes viper read STAN_* variables for nested keys.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Parser.DefaultOctave < 0 || c.Parser.DefaultOctave > 7 {
		return fmt.Errorf("parser.default_octave must be in [0,7], got %d", c.Parser.DefaultOctave)
	}
	if !slices.Contains([]string{FormatDebug, FormatLily}, c.Output.Format) {
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatDebug, FormatLily, c.Output.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}
