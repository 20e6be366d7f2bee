// Package config merges command-line flags, environment variables and an
// optional config file into the settings of a simulation run.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SOCCERSIM_SEED.
const EnvPrefix = "SOCCERSIM"

var (
	ErrInvalidFormat   = errors.New("config: format must be text or json")
	ErrInvalidDuration = errors.New("config: duration must be positive")
	ErrConflict        = errors.New("config: verbose and quiet are mutually exclusive")
)

// Settings holds the resolved options of one run.
type Settings struct {
	Seed    int64 `mapstructure:"seed"`
	HasSeed bool  `mapstructure:"-"`

	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`
	Verbose  bool   `mapstructure:"verbose"`
	Quiet    bool   `mapstructure:"quiet"`

	Live     bool          `mapstructure:"live"`
	Duration time.Duration `mapstructure:"duration"`
	Format   string        `mapstructure:"format"`
	Copy     bool          `mapstructure:"copy"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("live", false)
	v.SetDefault("duration", 90*time.Second)
	v.SetDefault("format", "text")
	v.SetDefault("copy", false)
}

// RegisterFlags adds the run flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "random seed; omit for a fresh one")
	fs.Bool("live", false, "stream commentary while the match runs")
	fs.Duration("duration", 90*time.Second, "wall-clock length of a live match")
	fs.BoolP("verbose", "v", false, "log debug output")
	fs.BoolP("quiet", "q", false, "only log warnings and errors")
	fs.String("format", "text", "report format: text or json")
	fs.Bool("copy", false, "copy the report to the clipboard")
	fs.String("config", "", "optional config file (json, yaml or toml)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "also write logs to this file")
}

// Load resolves settings with flag > env > file > default precedence.
// fs may be nil.
func Load(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Keys with capitals need an explicit env binding.
	_ = v.BindEnv("logLevel", EnvPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("logFile", EnvPrefix+"_LOG_FILE")

	if fs != nil {
		bindings := map[string]string{
			"seed":     "seed",
			"live":     "live",
			"duration": "duration",
			"verbose":  "verbose",
			"quiet":    "quiet",
			"format":   "format",
			"copy":     "copy",
			"logLevel": "log-level",
			"logFile":  "log-file",
		}
		for key, flag := range bindings {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("config: bind %s: %w", flag, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("config: read %s: %w", f.Value.String(), err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	s.HasSeed = v.IsSet("seed")
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks option combinations.
func (s Settings) Validate() error {
	if s.Format != "text" && s.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s.Format)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, s.Duration)
	}
	if s.Verbose && s.Quiet {
		return ErrConflict
	}
	return nil
}

// EffectiveLogLevel folds the verbose flag into the log level.
func (s Settings) EffectiveLogLevel() string {
	if s.Verbose {
		return "debug"
	}
	return s.LogLevel
}
