// Package config loads the service settings.
//
// Settings come from built-in defaults, then an optional config file
// (YAML, JSON or TOML), then LMI_-prefixed environment variables, each
// layer overriding the one before it. Nested keys map to environment
// names with dots replaced by underscores: scoring.cross_lift.enabled
// is LMI_SCORING_CROSS_LIFT_ENABLED.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HendryAvila/lifemorale/internal/logging"
	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LMI"

// Settings is the complete service configuration.
type Settings struct {
	Log     logging.Settings `mapstructure:"log"`
	HTTP    HTTPSettings     `mapstructure:"http"`
	Scoring ScoringSettings  `mapstructure:"scoring"`
}

// HTTPSettings configures the HTTP API.
type HTTPSettings struct {
	Addr            string        `mapstructure:"addr"`
	CORS            bool          `mapstructure:"cors"`
	Debug           bool          `mapstructure:"debug"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// MaxBodyBytes caps POST bodies; larger requests get 413.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// DefaultMaxBodyBytes is the default request body limit (1 MiB).
const DefaultMaxBodyBytes = 1 << 20

// ScoringSettings holds the base scoring parameters every request starts
// from, plus strict mode.
type ScoringSettings struct {
	// Strict rejects inputs that fail pipeline.Validate instead of
	// scoring them with defaults.
	Strict      bool `mapstructure:"strict"`
	Calibration struct {
		K   float64 `mapstructure:"k"`
		Max float64 `mapstructure:"max"`
	} `mapstructure:"calibration"`
	RI struct {
		GlobalMultiplier float64 `mapstructure:"global_multiplier"`
	} `mapstructure:"ri"`
	CrossLift struct {
		Enabled bool    `mapstructure:"enabled"`
		Alpha   float64 `mapstructure:"alpha"`
	} `mapstructure:"cross_lift"`
}

// PipelineConfig converts the settings into the scoring config.
func (s ScoringSettings) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		Calibration: pipeline.Calibration{K: s.Calibration.K, Max: s.Calibration.Max},
		RI:          pipeline.RI{GlobalMultiplier: s.RI.GlobalMultiplier},
		CrossLift:   pipeline.CrossLift{Enabled: s.CrossLift.Enabled, Alpha: s.CrossLift.Alpha},
	}
}

func setDefaults(v *viper.Viper) {
	def := pipeline.DefaultConfig()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatJSON)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.cors", false)
	v.SetDefault("http.debug", false)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("http.max_body_bytes", DefaultMaxBodyBytes)

	v.SetDefault("scoring.strict", false)
	v.SetDefault("scoring.calibration.k", def.Calibration.K)
	v.SetDefault("scoring.calibration.max", def.Calibration.Max)
	v.SetDefault("scoring.ri.global_multiplier", def.RI.GlobalMultiplier)
	v.SetDefault("scoring.cross_lift.enabled", def.CrossLift.Enabled)
	v.SetDefault("scoring.cross_lift.alpha", def.CrossLift.Alpha)
}

// Load reads settings. An empty path searches for lmi.{yaml,json,toml}
// in the working directory and $HOME/.config/lmi; finding none there is
// not an error. An explicit path must exist.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lmi")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lmi")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the service cannot run with.
func (s *Settings) Validate() error {
	var problems []string
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if s.HTTP.Addr == "" {
		problems = append(problems, "http.addr is empty")
	}
	if s.HTTP.MaxBodyBytes <= 0 {
		problems = append(problems, fmt.Sprintf("http.max_body_bytes must be positive, got %d", s.HTTP.MaxBodyBytes))
	}
	if s.Scoring.Calibration.K <= 0 {
		problems = append(problems, fmt.Sprintf("scoring.calibration.k must be positive, got %g", s.Scoring.Calibration.K))
	}
	if s.Scoring.Calibration.Max <= 0 {
		problems = append(problems, fmt.Sprintf("scoring.calibration.max must be positive, got %g", s.Scoring.Calibration.Max))
	}
	if s.Scoring.CrossLift.Alpha < 0 {
		problems = append(problems, fmt.Sprintf("scoring.cross_lift.alpha must not be negative, got %g", s.Scoring.CrossLift.Alpha))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
