package pipeline

// Calibration parameterises the saturation curve of stage 1.
type Calibration struct {
	K   float64 `json:"k" yaml:"k"`
	Max float64 `json:"max" yaml:"max"`
}

// RI scales the net relative-impact correction.
type RI struct {
	GlobalMultiplier float64 `json:"globalMultiplier" yaml:"globalMultiplier"`
}

// CrossLift controls the optional spillover from high-RI Relationships,
// Gym and Leisure time into Work quality.
type CrossLift struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Alpha   float64 `json:"alpha" yaml:"alpha"`
}

// Config is the full set of scoring parameters. It is a plain value:
// callers pass it into Score explicitly.
type Config struct {
	Calibration Calibration `json:"calibration" yaml:"calibration"`
	RI          RI          `json:"ri" yaml:"ri"`
	CrossLift   CrossLift   `json:"crossLift" yaml:"crossLift"`
}

// Default scoring parameters.
const (
	DefaultCalibrationK     = 1.9364
	DefaultCalibrationMax   = 8.75
	DefaultGlobalMultiplier = 1.0
	DefaultCrossLiftAlpha   = 20.0
)

// DefaultConfig returns the built-in scoring parameters.
func DefaultConfig() Config {
	return Config{
		Calibration: Calibration{K: DefaultCalibrationK, Max: DefaultCalibrationMax},
		RI:          RI{GlobalMultiplier: DefaultGlobalMultiplier},
		CrossLift:   CrossLift{Enabled: false, Alpha: DefaultCrossLiftAlpha},
	}
}

// ConfigOverrides is the per-request config shape. Every group and every
// field inside a group is optional and falls back to the base config.
type ConfigOverrides struct {
	Calibration *CalibrationOverrides `json:"calibration,omitempty"`
	RI          *RIOverrides          `json:"ri,omitempty"`
	CrossLift   *CrossLiftOverrides   `json:"crossLift,omitempty"`
}

// CalibrationOverrides holds optional calibration fields.
type CalibrationOverrides struct {
	K   *float64 `json:"k,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// RIOverrides holds the optional global multiplier.
type RIOverrides struct {
	GlobalMultiplier *float64 `json:"globalMultiplier,omitempty"`
}

// CrossLiftOverrides holds optional cross-lift fields.
type CrossLiftOverrides struct {
	Enabled *bool    `json:"enabled,omitempty"`
	Alpha   *float64 `json:"alpha,omitempty"`
}

// Apply returns base with every set override applied. A nil receiver
// returns base unchanged.
func (o *ConfigOverrides) Apply(base Config) Config {
	if o == nil {
		return base
	}
	cfg := base
	if c := o.Calibration; c != nil {
		if c.K != nil {
			cfg.Calibration.K = *c.K
		}
		if c.Max != nil {
			cfg.Calibration.Max = *c.Max
		}
	}
	if r := o.RI; r != nil && r.GlobalMultiplier != nil {
		cfg.RI.GlobalMultiplier = *r.GlobalMultiplier
	}
	if l := o.CrossLift; l != nil {
		if l.Enabled != nil {
			cfg.CrossLift.Enabled = *l.Enabled
		}
		if l.Alpha != nil {
			cfg.CrossLift.Alpha = *l.Alpha
		}
	}
	return cfg
}
