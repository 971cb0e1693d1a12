// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Population  PopulationConfig  `yaml:"population"`
	Movement    MovementConfig    `yaml:"movement"`
	Pairing     PairingConfig     `yaml:"pairing"`
	Dissolution DissolutionConfig `yaml:"dissolution"`
	University  UniversityConfig  `yaml:"university"`
	Run         RunConfig         `yaml:"run"`
	Screen      ScreenConfig      `yaml:"screen"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds the toroidal arena dimensions.
// The arena is square; both axes wrap modulo SpaceSize.
type ArenaConfig struct {
	SpaceSize float64 `yaml:"space_size"`
}

// PopulationConfig holds population sizing and seeding parameters.
type PopulationConfig struct {
	TotalAgents     int     `yaml:"total_agents"`      // Split evenly between males and females
	InitialPairRate float64 `yaml:"initial_pair_rate"` // Fraction of agents already paired on day 0
}

// MovementConfig holds random-walk parameters.
type MovementConfig struct {
	Speed float64 `yaml:"speed"` // Distance travelled per day
}

// PairingConfig holds pair formation parameters.
type PairingConfig struct {
	MeetDistance float64 `yaml:"meet_distance"` // Strict upper bound on candidate distance
	Threshold    float64 `yaml:"threshold"`     // Reserved, not read by pairing
	StrictApp    bool    `yaml:"strict_app"`    // App population only pairs university-met agents
	WrapDistance bool    `yaml:"wrap_distance"` // Use shortest toroidal distance instead of raw coordinates
}

// DissolutionConfig holds breakup parameters.
type DissolutionConfig struct {
	BreakProbability float64 `yaml:"break_probability"` // Per pair, per day
}

// UniversityConfig holds the chance a seeded pair met on campus.
type UniversityConfig struct {
	MeetRateNoApp float64 `yaml:"meet_rate_noapp"`
	MeetRateApp   float64 `yaml:"meet_rate_app"`
}

// RunConfig holds run length and seeding.
type RunConfig struct {
	TotalDays int   `yaml:"total_days"`
	Seed      int64 `yaml:"seed"` // 0 = time-based
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	TargetFPS     int     `yaml:"target_fps"`
	DaysPerSecond float64 `yaml:"days_per_second"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogEvery        int `yaml:"log_every"`        // Days between stats log lines (0 = every day)
	PerfWindow      int `yaml:"perf_window"`      // Days averaged for phase timing
	BookmarkHistory int `yaml:"bookmark_history"` // Days of history kept for bookmark detection
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	AgentsPerGender int // Population.TotalAgents / 2
	InitialPairs    int // floor(TotalAgents * InitialPairRate / 2)
	MaxPairs        int // Upper bound on simultaneous pairs
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run and refreshes
// derived values. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Population.TotalAgents < 0 {
		errs = append(errs, fmt.Errorf("population.total_agents must be >= 0, got %d", c.Population.TotalAgents))
	} else if c.Population.TotalAgents%2 != 0 {
		errs = append(errs, fmt.Errorf("population.total_agents must be even, got %d", c.Population.TotalAgents))
	}
	if !(c.Arena.SpaceSize > 0 && finite(c.Arena.SpaceSize)) {
		errs = append(errs, fmt.Errorf("arena.space_size must be finite and > 0, got %v", c.Arena.SpaceSize))
	}
	if !(c.Movement.Speed >= 0 && finite(c.Movement.Speed)) {
		errs = append(errs, fmt.Errorf("movement.speed must be finite and >= 0, got %v", c.Movement.Speed))
	}
	if !(c.Pairing.MeetDistance >= 0 && finite(c.Pairing.MeetDistance)) {
		errs = append(errs, fmt.Errorf("pairing.meet_distance must be finite and >= 0, got %v", c.Pairing.MeetDistance))
	}

	probs := []struct {
		name string
		v    float64
	}{
		{"population.initial_pair_rate", c.Population.InitialPairRate},
		{"pairing.threshold", c.Pairing.Threshold},
		{"dissolution.break_probability", c.Dissolution.BreakProbability},
		{"university.meet_rate_noapp", c.University.MeetRateNoApp},
		{"university.meet_rate_app", c.University.MeetRateApp},
	}
	for _, p := range probs {
		if !(p.v >= 0 && p.v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", p.name, p.v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	c.computeDerived()
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	n := c.Population.TotalAgents
	c.Derived.AgentsPerGender = n / 2
	c.Derived.InitialPairs = int(math.Floor(float64(n) * c.Population.InitialPairRate / 2))
	if c.Derived.InitialPairs > c.Derived.AgentsPerGender {
		c.Derived.InitialPairs = c.Derived.AgentsPerGender
	}
	c.Derived.MaxPairs = c.Derived.AgentsPerGender
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
