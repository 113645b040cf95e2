// Package config loads and validates fluegas configuration: the default
// fuel composition, solver settings, and logging/output preferences.
// Precedence is defaults, then the YAML file, then environment variables;
// CLI flags override on top of the loaded values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/combustkit/fluegas/internal/combustion"
)

// Environment variable overrides.
const (
	EnvConfigPath = "FLUEGAS_CONFIG"
	EnvLogLevel   = "FLUEGAS_LOG_LEVEL"
	EnvLogFormat  = "FLUEGAS_LOG_FORMAT"
)

// SolverConfig tunes the air-requirement bisection solver.
type SolverConfig struct {
	// Tolerance is the absolute bracket width at which bisection stops,
	// in kmol/s of oxygen supply.
	Tolerance float64 `yaml:"tolerance"`
	// BracketFactor is the upper search bound as a multiple of the
	// stoichiometric oxygen demand.
	BracketFactor float64 `yaml:"bracket_factor"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `yaml:"format"`
}

// Config is the root configuration document.
type Config struct {
	// DefaultComposition maps species formulas to mole fractions (or
	// percent-style values; anything not summing to one is normalized
	// when converted to an engine composition).
	DefaultComposition map[string]float64 `yaml:"default_composition"`
	Solver             SolverConfig       `yaml:"solver"`
	Logging            LoggingConfig      `yaml:"logging"`
	Output             OutputConfig       `yaml:"output"`
}

// Default returns the built-in configuration. The default composition is
// a typical helium-bearing natural gas, in mole percent.
func Default() *Config {
	return &Config{
		DefaultComposition: map[string]float64{
			"CH4":  58.57,
			"C2H6": 0.08,
			"C3H8": 0.01,
			"C6H6": 0.0023,
			"He":   0.15,
			"N2":   36.90,
			"H2O":  0.45,
			"H2S":  0.0004,
			"CO2":  3.8,
		},
		Solver: SolverConfig{
			Tolerance:     1e-6,
			BracketFactor: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// DefaultPath returns the global config file location,
// $HOME/.fluegas/config.yaml. It returns an empty string when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fluegas", "config.yaml")
}

// Load reads configuration from path, layered over the defaults and under
// any environment overrides. An empty path falls back to EnvConfigPath and
// then DefaultPath; a missing file at the fallback locations is not an
// error, but a missing file at an explicitly given path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			// Scalar fields absent from the document keep their defaults,
			// but a composition given in the file must replace the default
			// map wholesale, not merge species into it.
			defaultComp := cfg.DefaultComposition
			cfg.DefaultComposition = nil
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
			if cfg.DefaultComposition == nil {
				cfg.DefaultComposition = defaultComp
			}
		case os.IsNotExist(err) && !explicit:
			// No config file; defaults apply.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Logging.Format = format
	}

	return cfg, nil
}

// Save writes the configuration as YAML to path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for usability: known species, a
// usable default composition, and sane solver settings.
func (c *Config) Validate() error {
	if _, err := c.Composition(); err != nil {
		return err
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("config: solver tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Solver.BracketFactor <= 1 {
		return fmt.Errorf("config: solver bracket_factor must exceed 1, got %g", c.Solver.BracketFactor)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("config: output format must be table or json, got %q", c.Output.Format)
	}
	return nil
}

// Composition converts the default composition to an engine composition,
// normalizing percent-style values to a unit sum.
func (c *Config) Composition() (combustion.Composition, error) {
	if len(c.DefaultComposition) == 0 {
		return nil, fmt.Errorf("config: default_composition is empty")
	}
	comp := make(combustion.Composition, len(c.DefaultComposition))
	for name, value := range c.DefaultComposition {
		s, err := combustion.ParseSpecies(name)
		if err != nil {
			return nil, fmt.Errorf("config: default_composition: %w", err)
		}
		if value < 0 {
			return nil, fmt.Errorf("config: default_composition: negative fraction %g for %s", value, name)
		}
		comp[s] = value
	}
	if comp.Sum() <= 0 {
		return nil, fmt.Errorf("config: default_composition sums to zero")
	}
	if !comp.UnitSum() {
		comp = comp.Normalized()
	}
	return comp, nil
}
