package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combustkit/fluegas/internal/combustion"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	comp, err := cfg.Composition()
	require.NoError(t, err)
	// Percent-style defaults are normalized to a unit sum.
	assert.True(t, comp.UnitSum())
	assert.Greater(t, comp[combustion.CH4], 0.5)
}

func TestLoadMissingExplicitPathErrors(t *testing.T) {
	// An env-var path behaves like an explicit one.
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load("")
	require.Error(t, err)

	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "also-nope.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Solver, cfg.Solver)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
default_composition:
  CH4: 1.0
solver:
  tolerance: 1e-5
  bracket_factor: 10
logging:
  level: debug
  format: json
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 1e-5, cfg.Solver.Tolerance, 1e-12)
	assert.InDelta(t, 10, cfg.Solver.BracketFactor, 1e-12)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.Format)

	comp, err := cfg.Composition()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, comp[combustion.CH4], 1e-12)
}

func TestLoadReplacesDefaultComposition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "default_composition:\n  CH4: 0.9\n  N2: 0.1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// The file's composition stands alone; no default species leak in.
	assert.Equal(t, map[string]float64{"CH4": 0.9, "N2": 0.1}, cfg.DefaultComposition)

	comp, err := cfg.Composition()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, comp[combustion.CH4], 1e-12)
	assert.NotContains(t, comp, combustion.CO2)
	assert.NotContains(t, comp, combustion.He)
}

func TestLoadKeepsDefaultCompositionWhenFileOmitsIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  bracket_factor: 8\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 8, cfg.Solver.BracketFactor, 1e-12)
	assert.Equal(t, Default().DefaultComposition, cfg.DefaultComposition)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o600))
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_composition: [not, a, map]"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Solver.BracketFactor = 7

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 7, loaded.Solver.BracketFactor, 1e-12)
	assert.Equal(t, cfg.DefaultComposition, loaded.DefaultComposition)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown species", func(c *Config) { c.DefaultComposition = map[string]float64{"Ar": 1} }},
		{"negative fraction", func(c *Config) { c.DefaultComposition["CH4"] = -3 }},
		{"empty composition", func(c *Config) { c.DefaultComposition = nil }},
		{"zero tolerance", func(c *Config) { c.Solver.Tolerance = 0 }},
		{"bracket factor of one", func(c *Config) { c.Solver.BracketFactor = 1 }},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
