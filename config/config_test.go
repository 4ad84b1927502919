package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/typefactory/furniture"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "config.yaml", `logging:
  level: debug
metrics:
  enabled: true
universe:
  sequences:
    - [Chair, Table, Sofa]
    - [SteelChair, SteelTable, SteelSofa]
    - [JapaneseSteelChair]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, [][]string{
		{"Chair", "Table", "Sofa"},
		{"SteelChair", "SteelTable", "SteelSofa"},
		{"JapaneseSteelChair"},
	}, cfg.Universe.Sequences)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "config.json", `{"metrics": {"enabled": true}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, furniture.Reference, cfg.Universe.Sequences)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, furniture.Reference, cfg.Universe.Sequences)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TF_LOGGING__LEVEL", "warn")
	t.Setenv("TF_METRICS__ENABLED", "true")
	path := write(t, "config.yaml", "logging:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"format", "config.toml", "level = 1"},
		{"level", "config.yaml", "logging:\n  level: loud\n"},
		{"unknown name", "config.yaml", "universe:\n  sequences:\n    - [Chair]\n    - [GlassChair]\n"},
		{"empty sequence", "config.yaml", "universe:\n  sequences:\n    - [Chair]\n    - []\n"},
		{"syntax", "config.json", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.file, tt.data))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_UnknownName(t *testing.T) {
	c := UniverseConfig{Sequences: [][]string{{"Chair"}, {"GlassChair"}}}
	assert.ErrorIs(t, c.Validate(), furniture.ErrUnknownName)
}
