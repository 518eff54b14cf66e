package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fnode/pkg/fnode"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `mode: strict
max_age: 250ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "strict", cfg.Mode)
	assert.Equal(t, "250ms", cfg.MaxAge)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("mode: [oops"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvMode, "forgiving")
	t.Setenv(EnvMaxAge, "2s")

	cfg := &Config{Mode: "strict", MaxAge: "250ms"}
	cfg.ApplyEnv()

	assert.Equal(t, "forgiving", cfg.Mode)
	assert.Equal(t, "2s", cfg.MaxAge)
}

func TestApplyEnv_UnsetKeepsFileValues(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvMaxAge, "")

	cfg := &Config{Mode: "strict", MaxAge: "250ms"}
	cfg.ApplyEnv()

	assert.Equal(t, "strict", cfg.Mode)
	assert.Equal(t, "250ms", cfg.MaxAge)
}

func TestTreeOptions_ValidConfig(t *testing.T) {
	cfg := &Config{Mode: "forgiving", MaxAge: "500ms"}

	opts, err := cfg.TreeOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestTreeOptions_EmptyConfigUsesDefaults(t *testing.T) {
	cfg := &Config{}

	opts, err := cfg.TreeOptions()
	require.NoError(t, err)
	// Only the (default) mode option; the max-age default stays in the
	// library.
	assert.Len(t, opts, 1)
}

func TestTreeOptions_UnknownMode(t *testing.T) {
	cfg := &Config{Mode: "yolo"}

	_, err := cfg.TreeOptions()
	assert.True(t, errors.Is(err, fnode.ErrInvalidConfig))
}

func TestTreeOptions_BadDuration(t *testing.T) {
	cfg := &Config{MaxAge: "soon"}

	_, err := cfg.TreeOptions()
	assert.True(t, errors.Is(err, fnode.ErrInvalidConfig))
}
