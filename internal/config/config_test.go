package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordmorph/internal/config"
	"github.com/katalvlaran/wordmorph/morph"
	"github.com/katalvlaran/wordmorph/render"
)

func load(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cmd := &cobra.Command{Use: "letter"}
	config.RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	cfg, err := config.Load(cmd)
	require.NoError(t, err)
	return cfg
}

func TestLoad_Flags(t *testing.T) {
	cfg := load(t, "-q", "-b", "cold", "-e", "warm", "-c", "-p", "-o", "m", "--edit-style", "SHORT")
	assert.True(t, cfg.Queue)
	assert.False(t, cfg.Stack)
	assert.Equal(t, "cold", cfg.Begin)
	assert.Equal(t, "warm", cfg.End)
	assert.Equal(t, "M", cfg.Output)
	assert.Equal(t, "short", cfg.EditStyle)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, morph.Queue, cfg.Discipline())
	assert.Equal(t, morph.OpChange|morph.OpSwap, cfg.Operations())
	o, err := cfg.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, render.Options{Mode: render.EditMode, Style: render.ShortStyle}, o)
}

func TestLoad_Defaults(t *testing.T) {
	cfg := load(t)
	assert.Equal(t, "W", cfg.Output)
	assert.Equal(t, "long", cfg.EditStyle)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DictPath)
}

// TestLoad_Layers checks flag > env > file precedence.
func TestLoad_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stack: true\nbegin: ship\nend: shop\nchange: true\nlog-level: info\noutput: Y\n"), 0o600))
	t.Setenv("LETTER_LOG_LEVEL", "debug")
	t.Setenv("LETTER_END", "shot")

	cfg := load(t, "--config", path, "-o", "W")
	assert.True(t, cfg.Stack)
	assert.True(t, cfg.Change)
	assert.Equal(t, "ship", cfg.Begin)
	assert.Equal(t, "shot", cfg.End)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "W", cfg.Output)
	assert.Equal(t, morph.Stack, cfg.Discipline())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	cmd := &cobra.Command{Use: "letter"}
	config.RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
	_, err := config.Load(cmd)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{Queue: true, Begin: "cat", End: "dog", Change: true, Output: "W", EditStyle: "long"}
	}
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"BothModes", func(c *config.Config) { c.Stack = true }, config.ErrModeConflict},
		{"NoMode", func(c *config.Config) { c.Queue = false }, config.ErrModeMissing},
		{"NoBegin", func(c *config.Config) { c.Begin = "" }, config.ErrBeginMissing},
		{"NoEnd", func(c *config.Config) { c.End = "" }, config.ErrEndMissing},
		{"NoOps", func(c *config.Config) { c.Change = false }, config.ErrNoOperations},
		{"Lengths", func(c *config.Config) { c.End = "dogs" }, config.ErrLengthMismatch},
		{"Output", func(c *config.Config) { c.Output = "X" }, config.ErrBadOutput},
		{"Style", func(c *config.Config) { c.EditStyle = "terse" }, config.ErrBadEditStyle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}

	c := valid()
	require.NoError(t, c.Validate())
	c.End, c.Length = "dogs", true
	assert.NoError(t, c.Validate())
}
