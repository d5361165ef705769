package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	c, err := Parse("solar", nil, &out)
	require.NoError(t, err)

	assert.Equal(t, 64, c.Precision)
	assert.Equal(t, 24, c.FPS)
	assert.Equal(t, "solar.mp4", c.Output)
	assert.False(t, c.ShowAxis)
	assert.False(t, c.SaveMP4)
	assert.False(t, c.Verbose)
	assert.Equal(t, ModeInteractive, c.Mode())
	assert.Empty(t, out.String())
}

func TestParse_ShortAndLongFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c *Config)
	}{
		{"long bools", []string{"--show-axis", "--save-mp4", "--verbose"}, func(t *testing.T, c *Config) {
			assert.True(t, c.ShowAxis)
			assert.True(t, c.SaveMP4)
			assert.True(t, c.Verbose)
			assert.Equal(t, ModeExport, c.Mode())
		}},
		{"short bools", []string{"-A", "-S", "-V"}, func(t *testing.T, c *Config) {
			assert.True(t, c.ShowAxis)
			assert.True(t, c.SaveMP4)
			assert.True(t, c.Verbose)
		}},
		{"long ints", []string{"--precision", "128", "--fps", "30"}, func(t *testing.T, c *Config) {
			assert.Equal(t, 128, c.Precision)
			assert.Equal(t, 30, c.FPS)
		}},
		{"short ints", []string{"-p", "8", "-f", "12"}, func(t *testing.T, c *Config) {
			assert.Equal(t, 8, c.Precision)
			assert.Equal(t, 12, c.FPS)
		}},
		{"headless", []string{"--headless", "-V"}, func(t *testing.T, c *Config) {
			assert.Equal(t, ModeHeadless, c.Mode())
		}},
		{"frames dir", []string{"-S", "--frames-dir", "out"}, func(t *testing.T, c *Config) {
			assert.Equal(t, "out", c.FramesDir)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse("solar", tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero precision", []string{"-p", "0"}},
		{"negative fps", []string{"-f", "-1"}},
		{"zero dpi", []string{"--dpi", "0"}},
		{"exclusive modes", []string{"--headless", "-S"}},
		{"frames dir without export", []string{"--frames-dir", "x"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"positional", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Parse("solar", tt.args, &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
			assert.Contains(t, out.String(), "Usage")
		})
	}
}

func TestParse_UnknownFlagAndHelp(t *testing.T) {
	_, err := Parse("solar", []string{"--nope"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))

	_, err = Parse("solar", []string{"-h"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "interactive", ModeInteractive.String())
	assert.Equal(t, "headless", ModeHeadless.String())
	assert.Equal(t, "export", ModeExport.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestConfigCatalog_Default(t *testing.T) {
	c := Default()
	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Len(t, cat.Bodies, 9)
}
