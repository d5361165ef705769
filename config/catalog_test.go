package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	require.Len(t, c.Bodies, 9)

	assert.Equal(t, "Ἑρμῆς", c.Bodies[0].Name)
	assert.Equal(t, "☿", c.Bodies[0].Symbol)
	assert.Equal(t, 0.387098, c.Bodies[0].Orbit.Radius)
	assert.Equal(t, "Ἅιδης", c.Bodies[8].Name)
	assert.Equal(t, 39.482, c.Bodies[8].Orbit.Radius)

	for i := 1; i < len(c.Bodies); i++ {
		assert.Greater(t, c.Bodies[i].Orbit.Radius, c.Bodies[i-1].Orbit.Radius)
	}
}

func TestCatalog_YAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultCatalog().WriteYAML(&buf))

	got, err := LoadCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), got)
}

func TestLoadCatalog(t *testing.T) {
	src := `
bodies:
  - name: Γαῖα
    symbol: ♁
    orbit:
      radius: 1
      center: [0, 0, 0]
      rotation: [0.1, 0, 0]
      precision: 32
  - name: Σελήνη
    orbit:
      radius: 0.3
`
	c, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, c.Bodies, 2)

	assert.Equal(t, "♁", c.Bodies[0].Symbol)
	assert.Equal(t, []float64{0.1, 0, 0}, c.Bodies[0].Orbit.Rotation)
	assert.Equal(t, 32, c.Bodies[0].Orbit.Precision)
	assert.Nil(t, c.Bodies[1].Orbit.Center)
	assert.Equal(t, 0, c.Bodies[1].Orbit.Precision)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no bodies", "bodies: []\n"},
		{"missing name", "bodies:\n  - orbit: {radius: 1}\n"},
		{"duplicate", "bodies:\n  - name: a\n  - name: a\n"},
		{"negative radius", "bodies:\n  - name: a\n    orbit: {radius: -1}\n"},
		{"negative precision", "bodies:\n  - name: a\n    orbit: {radius: 1, precision: -2}\n"},
		{"short center", "bodies:\n  - name: a\n    orbit: {radius: 1, center: [1, 2]}\n"},
		{"long rotation", "bodies:\n  - name: a\n    orbit: {radius: 1, rotation: [1, 2, 3, 4]}\n"},
		{"unknown field", "bodies:\n  - name: a\n    mass: 3\n"},
		{"not yaml", "bodies: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bodies:\n  - name: a\n    orbit: {radius: 2}\n"), 0o644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a", c.Bodies[0].Name)

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	cfg := Default()
	cfg.CatalogPath = path
	got, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
