package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/hangarbay/internal/scene"
)

func TestDefaultIsValidAndMatchesScene(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, scene.DefaultConfig(), c.Scene())
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `fps: 30
indicator_policy: all_lines
back_wall:
  rows: 2
  origin: [10, 0, -5]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, ":8080", c.Listen)

	sc := c.Scene()
	assert.Equal(t, scene.AllLines, sc.Policy)
	assert.Equal(t, 2, sc.BackWall.Rows)
	assert.Equal(t, 4, sc.BackWall.Columns)
	assert.Equal(t, mgl32.Vec3{10, 0, -5}, sc.BackWall.Origin)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Driver = "console"
	c.Stars.Count = 12
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"fps":      func(c *Config) { c.FPS = 0 },
		"driver":   func(c *Config) { c.Driver = "spi" },
		"policy":   func(c *Config) { c.IndicatorPolicy = "never" },
		"rows":     func(c *Config) { c.BackWall.Rows = -1 },
		"opened":   func(c *Config) { c.BackWall.OpenedDistance = 0 },
		"fraction": func(c *Config) { c.Stars.MinFraction = 1 },
		"delta":    func(c *Config) { c.MaxDelta = -1 },
	}
	for name, mut := range cases {
		c := Default()
		mut(c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, name)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: -1\n"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
