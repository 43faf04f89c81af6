package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/hangarbay/internal/scene"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type BackWall struct {
	Rows           int        `yaml:"rows"`
	Columns        int        `yaml:"columns"`
	Origin         [3]float32 `yaml:"origin,flow"`
	ColumnPitch    float32    `yaml:"column_pitch"`
	RowPitch       float32    `yaml:"row_pitch"`
	OpenedDistance float32    `yaml:"opened_distance"`
	Speed          float32    `yaml:"speed"`
}

type Stars struct {
	Count       int     `yaml:"count"`
	MaxDistance float32 `yaml:"max_distance"`
	MinFraction float32 `yaml:"min_fraction"`
	Seed        int64   `yaml:"seed"`
}

type Config struct {
	Listen   string `yaml:"listen"`
	FPS      int    `yaml:"fps"`
	LogLevel string `yaml:"log_level"`
	Driver   string `yaml:"driver"` // "console" | "none"

	AssetManifest   string  `yaml:"asset_manifest,omitempty"`
	IndicatorPolicy string  `yaml:"indicator_policy"`
	MoveSpeed       float32 `yaml:"move_speed"`
	MaxDelta        float32 `yaml:"max_delta"`

	Window   Window   `yaml:"window"`
	BackWall BackWall `yaml:"back_wall"`
	Stars    Stars    `yaml:"stars"`
}

// Default mirrors scene.DefaultConfig plus the server settings.
func Default() *Config {
	sc := scene.DefaultConfig()
	bw := sc.BackWall
	return &Config{
		Listen:          ":8080",
		FPS:             60,
		LogLevel:        "info",
		Driver:          "none",
		IndicatorPolicy: string(sc.Policy),
		MoveSpeed:       sc.MoveSpeed,
		MaxDelta:        0.25,
		Window:          Window{Width: sc.Width, Height: sc.Height},
		BackWall: BackWall{
			Rows:           bw.Rows,
			Columns:        bw.Columns,
			Origin:         [3]float32(bw.Origin),
			ColumnPitch:    bw.ColumnPitch,
			RowPitch:       bw.RowPitch,
			OpenedDistance: bw.OpenedDistance,
			Speed:          bw.Speed,
		},
		Stars: Stars(sc.Stars),
	}
}

// Load reads path over the defaults, so omitted keys keep their default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	switch c.Driver {
	case "", "none", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown driver %q", c.Driver))
	}
	if _, err := scene.ParsePolicy(c.IndicatorPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.BackWall.Rows < 0 || c.BackWall.Columns < 0 {
		errs = append(errs, errors.New("back_wall rows and columns must not be negative"))
	}
	if c.BackWall.OpenedDistance <= 0 {
		errs = append(errs, errors.New("back_wall opened_distance must be positive"))
	}
	if c.Stars.Count > 0 && (c.Stars.MinFraction < 0 || c.Stars.MinFraction >= 1) {
		errs = append(errs, fmt.Errorf("stars min_fraction must be in [0,1), got %g", c.Stars.MinFraction))
	}
	if c.MaxDelta < 0 {
		errs = append(errs, errors.New("max_delta must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Scene converts the file layout into the scene's config.
func (c *Config) Scene() scene.Config {
	policy, _ := scene.ParsePolicy(c.IndicatorPolicy)
	bw := c.BackWall
	return scene.Config{
		BackWall: scene.BackWall{
			Rows:           bw.Rows,
			Columns:        bw.Columns,
			Origin:         mgl32.Vec3(bw.Origin),
			ColumnPitch:    bw.ColumnPitch,
			RowPitch:       bw.RowPitch,
			OpenedDistance: bw.OpenedDistance,
			Speed:          bw.Speed,
		},
		Stars:     scene.Stars(c.Stars),
		Policy:    policy,
		MoveSpeed: c.MoveSpeed,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
	}
}
