package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/starfield"
)

// IndicatorPolicy decides when a finished sequence turns the emergency
// light off.
type IndicatorPolicy string

const (
	// FirstLine turns the light off on the first completion of any line.
	FirstLine IndicatorPolicy = "first_line"
	// AllLines waits until every line is idle.
	AllLines IndicatorPolicy = "all_lines"
)

func ParsePolicy(s string) (IndicatorPolicy, error) {
	switch p := IndicatorPolicy(s); p {
	case "":
		return FirstLine, nil
	case FirstLine, AllLines:
		return p, nil
	}
	return "", fmt.Errorf("scene: unknown indicator policy %q", s)
}

// BackWall describes the openable wall at the far end of the hangar. Each
// row is split into a left line (first half of the columns) and a right
// line (the rest).
type BackWall struct {
	Rows           int        `json:"rows"`
	Columns        int        `json:"columns"`
	Origin         mgl32.Vec3 `json:"origin"`
	ColumnPitch    float32    `json:"columnPitch"`
	RowPitch       float32    `json:"rowPitch"`
	OpenedDistance float32    `json:"openedDistance"`
	Speed          float32    `json:"speed"`
}

func DefaultBackWall() BackWall {
	return BackWall{
		Rows:           5,
		Columns:        4,
		Origin:         mgl32.Vec3{75, 0, -17.5},
		ColumnPitch:    10,
		RowPitch:       5,
		OpenedDistance: 10,
		Speed:          1,
	}
}

type Stars struct {
	Count       int     `json:"count"`
	MaxDistance float32 `json:"maxDistance"`
	MinFraction float32 `json:"minFraction"`
	Seed        int64   `json:"seed"`
}

type Config struct {
	BackWall  BackWall
	Stars     Stars
	Policy    IndicatorPolicy
	MoveSpeed float32
	Width     int
	Height    int
}

func DefaultConfig() Config {
	return Config{
		BackWall: DefaultBackWall(),
		Stars: Stars{
			Count:       starfield.DefaultCount,
			MaxDistance: starfield.DefaultMaxDistance,
			MinFraction: starfield.DefaultMinFraction,
			Seed:        1,
		},
		Policy:    FirstLine,
		MoveSpeed: 1.1,
		Width:     1200,
		Height:    640,
	}
}
