package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/light"
)

const EmergencyLight = "emergency"

var (
	white = mgl32.Vec4{1, 1, 1, 1}
	down  = mgl32.Vec3{0, -1, 0}
)

func hangarLights() []light.Light {
	ls := []light.Light{
		{
			Name: "tunnel", Kind: light.Point, On: true,
			Position:    mgl32.Vec3{0, 2.5, 2.5},
			Direction:   mgl32.Vec3{1, 0, 0},
			Diffuse:     mgl32.Vec4{1, 1, 0, 1},
			Specular:    white,
			Attenuation: mgl32.Vec4{0.24, 1.35, 0.72, 50},
		},
		{
			Name: EmergencyLight, Kind: light.Spot,
			Position:   mgl32.Vec3{55, 20, 0},
			Direction:  mgl32.Vec3{1, 0, 0},
			Diffuse:    mgl32.Vec4{1, 0, 0, 1},
			Specular:   mgl32.Vec4{1, 0, 0, 100},
			InnerAngle: 30, OuterAngle: 35,
		},
		{
			Name: "hangar", Kind: light.Point, On: true,
			Position:    mgl32.Vec3{50, 12, 0},
			Direction:   mgl32.Vec3{0, 1, 0},
			Diffuse:     white,
			Specular:    white,
			Attenuation: mgl32.Vec4{0.8, 0.3, 0.05, 50},
		},
	}
	// ceiling spots over the hangar lamps, one pair per lamp row
	x := float32(25)
	for i := 0; i < 3; i++ {
		inner, outer := float32(2), float32(40)
		ls = append(ls, light.Light{
			Name: fmt.Sprintf("spot%d_1", i), Kind: light.Spot, On: true,
			Position: mgl32.Vec3{x, 21.5, -7.5}, Direction: down,
			Diffuse: white, Specular: white,
			InnerAngle: inner, OuterAngle: outer,
		})
		if i == 2 {
			inner, outer = 15, 25
		}
		ls = append(ls, light.Light{
			Name: fmt.Sprintf("spot%d_2", i), Kind: light.Spot, On: true,
			Position: mgl32.Vec3{x, 21.5, 7.5}, Direction: down,
			Diffuse: white, Specular: white,
			InnerAngle: inner, OuterAngle: outer,
		})
		x += 20
	}
	return ls
}
