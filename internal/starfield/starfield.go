// Package starfield scatters stars in a hollow shell around the origin.
package starfield

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCount       = 10000
	DefaultMaxDistance = 1000
	DefaultMinFraction = 0.8
)

// Generate samples uniformly in the cube [-maxDistance, maxDistance]^3 and
// keeps points at least maxDistance*minFraction from the origin until count
// points are kept. minFraction must stay below 1 or the loop never ends.
func Generate(rng *rand.Rand, count int, maxDistance, minFraction float32) []mgl32.Vec3 {
	if count <= 0 || maxDistance <= 0 {
		return nil
	}
	if minFraction >= 1 {
		minFraction = DefaultMinFraction
	}
	inner := maxDistance * minFraction
	out := make([]mgl32.Vec3, 0, count)
	for len(out) < count {
		p := mgl32.Vec3{
			between(rng, -maxDistance, maxDistance),
			between(rng, -maxDistance, maxDistance),
			between(rng, -maxDistance, maxDistance),
		}
		if p.Len() >= inner {
			out = append(out, p)
		}
	}
	return out
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
