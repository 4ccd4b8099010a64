package lighting

import (
	"math"

	lmath "github.com/Faultbox/lumenlab/pkg/math"
)

// MaxRadius is the farthest a polar move may place the light from the origin.
const MaxRadius = 10000.0

// Fallback components substituted when the conversion degenerates to NaN.
const (
	fallbackX = 10
	fallbackY = 0
	fallbackZ = 0
)

// MovePolar moves a light position by angular deltas.
//
// The position is read as two angles measured against the X axis,
// theta = atan(y/x) and rho = atan(z/x), plus the distance from the origin.
// Note that el is added to theta and az to rho.
// Angles above 2π are wrapped down; negative angles are left as they are.
// The radius is capped at MaxRadius, and the position is rebuilt as
// (r·cos θ, r·sin θ, r·sin ρ).
//
// A position with x == 0 has no defined angles; any NaN component of the
// result is replaced, so such a light lands on (10, 0, 0).
func MovePolar(pos lmath.Vec3, az, el float64) lmath.Vec3 {
	x, y, z := float64(pos.X), float64(pos.Y), float64(pos.Z)

	theta, rho := math.NaN(), math.NaN()
	if x != 0 {
		theta = math.Atan(y / x)
		rho = math.Atan(z / x)
	}
	radius := math.Sqrt(x*x + y*y + z*z)

	theta += el
	rho += az

	theta = wrapAngle(theta)
	rho = wrapAngle(rho)

	if radius > MaxRadius {
		radius = MaxRadius
	}

	nx := radius * math.Cos(theta)
	ny := radius * math.Sin(theta)
	nz := radius * math.Sin(rho)
	if math.IsNaN(nx) {
		nx = fallbackX
	}
	if math.IsNaN(ny) {
		ny = fallbackY
	}
	if math.IsNaN(nz) {
		nz = fallbackZ
	}

	return lmath.Vec3{X: float32(nx), Y: float32(ny), Z: float32(nz)}
}

// wrapAngle removes whole turns from angles above 2π, leaving a result in
// (0, 2π]. Angles at or below 2π, and infinities, are returned unchanged.
func wrapAngle(a float64) float64 {
	const turn = 2 * math.Pi
	if a <= turn || math.IsInf(a, 0) {
		return a
	}
	a = math.Mod(a, turn)
	if a == 0 {
		a = turn
	}
	return a
}
