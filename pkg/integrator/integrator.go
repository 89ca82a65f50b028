package integrator

import (
	"math"
	"math/rand"

	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
)

var (
	colorBlack   = core.NewVec3(0, 0, 0)
	colorWhite   = core.NewVec3(1, 1, 1)
	colorSkyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// RayColor computes the color seen along a ray by recursive light
// transport: each bounce multiplies the accumulated color by the
// material's attenuation until the ray escapes to the sky, is absorbed,
// or exhausts its bounce budget.
func RayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return colorBlack
	}

	// tMin of 0.001 avoids immediate re-intersection with the surface a
	// scattered ray starts on (shadow acne)
	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return SkyGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return colorBlack
	}

	return scatter.Attenuation.MultiplyVec(
		RayColor(scatter.Scattered, world, random, depth-1))
}

// SkyGradient returns the background color for a ray that escapes the
// scene: white blended toward sky blue by the direction's height. This
// gradient is the only light source in the system.
func SkyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return colorWhite.Multiply(1.0 - t).Add(colorSkyBlue.Multiply(t))
}
