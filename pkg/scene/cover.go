package scene

import (
	"math/rand"

	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/geometry"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/material"
)

// Cover creates a field of small randomly-materialed spheres around
// three hero spheres, in the style of the book-cover render. The layout
// is deterministic for a given RNG seed.
func Cover(random *rand.Rand) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -3), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.2, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(1.2, 0, -2), 0.5, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	heroes := []core.Vec3{
		core.NewVec3(0, 0, -2),
		core.NewVec3(-1.2, 0, -2),
		core.NewVec3(1.2, 0, -2),
	}

	for a := -6; a < 6; a++ {
		for b := -8; b < -1; b++ {
			center := core.NewVec3(
				0.55*float64(a)+0.35*random.Float64(),
				-0.4,
				0.55*float64(b)+0.35*random.Float64(),
			)

			tooClose := false
			for _, hero := range heroes {
				if center.Subtract(hero).Length() < 0.8 {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}

			world.Add(geometry.NewSphere(center, 0.1, randomMaterial(random)))
		}
	}

	return newScene(world, DefaultRenderSettings())
}

// randomMaterial picks a material with the book-cover probabilities:
// 80% diffuse, 15% metal, 5% glass
func randomMaterial(random *rand.Rand) core.Material {
	choice := random.Float64()
	switch {
	case choice < 0.8:
		albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
		return material.NewLambertian(albedo)
	case choice < 0.95:
		albedo := core.RandomVec3InRange(0.5, 1.0, random)
		fuzz := 0.5 * random.Float64()
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}
