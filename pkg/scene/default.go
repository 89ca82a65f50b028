package scene

import (
	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/geometry"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/material"
)

// Default creates the classic three-sphere scene: a diffuse center
// sphere flanked by a hollow glass sphere and a brushed metal sphere,
// resting on a large ground sphere.
func Default() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		// The left sphere is a hollow glass shell: the same dielectric
		// instance backs both the outer surface and an inner sphere with
		// negative radius, whose normal points inward
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return newScene(world, DefaultRenderSettings())
}
