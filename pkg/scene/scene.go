package scene

import (
	"github.com/nathanleiby/raytracing-one-weekend/pkg/geometry"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/renderer"
)

// Scene bundles a populated world with the camera and render settings
// used to draw it. The renderer never mutates the scene.
type Scene struct {
	World  *geometry.World
	Camera *renderer.Camera
	Render RenderSettings
}

// RenderSettings carries the recognized render configuration
type RenderSettings struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width/height of the camera viewport
	SamplesPerPixel int     // Anti-aliasing samples per pixel
	MaxDepth        int     // Bounce budget per camera ray
	Seed            int64   // Sampling RNG seed
}

// Height derives the image height from the width and aspect ratio
func (r RenderSettings) Height() int {
	return int(float64(r.Width) / r.AspectRatio)
}

// DefaultRenderSettings returns the settings used by the built-in scenes
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

func newScene(world *geometry.World, render RenderSettings) *Scene {
	return &Scene{
		World:  world,
		Camera: renderer.NewCamera(render.AspectRatio),
		Render: render,
	}
}
