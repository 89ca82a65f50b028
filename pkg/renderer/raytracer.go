package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Raytracer runs the pixel loop: one jittered camera ray per sample per
// pixel, averaged and gamma corrected into an 8-bit image
type Raytracer struct {
	world  core.Hittable
	camera *Camera
	width  int
	height int
	config SamplingConfig
	random *rand.Rand
}

// NewRaytracer creates a raytracer for a world and camera at the given
// image dimensions
func NewRaytracer(world core.Hittable, camera *Camera, width, height int) *Raytracer {
	return &Raytracer{
		world:  world,
		camera: camera,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		random: rand.New(rand.NewSource(42)), // Deterministic for testing
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// Seed resets the sampling RNG
func (rt *Raytracer) Seed(seed int64) {
	rt.random = rand.New(rand.NewSource(seed))
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Render traces the full image and returns it with per-pass statistics
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	luminances := make([]float64, 0, rt.width*rt.height)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			colorAccum := core.NewVec3(0, 0, 0)

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jitter within the pixel for anti-aliasing
				u := (float64(i) + rt.random.Float64()) / float64(rt.width-1)
				v := (float64(j) + rt.random.Float64()) / float64(rt.height-1)

				ray := rt.camera.GetRay(u, v)
				colorAccum = colorAccum.Add(integrator.RayColor(ray, rt.world, rt.random, rt.config.MaxDepth))
			}

			colorVec := colorAccum.Divide(float64(rt.config.SamplesPerPixel))
			luminances = append(luminances, colorVec.Luminance())

			// v grows bottom-to-top while image rows grow top-to-bottom
			img.SetRGBA(i, rt.height-1-j, rt.vec3ToColor(colorVec))
		}
	}

	return img, newRenderStats(luminances, rt.config.SamplesPerPixel)
}
