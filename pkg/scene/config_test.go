package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_FullScene(t *testing.T) {
	path := writeSceneFile(t, `
render:
  width: 200
  aspect_ratio: 2.0
  samples_per_pixel: 10
  max_depth: 8
  seed: 7
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material:
      type: lambertian
      albedo: [0.1, 0.2, 0.5]
  - center: [1, 0, -1]
    radius: 0.5
    material:
      type: metal
      albedo: [0.8, 0.6, 0.2]
      fuzz: 0.3
  - center: [-1, 0, -1]
    radius: 0.5
    material:
      type: dielectric
      ior: 1.5
`)

	scene, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, scene.Render.Width)
	assert.Equal(t, 100, scene.Render.Height())
	assert.Equal(t, 10, scene.Render.SamplesPerPixel)
	assert.Equal(t, 8, scene.Render.MaxDepth)
	assert.Equal(t, int64(7), scene.Render.Seed)
	assert.Len(t, scene.World.Objects, 3)
	assert.NotNil(t, scene.Camera)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeSceneFile(t, `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material:
      type: lambertian
      albedo: [0.5, 0.5, 0.5]
`)

	scene, err := Load(path)
	require.NoError(t, err)

	defaults := DefaultRenderSettings()
	assert.Equal(t, defaults.Width, scene.Render.Width)
	assert.Equal(t, defaults.SamplesPerPixel, scene.Render.SamplesPerPixel)
	assert.Equal(t, defaults.MaxDepth, scene.Render.MaxDepth)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scene file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeSceneFile(t, "spheres: [notasphere")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scene file")
}

func TestConfig_Build_Validation(t *testing.T) {
	validSphere := SphereConfig{
		Center:   [3]float64{0, 0, -1},
		Radius:   0.5,
		Material: MaterialConfig{Type: "lambertian", Albedo: [3]float64{0.5, 0.5, 0.5}},
	}

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "negative width",
			config:  Config{Render: RenderConfig{Width: -10}, Spheres: []SphereConfig{validSphere}},
			wantErr: "width must be positive",
		},
		{
			name:    "negative aspect ratio",
			config:  Config{Render: RenderConfig{AspectRatio: -1}, Spheres: []SphereConfig{validSphere}},
			wantErr: "aspect ratio must be positive",
		},
		{
			name: "zero radius",
			config: Config{Spheres: []SphereConfig{{
				Radius:   0,
				Material: validSphere.Material,
			}}},
			wantErr: "radius must be non-zero",
		},
		{
			name: "unknown material",
			config: Config{Spheres: []SphereConfig{{
				Radius:   0.5,
				Material: MaterialConfig{Type: "velvet"},
			}}},
			wantErr: "unknown material type",
		},
		{
			name: "albedo out of range",
			config: Config{Spheres: []SphereConfig{{
				Radius:   0.5,
				Material: MaterialConfig{Type: "lambertian", Albedo: [3]float64{1.5, 0, 0}},
			}}},
			wantErr: "albedo components",
		},
		{
			name: "fuzz out of range",
			config: Config{Spheres: []SphereConfig{{
				Radius:   0.5,
				Material: MaterialConfig{Type: "metal", Albedo: [3]float64{0.5, 0.5, 0.5}, Fuzz: 2},
			}}},
			wantErr: "fuzz must be in",
		},
		{
			name: "non-positive ior",
			config: Config{Spheres: []SphereConfig{{
				Radius:   0.5,
				Material: MaterialConfig{Type: "dielectric", IOR: 0},
			}}},
			wantErr: "ior must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.config.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Build_NegativeRadiusAllowed(t *testing.T) {
	// Hollow glass shells use negative radii
	config := Config{Spheres: []SphereConfig{{
		Center:   [3]float64{-1, 0, -1},
		Radius:   -0.45,
		Material: MaterialConfig{Type: "dielectric", IOR: 1.5},
	}}}

	scene, err := config.Build()
	require.NoError(t, err)
	assert.Len(t, scene.World.Objects, 1)
}
