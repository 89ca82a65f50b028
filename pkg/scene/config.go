package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/geometry"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/material"
)

// Config describes a scene in a YAML file
type Config struct {
	Render  RenderConfig   `yaml:"render"`
	Spheres []SphereConfig `yaml:"spheres"`
}

// RenderConfig holds the render settings section. Zero-valued fields
// fall back to the defaults.
type RenderConfig struct {
	Width           int     `yaml:"width"`
	AspectRatio     float64 `yaml:"aspect_ratio"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Seed            int64   `yaml:"seed"`
}

// SphereConfig describes one sphere and its material
type SphereConfig struct {
	Center   [3]float64     `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Material MaterialConfig `yaml:"material"`
}

// MaterialConfig describes a material. Type selects which of the
// remaining fields apply.
type MaterialConfig struct {
	Type   string     `yaml:"type"`   // "lambertian", "metal" or "dielectric"
	Albedo [3]float64 `yaml:"albedo"` // lambertian, metal
	Fuzz   float64    `yaml:"fuzz"`   // metal
	IOR    float64    `yaml:"ior"`    // dielectric
}

// Load reads a scene configuration from a YAML file and builds the scene
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	return config.Build()
}

// Build validates the configuration and constructs the scene
func (c *Config) Build() (*Scene, error) {
	render, err := c.Render.settings()
	if err != nil {
		return nil, err
	}

	world := geometry.NewWorld()
	for i, sphere := range c.Spheres {
		obj, err := sphere.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		world.Add(obj)
	}

	return newScene(world, render), nil
}

func (r RenderConfig) settings() (RenderSettings, error) {
	settings := DefaultRenderSettings()
	if r.Width != 0 {
		settings.Width = r.Width
	}
	if r.AspectRatio != 0 {
		settings.AspectRatio = r.AspectRatio
	}
	if r.SamplesPerPixel != 0 {
		settings.SamplesPerPixel = r.SamplesPerPixel
	}
	if r.MaxDepth != 0 {
		settings.MaxDepth = r.MaxDepth
	}
	if r.Seed != 0 {
		settings.Seed = r.Seed
	}

	if settings.Width <= 0 {
		return settings, fmt.Errorf("render width must be positive, got %d", settings.Width)
	}
	if settings.AspectRatio <= 0 {
		return settings, fmt.Errorf("aspect ratio must be positive, got %v", settings.AspectRatio)
	}
	if settings.SamplesPerPixel <= 0 {
		return settings, fmt.Errorf("samples per pixel must be positive, got %d", settings.SamplesPerPixel)
	}
	if settings.MaxDepth <= 0 {
		return settings, fmt.Errorf("max depth must be positive, got %d", settings.MaxDepth)
	}
	return settings, nil
}

func (s SphereConfig) build() (*geometry.Sphere, error) {
	// Negative radii are allowed: they model hollow shells
	if s.Radius == 0 {
		return nil, fmt.Errorf("radius must be non-zero")
	}

	mat, err := s.Material.build()
	if err != nil {
		return nil, err
	}

	center := core.NewVec3(s.Center[0], s.Center[1], s.Center[2])
	return geometry.NewSphere(center, s.Radius, mat), nil
}

func (m MaterialConfig) build() (core.Material, error) {
	switch m.Type {
	case "lambertian":
		albedo, err := m.albedo()
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := m.albedo()
		if err != nil {
			return nil, err
		}
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return nil, fmt.Errorf("metal fuzz must be in [0, 1], got %v", m.Fuzz)
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric":
		if m.IOR <= 0 {
			return nil, fmt.Errorf("dielectric ior must be positive, got %v", m.IOR)
		}
		return material.NewDielectric(m.IOR), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func (m MaterialConfig) albedo() (core.Vec3, error) {
	for _, c := range m.Albedo {
		if c < 0 || c > 1 {
			return core.Vec3{}, fmt.Errorf("albedo components must be in [0, 1], got %v", m.Albedo)
		}
	}
	return core.NewVec3(m.Albedo[0], m.Albedo[1], m.Albedo[2]), nil
}
