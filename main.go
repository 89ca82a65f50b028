package main

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nathanleiby/raytracing-one-weekend/pkg/renderer"
	"github.com/nathanleiby/raytracing-one-weekend/pkg/scene"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Render struct {
		Scene   string `help:"Built-in scene: 'default' or 'cover'." default:"default"`
		Config  string `help:"YAML scene file; takes precedence over --scene." type:"path"`
		Output  string `help:"Output PNG path." short:"o" default:"render.png"`
		Width   int    `help:"Override image width."`
		Samples int    `help:"Override samples per pixel."`
		Depth   int    `help:"Override maximum bounce depth."`
		Seed    int64  `help:"Override the sampling RNG seed."`
	} `cmd:"" default:"1" help:"Render a scene to a PNG image."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("raytracer"),
		kong.Description("A recursive ray tracer for scenes of spheres with diffuse, metal and glass materials."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "render":
		if err := renderCommand(); err != nil {
			log.Fatal().Err(err).Msg("render failed")
		}
	}
}

func renderCommand() error {
	seed := CLI.Render.Seed
	if seed == 0 {
		seed = scene.DefaultRenderSettings().Seed
	}

	sc, err := buildScene(CLI.Render.Scene, CLI.Render.Config, seed)
	if err != nil {
		return err
	}

	settings := sc.Render
	settings.Seed = seed
	if CLI.Render.Width > 0 {
		settings.Width = CLI.Render.Width
	}
	if CLI.Render.Samples > 0 {
		settings.SamplesPerPixel = CLI.Render.Samples
	}
	if CLI.Render.Depth > 0 {
		settings.MaxDepth = CLI.Render.Depth
	}

	width, height := settings.Width, settings.Height()
	log.Info().
		Int("width", width).
		Int("height", height).
		Int("samples_per_pixel", settings.SamplesPerPixel).
		Int("max_depth", settings.MaxDepth).
		Int64("seed", settings.Seed).
		Msg("rendering")

	raytracer := renderer.NewRaytracer(sc.World, sc.Camera, width, height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: settings.SamplesPerPixel,
		MaxDepth:        settings.MaxDepth,
	})
	raytracer.Seed(settings.Seed)

	start := time.Now()
	img, stats := raytracer.Render()
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("total_samples", stats.TotalSamples).
		Float64("mean_luminance", stats.MeanLuminance).
		Float64("stddev_luminance", stats.StdDevLuminance).
		Msg("render complete")

	file, err := os.Create(CLI.Render.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	log.Info().Str("path", CLI.Render.Output).Msg("image written")
	return nil
}

// buildScene resolves the scene to render: an explicit YAML file wins,
// otherwise one of the built-in scenes by name
func buildScene(name, configPath string, seed int64) (*scene.Scene, error) {
	if configPath != "" {
		return scene.Load(configPath)
	}

	switch name {
	case "default":
		return scene.Default(), nil
	case "cover":
		return scene.Cover(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: default, cover)", name)
	}
}
