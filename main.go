package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML render configuration")
	sceneType := flag.String("scene", "", "Scene name (see -list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 0, "Seed for scene layout and sampling")
	out := flag.String("out", "", "Output file (.ppm, .png or .bmp)")
	format := flag.String("format", "", "Output format, overrides the file extension")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-16s %s\n", info.ID, info.Description)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Invalid configuration", "err", err)
		}
		cfg = loaded
	}

	// Explicitly set flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene.Name = *sceneType
		case "width":
			cfg.Image.Width = *width
		case "samples":
			cfg.Image.SamplesPerPixel = *samples
		case "depth":
			cfg.Image.MaxDepth = *depth
		case "seed":
			cfg.Scene.Seed = *seed
		case "out":
			cfg.Output.Path = *out
		case "format":
			cfg.Output.Format = *format
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	logger := newLogger(cfg.Log.Level).With("run", uuid.NewString())

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Render failed", "err", err)
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "raytracer",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// run builds the configured scene, renders it and saves the image
func run(cfg config.Config, logger *log.Logger) error {
	selectedScene, err := createScene(cfg)
	if err != nil {
		return err
	}

	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	raytracer, err := selectedScene.NewRaytracer(logger)
	if err != nil {
		return err
	}

	logger.Info("Starting render", "scene", cfg.Scene.Name, "spheres", selectedScene.GetPrimitiveCount(), "seed", cfg.Scene.Seed)

	img, stats := raytracer.Render()
	logger.Info("Render completed",
		"duration", stats.Duration,
		"pixels", stats.TotalPixels,
		"samples", stats.TotalSamples,
		"luminance", fmt.Sprintf("%.3f", renderer.CalculateAverageLuminance(img)))

	if err := output.Save(cfg.Output.Path, format, img); err != nil {
		return err
	}
	logger.Info("Render saved", "path", cfg.Output.Path, "format", format)
	return nil
}

// createScene builds the named scene with configuration overrides applied
func createScene(cfg config.Config) (*scene.Scene, error) {
	s, err := scene.Build(cfg.Scene.Name, cfg.Scene.Seed)
	if err != nil {
		return nil, err
	}
	s.CameraConfig = cfg.ApplyCamera(s.CameraConfig)
	s.SamplingConfig = cfg.ApplySampling(s.SamplingConfig)
	return s, nil
}
