// Package config loads render settings from defaults, an optional TOML file and flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Config is the full render configuration. Zero image values and nil camera
// values leave the scene's own defaults in place.
type Config struct {
	Scene  SceneConfig  `toml:"scene"`
	Image  ImageConfig  `toml:"image"`
	Camera CameraConfig `toml:"camera"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type SceneConfig struct {
	Name string `toml:"name"`
	Seed int64  `toml:"seed"`
}

type ImageConfig struct {
	Width           int     `toml:"width"`
	AspectRatio     float64 `toml:"aspect_ratio"`
	SamplesPerPixel int     `toml:"samples_per_pixel"`
	MaxDepth        int     `toml:"max_depth"`
}

type CameraConfig struct {
	LookFrom      []float64 `toml:"look_from"`
	LookAt        []float64 `toml:"look_at"`
	Up            []float64 `toml:"up"`
	VFov          *float64  `toml:"vfov"`
	Aperture      *float64  `toml:"aperture"`
	FocusDistance *float64  `toml:"focus_distance"`
	ShutterOpen   *float64  `toml:"shutter_open"`
	ShutterClose  *float64  `toml:"shutter_close"`
}

type OutputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"` // ppm, png or bmp; empty = from Path extension
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Scene:  SceneConfig{Name: "random-spheres", Seed: 42},
		Output: OutputConfig{Path: "image.ppm"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a TOML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return cfg, fmt.Errorf("config %s: %s", path, strictErr.String())
		}
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges that can be checked without a scene
func (c Config) Validate() error {
	var errs []error

	if c.Scene.Name == "" {
		errs = append(errs, errors.New("scene.name must be set"))
	}
	if c.Image.Width < 0 {
		errs = append(errs, fmt.Errorf("image.width must not be negative, got %d", c.Image.Width))
	}
	if c.Image.AspectRatio < 0 {
		errs = append(errs, fmt.Errorf("image.aspect_ratio must not be negative, got %g", c.Image.AspectRatio))
	}
	if c.Image.SamplesPerPixel < 0 {
		errs = append(errs, fmt.Errorf("image.samples_per_pixel must not be negative, got %d", c.Image.SamplesPerPixel))
	}
	if c.Image.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("image.max_depth must not be negative, got %d", c.Image.MaxDepth))
	}
	for name, v := range map[string][]float64{
		"camera.look_from": c.Camera.LookFrom,
		"camera.look_at":   c.Camera.LookAt,
		"camera.up":        c.Camera.Up,
	} {
		if v != nil && len(v) != 3 {
			errs = append(errs, fmt.Errorf("%s must have 3 components, got %d", name, len(v)))
		}
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output.path must be set"))
	}
	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// OutputFormat returns the image format, falling back to the output path's extension
func (c Config) OutputFormat() (string, error) {
	format := strings.ToLower(c.Output.Format)
	if format == "" {
		path := strings.ToLower(c.Output.Path)
		if i := strings.LastIndexByte(path, '.'); i >= 0 {
			format = path[i+1:]
		}
	}
	switch format {
	case "ppm", "png", "bmp":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want ppm, png or bmp)", format)
	}
}

// ApplyCamera overrides the scene's camera with every value set in c
func (c Config) ApplyCamera(base renderer.CameraConfig) renderer.CameraConfig {
	result := base
	if c.Image.Width > 0 {
		result.Width = c.Image.Width
	}
	if c.Image.AspectRatio > 0 {
		result.AspectRatio = c.Image.AspectRatio
	}
	if len(c.Camera.LookFrom) == 3 {
		result.Center = toVec3(c.Camera.LookFrom)
	}
	if len(c.Camera.LookAt) == 3 {
		result.LookAt = toVec3(c.Camera.LookAt)
	}
	if len(c.Camera.Up) == 3 {
		result.Up = toVec3(c.Camera.Up)
	}
	if c.Camera.VFov != nil {
		result.VFov = *c.Camera.VFov
	}
	if c.Camera.Aperture != nil {
		result.Aperture = *c.Camera.Aperture
	}
	if c.Camera.FocusDistance != nil {
		result.FocusDistance = *c.Camera.FocusDistance
	}
	if c.Camera.ShutterOpen != nil {
		result.TimeOpen = *c.Camera.ShutterOpen
	}
	if c.Camera.ShutterClose != nil {
		result.TimeClose = *c.Camera.ShutterClose
	}
	return result
}

// ApplySampling overrides the scene's sampling settings with every value set in c
func (c Config) ApplySampling(base renderer.SamplingConfig) renderer.SamplingConfig {
	result := base
	if c.Image.SamplesPerPixel > 0 {
		result.SamplesPerPixel = c.Image.SamplesPerPixel
	}
	if c.Image.MaxDepth > 0 {
		result.MaxDepth = c.Image.MaxDepth
	}
	result.Seed = c.Scene.Seed
	return result
}

func toVec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
