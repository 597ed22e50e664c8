package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance, so bounced rays do not re-hit their origin surface
const ShadowAcneEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed of the render's random source
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Raytracer integrates radiance over a world seen through a camera
type Raytracer struct {
	world       geometry.Hittable
	camera      *Camera
	config      SamplingConfig
	topColor    core.Vec3
	bottomColor core.Vec3
	logger      core.Logger
}

// NewRaytracer creates a new raytracer with the default sky gradient
func NewRaytracer(world geometry.Hittable, camera *Camera, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:       world,
		camera:      camera,
		config:      config,
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
		logger:      logger,
	}
}

// SetBackgroundColors replaces the sky gradient
func (rt *Raytracer) SetBackgroundColors(topColor, bottomColor core.Vec3) {
	rt.topColor = topColor
	rt.bottomColor = bottomColor
}

// GetBackgroundColors returns the sky gradient
func (rt *Raytracer) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return rt.topColor, rt.bottomColor
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return rt.bottomColor.Multiply(1.0 - t).Add(rt.topColor.Multiply(t))
}

// RayColor returns the radiance carried back along ray with at most depth bounces.
// Bounces run in a loop carrying the product of attenuations, so depth does not
// grow the call stack.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := rt.world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// SamplePixel averages SamplesPerPixel jittered samples of pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for ps.SampleCount < rt.config.SamplesPerPixel {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, sampler))
	}
	return ps
}

// Render traces every pixel, rows top to bottom, with a random source seeded from the config
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	sampler := core.NewSeededSampler(rt.config.Seed)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	stats := RenderStats{
		TotalPixels: width * height,
		MaxDepth:    rt.config.MaxDepth,
	}

	rt.logger.Infof("Rendering %dx%d, %d samples per pixel, max depth %d",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := 0; j < height; j++ {
		rt.logger.Debugf("Scanlines remaining: %d", height-j)
		for i := 0; i < width; i++ {
			ps := rt.SamplePixel(i, j, sampler)
			stats.TotalSamples += ps.SampleCount
			img.SetRGBA(i, j, ToRGBA(ps.GetColor()))
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.Duration = time.Since(startTime)
	return img, stats
}

// ToByte gamma-2 encodes a linear channel and rounds it to [0, 255]
func ToByte(linear float64) uint8 {
	if !(linear > 0) { // also catches NaN
		return 0
	}
	scaled := math.Round(255.999 * core.Clamp(math.Sqrt(linear), 0.0, 1.0))
	return uint8(math.Min(scaled, 255))
}

// ToRGBA encodes an averaged linear color as an opaque 8-bit pixel
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{R: ToByte(c.X), G: ToByte(c.Y), B: ToByte(c.Z), A: 255}
}
