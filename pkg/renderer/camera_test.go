package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        45.0,
	}
}

func TestCameraGetCameraForward(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if math.Abs(forward.X-expected.X) > 1e-6 ||
		math.Abs(forward.Y-expected.Y) > 1e-6 ||
		math.Abs(forward.Z-expected.Z) > 1e-6 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		aspect   float64
		expected int
	}{
		{"square", 100, 1.0, 100},
		{"16:9", 400, 16.0 / 9.0, 225},
		{"very wide clamps to one row", 10, 100.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			config.Width = tt.width
			config.AspectRatio = tt.aspect
			camera, err := NewCamera(config)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if camera.Height() != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, camera.Height())
			}
		})
	}
}

func TestCameraGetRay_CenterPixelLooksForward(t *testing.T) {
	config := testCameraConfig()
	config.Width = 1
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GetRay(0, 0, core.ConstantSampler{Value: 0.5})
	dir := ray.Direction.Normalize()
	if math.Abs(dir.X) > 1e-12 || math.Abs(dir.Y) > 1e-12 || math.Abs(dir.Z+1) > 1e-12 {
		t.Errorf("Expected center ray along -Z, got %v", dir)
	}
	if ray.Origin != config.Center {
		t.Errorf("Expected pinhole origin %v, got %v", config.Center, ray.Origin)
	}
}

func TestCameraGetRay_TopRowPointsUp(t *testing.T) {
	config := testCameraConfig()
	config.Width = 10
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.ConstantSampler{Value: 0.5}
	top := camera.GetRay(0, 0, sampler)
	bottom := camera.GetRay(9, 9, sampler)

	if top.Direction.Y <= 0 || top.Direction.X >= 0 {
		t.Errorf("Expected top-left ray to point up and left, got %v", top.Direction)
	}
	if bottom.Direction.Y >= 0 || bottom.Direction.X <= 0 {
		t.Errorf("Expected bottom-right ray to point down and right, got %v", bottom.Direction)
	}
}

func TestCameraGetRay_LensAndShutter(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3
	config.TimeOpen = 0.25
	config.TimeClose = 0.75
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededSampler(42)
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(200, 200, sampler)

		if offset := ray.Origin.Subtract(config.Center).Length(); offset > 0.25+1e-12 {
			t.Fatalf("Ray origin %v outside lens radius", ray.Origin)
		}
		if ray.Time < 0.25 || ray.Time > 0.75 {
			t.Fatalf("Ray time %f outside shutter interval", ray.Time)
		}

		// Rays through the center pixel converge on the focus plane z = -3
		p := ray.At(-3 / ray.Direction.Z)
		if math.Abs(p.X) > 0.02 || math.Abs(p.Y) > 0.02 || math.Abs(p.Z+3) > 1e-9 {
			t.Fatalf("Expected ray to cross the focus plane near the axis, got %v", p)
		}
	}
}

func TestNewCamera_ZeroFocusDistanceUsesLookAt(t *testing.T) {
	auto := testCameraConfig()
	auto.LookAt = core.NewVec3(0, 0, -4)
	auto.Aperture = 0.5

	explicit := auto
	explicit.FocusDistance = 4

	autoCamera, err := NewCamera(auto)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	explicitCamera, err := NewCamera(explicit)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, v := range []float64{0.1, 0.5, 0.9} {
		sampler := core.ConstantSampler{Value: v}
		got := autoCamera.GetRay(17, 230, sampler)
		want := explicitCamera.GetRay(17, 230, sampler)
		if !vecNear(got.Origin, want.Origin) || !vecNear(got.Direction, want.Direction) {
			t.Errorf("Sample %g: expected ray %v, got %v", v, want, got)
		}
	}
}

func TestNewCamera_RejectsDegenerateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CameraConfig)
	}{
		{"look-from equals look-at", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
		{"zero up", func(c *CameraConfig) { c.Up = core.Vec3{} }},
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"straight fov", func(c *CameraConfig) { c.VFov = 180 }},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -0.1 }},
		{"negative focus", func(c *CameraConfig) { c.FocusDistance = -1 }},
		{"shutter reversed", func(c *CameraConfig) { c.TimeOpen, c.TimeClose = 1, 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
			if camera != nil {
				t.Error("Expected nil camera on error")
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := testCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 64, Aperture: 0.1, TimeClose: 1})

	if merged.Width != 64 || merged.Aperture != 0.1 {
		t.Errorf("Expected overrides to apply, got %+v", merged)
	}
	if merged.VFov != base.VFov || merged.Center != base.Center {
		t.Errorf("Expected zero fields to keep base values, got %+v", merged)
	}
	if merged.TimeOpen != 0 || merged.TimeClose != 1 {
		t.Errorf("Expected shutter interval [0,1], got [%f,%f]", merged.TimeOpen, merged.TimeClose)
	}
}

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) <= 1e-9 && math.Abs(a.Y-b.Y) <= 1e-9 && math.Abs(a.Z-b.Z) <= 1e-9
}
