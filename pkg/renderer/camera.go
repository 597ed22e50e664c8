package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidCamera is wrapped by every camera configuration error
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains the closed set of camera parameters
type CameraConfig struct {
	Center        core.Vec3 // Look-from point
	LookAt        core.Vec3 // Point the camera aims at
	Up            core.Vec3 // World up vector
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 = pinhole
	FocusDistance float64   // Distance to the plane in focus, 0 = distance to LookAt
	TimeOpen      float64   // Shutter open time
	TimeClose     float64   // Shutter close time
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	var zero core.Vec3
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.TimeOpen != 0 || override.TimeClose != 0 {
		result.TimeOpen = override.TimeOpen
		result.TimeClose = override.TimeClose
	}
	return result
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	config          CameraConfig
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis, w points away from the view direction
	lensRadius      float64
	width, height   int
}

// NewCamera validates config and builds a camera with depth of field and a shutter interval
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := validateCameraConfig(config); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta/2) * focusDistance
	halfWidth := halfHeight * config.AspectRatio

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(2 * halfWidth)
	vertical := v.Multiply(2 * halfHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          max(1, int(float64(config.Width)/config.AspectRatio)),
	}, nil
}

func validateCameraConfig(config CameraConfig) error {
	switch {
	case config.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidCamera, config.Width)
	case !(config.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidCamera, config.AspectRatio)
	case !(config.VFov > 0 && config.VFov < 180):
		return fmt.Errorf("%w: vertical fov must be in (0, 180), got %g", ErrInvalidCamera, config.VFov)
	case config.Aperture < 0:
		return fmt.Errorf("%w: aperture must not be negative, got %g", ErrInvalidCamera, config.Aperture)
	case config.FocusDistance < 0:
		return fmt.Errorf("%w: focus distance must not be negative, got %g", ErrInvalidCamera, config.FocusDistance)
	case config.TimeClose < config.TimeOpen:
		return fmt.Errorf("%w: shutter closes (%g) before it opens (%g)", ErrInvalidCamera, config.TimeClose, config.TimeOpen)
	}

	view := config.Center.Subtract(config.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look-from and look-at are the same point %v", ErrInvalidCamera, config.Center)
	}
	if config.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, config.Up)
	}
	return nil
}

// GetRay generates a jittered ray through pixel (i, j), where j = 0 is the top row.
// The ray starts on the lens disk and carries a shutter time.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	s := (float64(i) + jitter.X) / float64(c.width)
	t := (float64(c.height-1-j) + jitter.Y) / float64(c.height)

	rd := core.RandomInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	time := c.config.TimeOpen + sampler.Get1D()*(c.config.TimeClose-c.config.TimeOpen)

	origin := c.center.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, time)
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }
