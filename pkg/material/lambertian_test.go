package material

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestLambertianScatter_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.3, 0.1)
	lambertian := NewLambertian(albedo)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  &lambertian,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.3)

	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewSeededSampler(seed)
		result, scattered := lambertian.Scatter(ray, hit, sampler)

		if !scattered {
			t.Fatalf("Seed %d: lambertian should always scatter", seed)
		}
		if result.Attenuation != albedo {
			t.Errorf("Seed %d: expected attenuation %v, got %v", seed, albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Errorf("Seed %d: expected scattered origin %v, got %v", seed, hit.Point, result.Scattered.Origin)
		}
		if result.Scattered.Time != ray.Time {
			t.Errorf("Seed %d: expected scattered ray to keep time %f, got %f", seed, ray.Time, result.Scattered.Time)
		}
		// normal + unit vector never points below the surface
		if result.Scattered.Direction.Dot(hit.Normal) < -1e-9 {
			t.Errorf("Seed %d: scattered direction %v points into the surface", seed, result.Scattered.Direction)
		}
	}
}

func TestLambertianScatter_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// A zero sample maps to the +Z unit vector, which cancels a -Z normal exactly
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, -1),
		FrontFace: true,
		Material:  &lambertian,
	}
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	result, scattered := lambertian.Scatter(ray, hit, core.ConstantSampler{Value: 0})
	if !scattered {
		t.Fatal("Lambertian should always scatter")
	}
	if result.Scattered.Direction != hit.Normal {
		t.Errorf("Expected degenerate direction to fall back to normal %v, got %v",
			hit.Normal, result.Scattered.Direction)
	}
}
