package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomUnitVector maps a 2D sample to a direction uniformly distributed on the unit sphere.
// A sample of (0, y) maps to +Z.
func RandomUnitVector(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit sphere.
// Uses inversion instead of rejection so a fixed sampler always terminates.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	dir := RandomUnitVector(sampler.Get2D())
	return dir.Multiply(math.Cbrt(sampler.Get1D()))
}

// RandomInUnitDisk maps a 2D sample to a point uniformly distributed in the unit disk (z = 0)
func RandomInUnitDisk(sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	theta := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// ConstantSampler returns the same value for every dimension of every draw
type ConstantSampler struct {
	Value float64
}

// Get1D returns the constant value
func (c ConstantSampler) Get1D() float64 { return c.Value }

// Get2D returns the constant value in both dimensions
func (c ConstantSampler) Get2D() Vec2 { return NewVec2(c.Value, c.Value) }

// Get3D returns the constant value in all three dimensions
func (c ConstantSampler) Get3D() Vec3 { return NewVec3(c.Value, c.Value, c.Value) }
