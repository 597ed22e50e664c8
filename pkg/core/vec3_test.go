package core

import (
	"math"
	"testing"
)

func vecClose(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"lerp midpoint", a.Lerp(b, 0.5), NewVec3(2.5, -1.5, 4.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecClose(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0.0, 0.999); got != 0.999 {
		t.Errorf("Expected 0.999, got %f", got)
	}
	if got := Clamp(-2, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}

func TestReflect(t *testing.T) {
	reflected := Reflect(NewVec3(1, -1, 0), NewVec3(0, 1, 0))
	if !vecClose(reflected, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1,1,0), got %v", reflected)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	in := NewVec3(0, 0, -1)
	out := Refract(in, NewVec3(0, 0, 1), 1.0/1.5)
	if !vecClose(out, in, 1e-12) {
		t.Errorf("Expected undeviated ray %v, got %v", in, out)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 1, 1), NewVec3(0, 2, 0), 0.25)
	if got := ray.At(1.5); !vecClose(got, NewVec3(1, 4, 1), 1e-12) {
		t.Errorf("Expected (1,4,1), got %v", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
}

func TestVec3Luminance(t *testing.T) {
	tests := []struct {
		name     string
		color    Vec3
		expected float64
	}{
		{"black", NewVec3(0, 0, 0), 0},
		{"white", NewVec3(1, 1, 1), 1},
		{"red", NewVec3(1, 0, 0), 0.2126},
		{"green", NewVec3(0, 1, 0), 0.7152},
		{"blue", NewVec3(0, 0, 1), 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Luminance(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected luminance %g, got %g", tt.expected, got)
			}
		})
	}
}
