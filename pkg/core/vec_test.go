package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec3
		b        Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross Z is X",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Parallel vectors give zero",
			a:        NewVec3(2, 2, 2),
			b:        NewVec3(1, 1, 1),
			expected: NewVec3(0, 0, 0),
		},
		{
			name:     "Anticommutative",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector to report finite")
	}
	if NewVec3(math.Inf(1), 0, 0).IsFinite() {
		t.Error("Expected Inf component to report non-finite")
	}
	if NewVec3(0, math.NaN(), 0).IsFinite() {
		t.Error("Expected NaN component to report non-finite")
	}
}

func TestVec2_Fract(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{
			name:     "In range unchanged",
			v:        NewVec2(0.25, 0.75),
			expected: NewVec2(0.25, 0.75),
		},
		{
			name:     "Above one wraps",
			v:        NewVec2(1.25, 2.5),
			expected: NewVec2(0.25, 0.5),
		},
		{
			name:     "Negative wraps positive",
			v:        NewVec2(-0.25, -1.75),
			expected: NewVec2(0.75, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Fract()

			const tolerance = 1e-9
			if math.Abs(result.X-tt.expected.X) > tolerance || math.Abs(result.Y-tt.expected.Y) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	point := ray.At(1.5)
	expected := NewVec3(1, 3, 0)
	if point.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
