package core

import (
	"math"
	"testing"
)

func TestFrame_RoundTrip(t *testing.T) {
	frame := LookAtFrame(NewVec3(1, 2, 3), NewVec3(0, 0, 0), NewVec3(0, 1, 0))
	inverse := frame.Inverse()

	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(-2, 5, 0.5),
	}

	const tolerance = 1e-9
	for _, p := range points {
		back := inverse.TransformPoint(frame.TransformPoint(p))
		if back.Subtract(p).Length() > tolerance {
			t.Errorf("Round trip of %v gave %v", p, back)
		}
	}
}

func TestLookAtFrame_Orthonormal(t *testing.T) {
	frame := LookAtFrame(NewVec3(0, 1, 5), NewVec3(0, 0, 0), NewVec3(0, 1, 0))

	const tolerance = 1e-9
	if math.Abs(frame.X.Length()-1) > tolerance ||
		math.Abs(frame.Y.Length()-1) > tolerance ||
		math.Abs(frame.Z.Length()-1) > tolerance {
		t.Error("Expected unit basis vectors")
	}
	if math.Abs(frame.X.Dot(frame.Y)) > tolerance ||
		math.Abs(frame.Y.Dot(frame.Z)) > tolerance ||
		math.Abs(frame.Z.Dot(frame.X)) > tolerance {
		t.Error("Expected perpendicular basis vectors")
	}
	// Right-handed: X cross Y is Z
	if frame.X.Cross(frame.Y).Subtract(frame.Z).Length() > tolerance {
		t.Error("Expected right-handed basis")
	}
	// -Z points from eye toward center
	look := NewVec3(0, 0, 0).Subtract(frame.O).Normalize()
	if frame.Z.Negate().Subtract(look).Length() > tolerance {
		t.Errorf("Expected -Z to face the target, got %v", frame.Z.Negate())
	}
}

func TestFrame_TransformNormal(t *testing.T) {
	frame := LookAtFrame(NewVec3(3, 1, 2), NewVec3(0, 0, 0), NewVec3(0, 1, 0))

	normal := frame.TransformNormal(NewVec3(0, 0, 1))
	if math.Abs(normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", normal.Length())
	}
}

func TestFrame_TransformRay(t *testing.T) {
	frame := TranslationFrame(NewVec3(10, 0, 0))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -2))

	transformed := frame.TransformRay(ray)

	const tolerance = 1e-9
	if transformed.Origin.Subtract(NewVec3(10, 0, 0)).Length() > tolerance {
		t.Errorf("Expected translated origin, got %v", transformed.Origin)
	}
	// Direction length is preserved so ray distances stay comparable
	if math.Abs(transformed.Direction.Length()-2) > tolerance {
		t.Errorf("Expected direction length 2, got %f", transformed.Direction.Length())
	}
}
