package core

// Frame is a rigid transform expressed as an orthonormal basis plus an origin.
// X, Y, Z are the basis vectors in world space, O is the world-space origin.
type Frame struct {
	X, Y, Z, O Vec3
}

// IdentityFrame returns the identity transform
func IdentityFrame() Frame {
	return Frame{
		X: NewVec3(1, 0, 0),
		Y: NewVec3(0, 1, 0),
		Z: NewVec3(0, 0, 1),
		O: NewVec3(0, 0, 0),
	}
}

// TranslationFrame returns a pure translation transform
func TranslationFrame(offset Vec3) Frame {
	f := IdentityFrame()
	f.O = offset
	return f
}

// LookAtFrame builds a frame positioned at eye with -Z pointing at center,
// the convention cameras use
func LookAtFrame(eye, center, up Vec3) Frame {
	z := eye.Subtract(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Frame{X: x, Y: y, Z: z, O: eye}
}

// TransformPoint maps a local point to world space
func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.X.Multiply(p.X).Add(f.Y.Multiply(p.Y)).Add(f.Z.Multiply(p.Z)).Add(f.O)
}

// TransformVector maps a local vector to world space (no translation)
func (f Frame) TransformVector(v Vec3) Vec3 {
	return f.X.Multiply(v.X).Add(f.Y.Multiply(v.Y)).Add(f.Z.Multiply(v.Z))
}

// TransformDirection maps a local direction to a normalized world direction
func (f Frame) TransformDirection(d Vec3) Vec3 {
	return f.TransformVector(d).Normalize()
}

// TransformNormal maps a local surface normal to a normalized world normal.
// Valid because the basis is orthonormal.
func (f Frame) TransformNormal(n Vec3) Vec3 {
	return f.TransformVector(n).Normalize()
}

// Inverse returns the inverse rigid transform
func (f Frame) Inverse() Frame {
	// Transpose of an orthonormal basis is its inverse
	inv := Frame{
		X: NewVec3(f.X.X, f.Y.X, f.Z.X),
		Y: NewVec3(f.X.Y, f.Y.Y, f.Z.Y),
		Z: NewVec3(f.X.Z, f.Y.Z, f.Z.Z),
	}
	inv.O = inv.TransformVector(f.O).Negate()
	return inv
}

// TransformRay maps a ray through the transform, preserving the direction's
// length so distances along the ray stay comparable
func (f Frame) TransformRay(r Ray) Ray {
	return Ray{
		Origin:    f.TransformPoint(r.Origin),
		Direction: f.TransformVector(r.Direction),
	}
}
