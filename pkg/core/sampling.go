package core

import "math"

// orthonormalBasis builds a tangent/bitangent pair around a normal
func orthonormalBasis(normal Vec3) (tangent, bitangent Vec3) {
	// Find a vector perpendicular to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent = nt.Cross(normal).Normalize()
	bitangent = normal.Cross(tangent)
	return tangent, bitangent
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around the normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Generate point in unit disk using uniform random sampling
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	tangent, bitangent := orthonormalBasis(normal)

	// Transform to world space
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// SampleCosinePowerHemisphere generates a direction distributed proportionally
// to cos(theta)^exponent around the normal, used for microfacet lobes
func SampleCosinePowerHemisphere(exponent float64, normal Vec3, sample Vec2) Vec3 {
	zCoord := math.Pow(sample.Y, 1/(exponent+1))
	r := math.Sqrt(math.Max(0, 1-zCoord*zCoord))
	phi := 2.0 * math.Pi * sample.X

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)

	tangent, bitangent := orthonormalBasis(normal)

	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}
