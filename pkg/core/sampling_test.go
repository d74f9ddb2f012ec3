package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 1, 0)

	var cosineSum float64
	const samples = 10000
	for i := 0; i < samples; i++ {
		dir := SampleCosineHemisphere(normal, NewVec2(rng.Float64(), rng.Float64()))

		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Length())
		}
		cosine := dir.Dot(normal)
		if cosine < 0 {
			t.Fatalf("Direction %v below the surface", dir)
		}
		cosineSum += cosine
	}

	// Cosine-weighted samples average cos(theta) = 2/3
	mean := cosineSum / samples
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestSampleCosinePowerHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 0, 1)

	for _, exponent := range []float64{1, 10, 1000} {
		var minCosine = 1.0
		for i := 0; i < 1000; i++ {
			dir := SampleCosinePowerHemisphere(exponent, normal, NewVec2(rng.Float64(), rng.Float64()))

			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
			cosine := dir.Dot(normal)
			if cosine < 0 {
				t.Fatalf("Direction %v below the surface for exponent %f", dir, exponent)
			}
			minCosine = math.Min(minCosine, cosine)
		}
		// High exponents concentrate samples around the normal
		if exponent >= 1000 && minCosine < 0.9 {
			t.Errorf("Exponent %f: expected tight lobe, min cosine %f", exponent, minCosine)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var sum Vec3
	const samples = 10000
	for i := 0; i < samples; i++ {
		dir := SampleOnUnitSphere(NewVec2(rng.Float64(), rng.Float64()))

		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Length())
		}
		sum = sum.Add(dir)
	}

	// Uniform sphere samples average out to zero
	mean := sum.Multiply(1.0 / samples)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}
