package core

import "math"

// Reflect returns the mirror reflection of a direction around a normal.
// Both the incoming direction and the normal point away from the surface.
func Reflect(w, n Vec3) Vec3 {
	return n.Multiply(2 * w.Dot(n)).Subtract(w)
}

// Refract returns the refraction of a direction through a surface with the
// given inverse relative index of refraction. Falls back to reflection on
// total internal reflection.
func Refract(w, n Vec3, invEta float64) Vec3 {
	cosine := n.Dot(w)
	k := 1 + invEta*invEta*(cosine*cosine-1)
	if k < 0 {
		return Reflect(w, n) // total internal reflection
	}
	return w.Negate().Multiply(invEta).Add(n.Multiply(invEta*cosine - math.Sqrt(k)))
}

// FresnelSchlick evaluates the Schlick approximation of the Fresnel term for
// a surface with reflectivity f0 at normal incidence
func FresnelSchlick(f0, normal, outgoing Vec3) Vec3 {
	if (f0 == Vec3{}) {
		return Vec3{}
	}
	cosine := normal.Dot(outgoing)
	scale := math.Pow(max(0, min(1, 1-math.Abs(cosine))), 5)
	one := NewVec3(1, 1, 1)
	return f0.Add(one.Subtract(f0).Multiply(scale))
}

// FresnelDielectric evaluates the exact Fresnel term for a dielectric surface
// with relative index of refraction eta. Returns 1 on total internal
// reflection.
func FresnelDielectric(eta float64, normal, outgoing Vec3) float64 {
	cosw := math.Abs(normal.Dot(outgoing))

	sin2 := 1 - cosw*cosw
	eta2 := eta * eta

	cos2t := 1 - sin2/eta2
	if cos2t < 0 {
		return 1 // total internal reflection
	}

	t0 := math.Sqrt(cos2t)
	t1 := eta * t0
	t2 := eta * cosw

	rs := (cosw - t1) / (cosw + t1)
	rp := (t0 - t2) / (t0 + t2)

	return (rs*rs + rp*rp) / 2
}

// Orthonormalize returns the component of a orthogonal to b, normalized.
// Used to build a viewer-facing normal for curve primitives, where the
// stored shading normal is the curve tangent.
func Orthonormalize(a, b Vec3) Vec3 {
	return a.Subtract(b.Multiply(a.Dot(b))).Normalize()
}
