package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// shaderFunc computes the outgoing radiance (with alpha) along a ray.
// Shaders are selected once per render configuration and invoked per ray.
type shaderFunc func(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4

// GetShader resolves the configured shading algorithm. An unrecognized mode
// is a configuration error surfaced here, never per ray.
func GetShader(params Params) (shaderFunc, error) {
	switch params.Shader {
	case ShaderRaytrace:
		return shadeRaytrace, nil
	case ShaderMatte:
		return shadeMatte, nil
	case ShaderEyelight:
		return shadeEyelight, nil
	case ShaderNormal:
		return shadeNormal, nil
	case ShaderTexcoord:
		return shadeTexcoord, nil
	case ShaderColor:
		return shadeColor, nil
	default:
		return nil, fmt.Errorf("unknown shader %v", params.Shader)
	}
}

// missRadiance accumulates environment emission for a ray that leaves the
// scene. Alpha is 0 when the scene has no environments, else 1.
func missRadiance(s *scene.Scene, ray core.Ray) core.Vec4 {
	radiance := scene.EvalEnvironment(s, ray.Direction)
	alpha := 1.0
	if len(s.Environments) == 0 {
		alpha = 0
	}
	return core.RGBA(radiance, alpha)
}

// surfacePoint is the world-space shading context at an intersection
type surfacePoint struct {
	position core.Vec3
	normal   core.Vec3
	outgoing core.Vec3
	emission core.Vec3
	color    core.Vec3
	opacity  float64
	entering bool
	material *scene.Material
}

// evalSurface evaluates geometry and material at an intersection. The normal
// is flipped to face the outgoing direction for two-sided surfaces and
// orthonormalized against it for line primitives, whose stored normal is the
// curve tangent. entering is recorded before the flip for refraction.
func evalSurface(s *scene.Scene, isect geometry.Intersection, ray core.Ray) surfacePoint {
	instance := &s.Instances[isect.Instance]
	shape := &s.Shapes[instance.Shape]
	material := &s.Materials[instance.Material]

	outgoing := ray.Direction.Negate()
	position := instance.Frame.TransformPoint(scene.EvalPosition(shape, isect.Element, isect.UV))
	normal := instance.Frame.TransformNormal(scene.EvalNormal(shape, isect.Element, isect.UV))
	texcoord := scene.EvalTexcoord(shape, isect.Element, isect.UV)

	emissionTex := scene.EvalTexture(s, material.EmissionTex, texcoord, true)
	colorTex := scene.EvalTexture(s, material.ColorTex, texcoord, true)

	entering := normal.Dot(outgoing) > 0
	if len(shape.Lines) > 0 {
		normal = core.Orthonormalize(outgoing, normal)
	} else if normal.Dot(outgoing) < 0 {
		normal = normal.Negate()
	}

	return surfacePoint{
		position: position,
		normal:   normal,
		outgoing: outgoing,
		emission: material.Emission.MultiplyVec(emissionTex.XYZ()),
		color:    material.Color.MultiplyVec(colorTex.XYZ()),
		opacity:  material.Opacity * colorTex.W,
		entering: entering,
		material: material,
	}
}

// f0Dielectric is the reflectivity of common dielectrics at normal incidence
var f0Dielectric = core.NewVec3(0.04, 0.04, 0.04)

// shadeRaytrace is the full recursive integrator: emission plus one
// BSDF-proportional bounce per material type, with stochastic opacity
// pass-through and a fixed bounce cap (no Russian roulette).
func shadeRaytrace(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return missRadiance(s, ray)
	}

	point := evalSurface(s, isect, ray)

	// Alpha cutout: with probability 1-opacity the ray passes through
	// unchanged. The pass-through consumes a bounce.
	if rng.Float64() < 1-point.opacity {
		return shadeRaytrace(s, bvh, core.NewRay(point.position, ray.Direction), bounce+1, rng, params)
	}

	radiance := point.emission
	if bounce >= params.Bounces {
		return core.RGBA(radiance, 1)
	}

	trace := func(incoming core.Vec3) core.Vec3 {
		return shadeRaytrace(s, bvh, core.NewRay(point.position, incoming), bounce+1, rng, params).XYZ()
	}

	roughness := point.material.Roughness
	exponent := 2 / math.Pow(roughness, 4)

	// Microfacet normal: the true normal for polished surfaces, a
	// cosine-power lobe sample otherwise
	microfacetNormal := func() core.Vec3 {
		if roughness == 0 {
			return point.normal
		}
		return core.SampleCosinePowerHemisphere(exponent, point.normal, rand2(rng))
	}

	switch point.material.Type {
	case scene.MaterialMatte:
		incoming := core.SampleCosineHemisphere(point.normal, rand2(rng))
		radiance = radiance.Add(point.color.MultiplyVec(trace(incoming)))

	case scene.MaterialReflective:
		mnormal := microfacetNormal()
		incoming := core.Reflect(point.outgoing, mnormal)
		fresnel := core.FresnelSchlick(point.color, mnormal, point.outgoing)
		radiance = radiance.Add(fresnel.MultiplyVec(trace(incoming)))

	case scene.MaterialTransparent:
		mnormal := microfacetNormal()
		if rng.Float64() < core.FresnelSchlick(f0Dielectric, mnormal, point.outgoing).Mean() {
			radiance = radiance.Add(trace(core.Reflect(point.outgoing, mnormal)))
		} else {
			// Straight transmission, tinted by the base color
			radiance = radiance.Add(point.color.MultiplyVec(trace(point.outgoing.Negate())))
		}

	case scene.MaterialGlossy:
		mnormal := microfacetNormal()
		if rng.Float64() < core.FresnelSchlick(f0Dielectric, mnormal, point.outgoing).Mean() {
			radiance = radiance.Add(trace(core.Reflect(point.outgoing, mnormal)))
		} else {
			incoming := core.SampleCosineHemisphere(point.normal, rand2(rng))
			radiance = radiance.Add(point.color.MultiplyVec(trace(incoming)))
		}

	case scene.MaterialRefractive:
		mnormal := microfacetNormal()
		eta := point.material.IOR
		if !point.entering {
			eta = 1 / eta
		}
		if rng.Float64() < core.FresnelDielectric(eta, mnormal, point.outgoing) {
			radiance = radiance.Add(trace(core.Reflect(point.outgoing, mnormal)))
		} else {
			incoming := core.Refract(point.outgoing, point.normal, 1/eta)
			radiance = radiance.Add(point.color.MultiplyVec(trace(incoming)))
		}

	case scene.MaterialVolumetric:
		// Placeholder: volumes scatter isotropically at the boundary, not as
		// a participating medium
		incoming := core.SampleOnUnitSphere(rand2(rng))
		radiance = radiance.Add(point.color.MultiplyVec(trace(incoming)))
	}

	return core.RGBA(radiance, 1)
}

// shadeMatte handles misses and opacity like shadeRaytrace but scatters every
// surface diffusely regardless of its declared material type
func shadeMatte(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return missRadiance(s, ray)
	}

	point := evalSurface(s, isect, ray)

	if rng.Float64() < 1-point.opacity {
		return shadeMatte(s, bvh, core.NewRay(point.position, ray.Direction), bounce+1, rng, params)
	}

	radiance := point.emission
	if bounce >= params.Bounces {
		return core.RGBA(radiance, 1)
	}

	incoming := core.SampleCosineHemisphere(point.normal, rand2(rng))
	lighting := shadeMatte(s, bvh, core.NewRay(point.position, incoming), bounce+1, rng, params).XYZ()
	radiance = radiance.Add(point.color.MultiplyVec(lighting))

	return core.RGBA(radiance, 1)
}

// shadeEyelight is a fast local-shading preview: emission plus the base
// color weighted by the cosine to the viewer, no recursion
func shadeEyelight(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return missRadiance(s, ray)
	}

	point := evalSurface(s, isect, ray)
	radiance := point.emission.Add(point.color.Multiply(math.Abs(point.normal.Dot(point.outgoing))))
	return core.RGBA(radiance, 1)
}

// shadeNormal visualizes the surface normal remapped from [-1,1] to [0,1]
func shadeNormal(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return core.Vec4{}
	}

	instance := &s.Instances[isect.Instance]
	shape := &s.Shapes[instance.Shape]
	normal := instance.Frame.TransformNormal(scene.EvalNormal(shape, isect.Element, isect.UV))

	return core.RGBA(normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)), 1)
}

// shadeTexcoord visualizes the fractional part of the texture coordinates
func shadeTexcoord(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return core.Vec4{}
	}

	instance := &s.Instances[isect.Instance]
	shape := &s.Shapes[instance.Shape]
	texcoord := scene.EvalTexcoord(shape, isect.Element, isect.UV).Fract()

	return core.NewVec4(texcoord.X, texcoord.Y, 0, 1)
}

// shadeColor visualizes the material base color
func shadeColor(s *scene.Scene, bvh *geometry.BVH, ray core.Ray, bounce int, rng *rand.Rand, params Params) core.Vec4 {
	isect := bvh.Intersect(s, ray)
	if !isect.Hit {
		return core.Vec4{}
	}

	instance := &s.Instances[isect.Instance]
	color := s.Materials[instance.Material].Color
	return core.RGBA(color, 1)
}

// rand2 draws two uniform samples in [0,1)
func rand2(rng *rand.Rand) core.Vec2 {
	return core.NewVec2(rng.Float64(), rng.Float64())
}
