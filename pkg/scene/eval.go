package scene

import (
	"math"

	"github.com/tracelab/go-raytrace/pkg/core"
)

// EvalPosition interpolates the shape-local surface position for an element
// and its parametric coordinates
func EvalPosition(shape *Shape, element int, uv core.Vec2) core.Vec3 {
	switch {
	case len(shape.Triangles) > 0:
		t := shape.Triangles[element]
		return interpolateTriangle(shape.Positions[t[0]], shape.Positions[t[1]], shape.Positions[t[2]], uv)
	case len(shape.Lines) > 0:
		l := shape.Lines[element]
		return interpolateLine(shape.Positions[l[0]], shape.Positions[l[1]], uv.X)
	case len(shape.Points) > 0:
		return shape.Positions[shape.Points[element]]
	default:
		return core.Vec3{}
	}
}

// EvalNormal interpolates the shape-local shading normal. For lines the
// result is the curve tangent; callers orthonormalize it against the viewing
// direction. Falls back to a geometric normal when the shape carries none.
func EvalNormal(shape *Shape, element int, uv core.Vec2) core.Vec3 {
	switch {
	case len(shape.Triangles) > 0:
		t := shape.Triangles[element]
		if len(shape.Normals) == 0 {
			return triangleNormal(shape.Positions[t[0]], shape.Positions[t[1]], shape.Positions[t[2]])
		}
		return interpolateTriangle(shape.Normals[t[0]], shape.Normals[t[1]], shape.Normals[t[2]], uv).Normalize()
	case len(shape.Lines) > 0:
		l := shape.Lines[element]
		if len(shape.Normals) == 0 {
			return shape.Positions[l[1]].Subtract(shape.Positions[l[0]]).Normalize()
		}
		return interpolateLine(shape.Normals[l[0]], shape.Normals[l[1]], uv.X).Normalize()
	case len(shape.Points) > 0:
		if len(shape.Normals) == 0 {
			return core.NewVec3(0, 0, 1)
		}
		return shape.Normals[shape.Points[element]].Normalize()
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// EvalTexcoord interpolates the shape-local texture coordinates, or returns
// the parametric coordinates when the shape carries none
func EvalTexcoord(shape *Shape, element int, uv core.Vec2) core.Vec2 {
	if len(shape.Texcoords) == 0 {
		return uv
	}
	switch {
	case len(shape.Triangles) > 0:
		t := shape.Triangles[element]
		return interpolateTriangle2(shape.Texcoords[t[0]], shape.Texcoords[t[1]], shape.Texcoords[t[2]], uv)
	case len(shape.Lines) > 0:
		l := shape.Lines[element]
		a, b := shape.Texcoords[l[0]], shape.Texcoords[l[1]]
		return a.Multiply(1 - uv.X).Add(b.Multiply(uv.X))
	case len(shape.Points) > 0:
		return shape.Texcoords[shape.Points[element]]
	default:
		return uv
	}
}

// EvalTexture looks up a texture by id at the given coordinates with
// wrap-around addressing. An invalid id evaluates to opaque white so
// material colors multiply through unchanged. When srgbToLinear is set,
// sRGB-encoded textures are converted to linear on the way out.
func EvalTexture(s *Scene, textureID int, uv core.Vec2, srgbToLinear bool) core.Vec4 {
	if textureID == InvalidID {
		return core.NewVec4(1, 1, 1, 1)
	}
	texture := &s.Textures[textureID]
	if texture.Width == 0 || texture.Height == 0 {
		return core.NewVec4(1, 1, 1, 1)
	}

	st := uv.Fract()
	x := int(st.X * float64(texture.Width))
	y := int(st.Y * float64(texture.Height))
	if x >= texture.Width {
		x = texture.Width - 1
	}
	if y >= texture.Height {
		y = texture.Height - 1
	}

	pixel := texture.Pixels[y*texture.Width+x]
	if srgbToLinear && texture.SRGB {
		pixel = core.SRGBToLinearVec(pixel)
	}
	return pixel
}

// EvalEnvironment accumulates the emission of every environment light for a
// world-space direction
func EvalEnvironment(s *Scene, direction core.Vec3) core.Vec3 {
	radiance := core.Vec3{}
	for i := range s.Environments {
		radiance = radiance.Add(evalEnvironment(s, &s.Environments[i], direction))
	}
	return radiance
}

// evalEnvironment maps the direction through the environment frame into
// equirectangular coordinates and samples the emission texture
func evalEnvironment(s *Scene, environment *Environment, direction core.Vec3) core.Vec3 {
	if environment.EmissionTex == InvalidID {
		return environment.Emission
	}
	local := environment.Frame.Inverse().TransformDirection(direction)
	uv := core.NewVec2(
		math.Atan2(local.Z, local.X)/(2*math.Pi),
		math.Acos(max(-1, min(1, local.Y)))/math.Pi,
	)
	return environment.Emission.MultiplyVec(EvalTexture(s, environment.EmissionTex, uv, true).XYZ())
}

// interpolateTriangle blends triangle vertex data with barycentric weights
// (1-u-v, u, v)
func interpolateTriangle(p0, p1, p2 core.Vec3, uv core.Vec2) core.Vec3 {
	return p0.Multiply(1 - uv.X - uv.Y).Add(p1.Multiply(uv.X)).Add(p2.Multiply(uv.Y))
}

func interpolateTriangle2(p0, p1, p2, uv core.Vec2) core.Vec2 {
	return p0.Multiply(1 - uv.X - uv.Y).Add(p1.Multiply(uv.X)).Add(p2.Multiply(uv.Y))
}

// interpolateLine blends line segment endpoints at parameter u
func interpolateLine(p0, p1 core.Vec3, u float64) core.Vec3 {
	return p0.Multiply(1 - u).Add(p1.Multiply(u))
}

// triangleNormal returns the geometric normal of a triangle
func triangleNormal(p0, p1, p2 core.Vec3) core.Vec3 {
	return p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
}
