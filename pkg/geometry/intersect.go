package geometry

import (
	"math"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// defaultRadius is used for points and lines when a shape carries no radii
const defaultRadius = 0.005

// elementHit is the result of testing one shape element
type elementHit struct {
	uv       core.Vec2
	distance float64
	hit      bool
}

// intersectShape tests a shape-local ray against every element of a shape and
// returns the closest hit within (tMin, tMax)
func intersectShape(shape *scene.Shape, ray core.Ray, tMin, tMax float64) (element int, best elementHit) {
	best.distance = tMax
	switch {
	case len(shape.Triangles) > 0:
		for e, triangle := range shape.Triangles {
			h := intersectTriangle(ray,
				shape.Positions[triangle[0]],
				shape.Positions[triangle[1]],
				shape.Positions[triangle[2]],
				tMin, best.distance)
			if h.hit {
				best = h
				element = e
			}
		}
	case len(shape.Lines) > 0:
		for e, line := range shape.Lines {
			h := intersectLine(ray,
				shape.Positions[line[0]], shape.Positions[line[1]],
				radiusAt(shape, line[0]), radiusAt(shape, line[1]),
				tMin, best.distance)
			if h.hit {
				best = h
				element = e
			}
		}
	case len(shape.Points) > 0:
		for e, point := range shape.Points {
			h := intersectPoint(ray, shape.Positions[point], radiusAt(shape, point), tMin, best.distance)
			if h.hit {
				best = h
				element = e
			}
		}
	}
	return element, best
}

func radiusAt(shape *scene.Shape, vertex int) float64 {
	if len(shape.Radius) == 0 {
		return defaultRadius
	}
	return shape.Radius[vertex]
}

// intersectTriangle tests a ray against a triangle (Möller–Trumbore) and
// reports the barycentric uv of the hit
func intersectTriangle(ray core.Ray, p0, p1, p2 core.Vec3, tMin, tMax float64) elementHit {
	edge1 := p1.Subtract(p0)
	edge2 := p2.Subtract(p0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det == 0 {
		return elementHit{}
	}
	invDet := 1 / det

	tvec := ray.Origin.Subtract(p0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return elementHit{}
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return elementHit{}
	}

	t := edge2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return elementHit{}
	}

	return elementHit{uv: core.NewVec2(u, v), distance: t, hit: true}
}

// intersectLine tests a ray against a line segment rendered as a thick
// capped cylinder of linearly interpolated radius
func intersectLine(ray core.Ray, p0, p1 core.Vec3, r0, r1, tMin, tMax float64) elementHit {
	u := ray.Direction
	v := p1.Subtract(p0)
	w := ray.Origin.Subtract(p0)

	// Closest approach between the ray and the segment's support line
	a := u.Dot(u)
	b := u.Dot(v)
	c := v.Dot(v)
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b
	if det == 0 {
		return elementHit{}
	}

	t := (b*e - c*d) / det
	s := (a*e - b*d) / det
	if t < tMin || t > tMax {
		return elementHit{}
	}
	s = max(0, min(1, s))

	onRay := ray.At(t)
	onSegment := p0.Add(v.Multiply(s))
	delta := onRay.Subtract(onSegment)

	radius := r0*(1-s) + r1*s
	d2 := delta.LengthSquared()
	if d2 > radius*radius {
		return elementHit{}
	}

	return elementHit{uv: core.NewVec2(s, math.Sqrt(d2)/radius), distance: t, hit: true}
}

// intersectPoint tests a ray against a point rendered as a small sphere,
// approximated by the closest-approach distance
func intersectPoint(ray core.Ray, p core.Vec3, radius, tMin, tMax float64) elementHit {
	w := p.Subtract(ray.Origin)
	t := w.Dot(ray.Direction) / ray.Direction.Dot(ray.Direction)
	if t < tMin || t > tMax {
		return elementHit{}
	}

	delta := p.Subtract(ray.At(t))
	if delta.LengthSquared() > radius*radius {
		return elementHit{}
	}

	return elementHit{uv: core.NewVec2(0, 0), distance: t, hit: true}
}

// shapeBounds returns the shape-local bounding box including point/line radii
func shapeBounds(shape *scene.Shape) AABB {
	bounds := EmptyAABB()
	for _, p := range shape.Positions {
		bounds = bounds.AddPoint(p)
	}
	if len(shape.Lines) > 0 || len(shape.Points) > 0 {
		maxRadius := defaultRadius
		for _, r := range shape.Radius {
			maxRadius = math.Max(maxRadius, r)
		}
		bounds = bounds.Expand(maxRadius)
	}
	return bounds
}

// instanceBounds returns the world-space bounding box of an instance by
// transforming the corners of its shape-local box
func instanceBounds(instance *scene.Instance, shape *scene.Shape) AABB {
	local := shapeBounds(shape)
	bounds := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := core.NewVec3(
			pick(i&1 == 0, local.Min.X, local.Max.X),
			pick(i&2 == 0, local.Min.Y, local.Max.Y),
			pick(i&4 == 0, local.Min.Z, local.Max.Z),
		)
		bounds = bounds.AddPoint(instance.Frame.TransformPoint(corner))
	}
	return bounds
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
