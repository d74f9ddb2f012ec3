package geometry

import (
	"math"

	"github.com/tracelab/go-raytrace/pkg/core"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// EmptyAABB returns an inverted box that unions correctly with any point
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: core.NewVec3(inf, inf, inf),
		Max: core.NewVec3(-inf, -inf, -inf),
	}
}

// AddPoint grows the box to contain a point
func (aabb AABB) AddPoint(p core.Vec3) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(aabb.Min.X, p.X), math.Min(aabb.Min.Y, p.Y), math.Min(aabb.Min.Z, p.Z)),
		Max: core.NewVec3(math.Max(aabb.Max.X, p.X), math.Max(aabb.Max.Y, p.Y), math.Max(aabb.Max.Z, p.Z)),
	}
}

// Expand grows the box by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	e := core.NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(e), Max: aabb.Max.Add(e)}
}

// Union returns a box that bounds both this box and another
func (aabb AABB) Union(other AABB) AABB {
	return aabb.AddPoint(other.Min).AddPoint(other.Max)
}

// Center returns the center point of the box
func (aabb AABB) Center() core.Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Max.Subtract(aabb.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects the box within [tMin, tMax] using the slab
// method
func (aabb AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	mins := [3]float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z}
	maxs := [3]float64{aabb.Max.X, aabb.Max.Y, aabb.Max.Z}
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	directions := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		// Rays parallel to a slab miss unless the origin lies inside it
		if math.Abs(directions[axis]) < 1e-12 {
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return false
			}
			continue
		}

		invDirection := 1.0 / directions[axis]
		t1 := (mins[axis] - origins[axis]) * invDirection
		t2 := (maxs[axis] - origins[axis]) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
