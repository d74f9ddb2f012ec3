package geometry

import (
	"sort"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// Intersection is the result of a ray query against the scene: which instance
// and element were hit and the element-local parametric coordinates. It
// carries no ownership of scene data.
type Intersection struct {
	Hit      bool
	Instance int
	Element  int
	UV       core.Vec2
	Distance float64
}

// Ray epsilon and horizon for scene queries
const (
	rayEpsilon = 1e-4
	rayFar     = 1e12
)

// BVH is a bounding volume hierarchy over scene instances. Built once per
// scene before rendering and read-only afterwards, so it is safe to share
// across workers.
type BVH struct {
	root *bvhNode
}

// bvhNode is one node of the hierarchy; leaves store instance indices
type bvhNode struct {
	bounds    AABB
	left      *bvhNode
	right     *bvhNode
	instances []int // nil for internal nodes
}

// Leaf threshold: nodes with this many or fewer instances become leaves
const leafThreshold = 4

// BuildBVH constructs the acceleration structure for a scene
func BuildBVH(s *scene.Scene) *BVH {
	if len(s.Instances) == 0 {
		return &BVH{}
	}

	indices := make([]int, len(s.Instances))
	bounds := make([]AABB, len(s.Instances))
	for i := range s.Instances {
		indices[i] = i
		bounds[i] = instanceBounds(&s.Instances[i], &s.Shapes[s.Instances[i].Shape])
	}

	return &BVH{root: buildNode(indices, bounds)}
}

// buildNode recursively splits instances at the median of the longest axis
func buildNode(indices []int, bounds []AABB) *bvhNode {
	nodeBounds := EmptyAABB()
	for _, i := range indices {
		nodeBounds = nodeBounds.Union(bounds[i])
	}

	if len(indices) <= leafThreshold {
		return &bvhNode{bounds: nodeBounds, instances: indices}
	}

	axis := nodeBounds.LongestAxis()
	sort.Slice(indices, func(a, b int) bool {
		return axisValue(bounds[indices[a]].Center(), axis) < axisValue(bounds[indices[b]].Center(), axis)
	})

	mid := len(indices) / 2
	return &bvhNode{
		bounds: nodeBounds,
		left:   buildNode(indices[:mid], bounds),
		right:  buildNode(indices[mid:], bounds),
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Intersect finds the closest intersection of a world-space ray with the
// scene. A miss is a valid outcome, reported through the Hit flag.
func (bvh *BVH) Intersect(s *scene.Scene, ray core.Ray) Intersection {
	intersection := Intersection{Distance: rayFar}
	if bvh.root != nil {
		bvh.intersectNode(bvh.root, s, ray, &intersection)
	}
	return intersection
}

func (bvh *BVH) intersectNode(node *bvhNode, s *scene.Scene, ray core.Ray, closest *Intersection) {
	if !node.bounds.Hit(ray, rayEpsilon, closest.Distance) {
		return
	}

	if node.instances != nil {
		for _, index := range node.instances {
			bvh.intersectInstance(index, s, ray, closest)
		}
		return
	}

	bvh.intersectNode(node.left, s, ray, closest)
	bvh.intersectNode(node.right, s, ray, closest)
}

// intersectInstance transforms the ray into instance-local space and tests
// the shape's elements. Frames are rigid, so local distances equal world
// distances.
func (bvh *BVH) intersectInstance(index int, s *scene.Scene, ray core.Ray, closest *Intersection) {
	instance := &s.Instances[index]
	shape := &s.Shapes[instance.Shape]

	local := instance.Frame.Inverse().TransformRay(ray)
	element, hit := intersectShape(shape, local, rayEpsilon, closest.Distance)
	if !hit.hit {
		return
	}

	*closest = Intersection{
		Hit:      true,
		Instance: index,
		Element:  element,
		UV:       hit.uv,
		Distance: hit.distance,
	}
}
