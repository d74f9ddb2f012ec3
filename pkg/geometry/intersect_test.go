package geometry

import (
	"math"
	"testing"

	"github.com/tracelab/go-raytrace/pkg/core"
)

func TestIntersectTriangle(t *testing.T) {
	p0 := core.NewVec3(0, 0, 0)
	p1 := core.NewVec3(1, 0, 0)
	p2 := core.NewVec3(0, 1, 0)

	tests := []struct {
		name       string
		ray        core.Ray
		hit        bool
		distance   float64
		uv         core.Vec2
		checkUV    bool
		checkDist  bool
	}{
		{
			name:      "Hit near first vertex",
			ray:       core.NewRay(core.NewVec3(0.1, 0.1, 1), core.NewVec3(0, 0, -1)),
			hit:       true,
			distance:  1,
			uv:        core.NewVec2(0.1, 0.1),
			checkUV:   true,
			checkDist: true,
		},
		{
			name: "Miss outside the edge",
			ray:  core.NewRay(core.NewVec3(0.9, 0.9, 1), core.NewVec3(0, 0, -1)),
			hit:  false,
		},
		{
			name: "Miss behind the origin",
			ray:  core.NewRay(core.NewVec3(0.1, 0.1, -1), core.NewVec3(0, 0, -1)),
			hit:  false,
		},
		{
			name: "Parallel ray misses",
			ray:  core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)),
			hit:  false,
		},
		{
			name:      "Barycentric at second vertex",
			ray:       core.NewRay(core.NewVec3(1, 0, 1), core.NewVec3(0, 0, -1)),
			hit:       true,
			uv:        core.NewVec2(1, 0),
			checkUV:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := intersectTriangle(tt.ray, p0, p1, p2, 1e-4, 1e12)

			if h.hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, h.hit)
			}
			const tolerance = 1e-9
			if tt.checkDist && math.Abs(h.distance-tt.distance) > tolerance {
				t.Errorf("Expected distance %f, got %f", tt.distance, h.distance)
			}
			if tt.checkUV {
				if math.Abs(h.uv.X-tt.uv.X) > tolerance || math.Abs(h.uv.Y-tt.uv.Y) > tolerance {
					t.Errorf("Expected uv %v, got %v", tt.uv, h.uv)
				}
			}
		})
	}
}

func TestIntersectLine(t *testing.T) {
	p0 := core.NewVec3(-1, 0, 0)
	p1 := core.NewVec3(1, 0, 0)

	// Ray crossing the segment midpoint
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	h := intersectLine(ray, p0, p1, 0.1, 0.1, 1e-4, 1e12)
	if !h.hit {
		t.Fatal("Expected hit through segment midpoint")
	}
	if math.Abs(h.distance-2) > 1e-9 {
		t.Errorf("Expected distance 2, got %f", h.distance)
	}
	if math.Abs(h.uv.X-0.5) > 1e-9 {
		t.Errorf("Expected midpoint parameter 0.5, got %f", h.uv.X)
	}
	if math.Abs(h.uv.Y) > 1e-9 {
		t.Errorf("Expected zero radial offset, got %f", h.uv.Y)
	}

	// Ray passing beyond the radius misses
	miss := core.NewRay(core.NewVec3(0, 0.2, 2), core.NewVec3(0, 0, -1))
	if intersectLine(miss, p0, p1, 0.1, 0.1, 1e-4, 1e12).hit {
		t.Error("Expected miss outside the radius")
	}

	// Ray near an endpoint clamps the segment parameter
	end := core.NewRay(core.NewVec3(1.05, 0, 2), core.NewVec3(0, 0, -1))
	he := intersectLine(end, p0, p1, 0.1, 0.1, 1e-4, 1e12)
	if !he.hit {
		t.Fatal("Expected hit near the endpoint cap")
	}
	if math.Abs(he.uv.X-1) > 1e-9 {
		t.Errorf("Expected clamped parameter 1, got %f", he.uv.X)
	}
}

func TestIntersectPoint(t *testing.T) {
	p := core.NewVec3(0, 0, -3)

	hit := intersectPoint(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), p, 0.1, 1e-4, 1e12)
	if !hit.hit {
		t.Fatal("Expected hit through the point")
	}
	if math.Abs(hit.distance-3) > 1e-9 {
		t.Errorf("Expected distance 3, got %f", hit.distance)
	}

	offAxis := intersectPoint(core.NewRay(core.NewVec3(0.2, 0, 0), core.NewVec3(0, 0, -1)), p, 0.1, 1e-4, 1e12)
	if offAxis.hit {
		t.Error("Expected miss outside the radius")
	}

	behind := intersectPoint(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)), p, 0.1, 1e-4, 1e12)
	if behind.hit {
		t.Error("Expected miss for point behind the ray")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := AABB{Min: core.NewVec3(-1, -1, -1), Max: core.NewVec3(1, 1, 1)}

	tests := []struct {
		name string
		ray  core.Ray
		hit  bool
	}{
		{
			name: "Through the center",
			ray:  core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			hit:  true,
		},
		{
			name: "From inside",
			ray:  core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			hit:  true,
		},
		{
			name: "Misses to the side",
			ray:  core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1)),
			hit:  false,
		},
		{
			name: "Points away",
			ray:  core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)),
			hit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 1e-4, 1e12); got != tt.hit {
				t.Errorf("Expected hit=%v, got %v", tt.hit, got)
			}
		})
	}
}
