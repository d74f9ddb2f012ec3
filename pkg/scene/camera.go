package scene

import (
	"github.com/tracelab/go-raytrace/pkg/core"
)

// EvalCamera generates the ray leaving the camera through the film point at
// sensor coordinates uv, each in [0,1). The film point sits at
// ((0.5-u)·film, (v-0.5)·film/aspect, lens) in the camera frame; the ray
// starts at the camera origin and heads away from the film, so the camera
// looks down its frame's -Z axis.
func EvalCamera(camera *Camera, uv core.Vec2) core.Ray {
	film := core.NewVec3(
		(0.5-uv.X)*camera.Film,
		(uv.Y-0.5)*camera.Film/camera.Aspect,
		camera.Lens,
	)
	q := camera.Frame.TransformPoint(film)
	origin := camera.Frame.O
	return core.NewRay(origin, q.Subtract(origin).Normalize().Negate())
}
