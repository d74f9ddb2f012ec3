package scene

import (
	"github.com/tracelab/go-raytrace/pkg/core"
)

// InvalidID marks an unset reference to a texture or other scene element
const InvalidID = -1

// Camera is a pinhole camera model: a rigid frame in world space plus film
// size, lens distance and aspect ratio. Immutable during a render pass.
type Camera struct {
	Frame  core.Frame
	Lens   float64 // distance from the lens to the film plane
	Film   float64 // film size along the long edge
	Aspect float64 // width / height
}

// MaterialType selects one of the supported shading models
type MaterialType int

const (
	MaterialMatte MaterialType = iota
	MaterialReflective
	MaterialTransparent
	MaterialGlossy
	MaterialRefractive
	MaterialVolumetric
)

// Material describes how a surface emits and scatters light. Texture
// references index into the scene's texture list, InvalidID when unset.
type Material struct {
	Type        MaterialType
	Color       core.Vec3
	Emission    core.Vec3
	Roughness   float64
	IOR         float64
	Opacity     float64
	ColorTex    int
	EmissionTex int
}

// Shape holds indexed geometry. Exactly one of Points, Lines or Triangles is
// normally populated. Radius applies to points and lines.
type Shape struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	Texcoords []core.Vec2
	Radius    []float64

	Points    []int
	Lines     [][2]int
	Triangles [][3]int
}

// Instance places a shape with a material at a rigid transform
type Instance struct {
	Frame    core.Frame
	Shape    int
	Material int
}

// Texture is a 2D grid of 4-channel colors. SRGB indicates the pixels are
// sRGB-encoded and need conversion when sampled as linear radiance.
type Texture struct {
	Width, Height int
	SRGB          bool
	Pixels        []core.Vec4
}

// Environment is an infinitely distant light, optionally direction-mapped
// through an equirectangular emission texture
type Environment struct {
	Frame       core.Frame
	Emission    core.Vec3
	EmissionTex int
}

// Scene is a read-only store of everything renderable, indexed by integer ids
type Scene struct {
	Cameras      []Camera
	Instances    []Instance
	Shapes       []Shape
	Materials    []Material
	Textures     []Texture
	Environments []Environment
}

// DefaultMaterial returns a neutral matte material with sane defaults
func DefaultMaterial() Material {
	return Material{
		Type:        MaterialMatte,
		Color:       core.NewVec3(0.8, 0.8, 0.8),
		IOR:         1.5,
		Opacity:     1,
		ColorTex:    InvalidID,
		EmissionTex: InvalidID,
	}
}
