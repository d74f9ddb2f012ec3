package scene

import (
	"fmt"
	"math"

	"github.com/tracelab/go-raytrace/pkg/core"
)

// Info describes a built-in scene for discovery by front ends
type Info struct {
	Name        string
	Description string
	Build       func() *Scene
}

// Builtin lists the procedural scenes shipped with the renderer
func Builtin() []Info {
	return []Info{
		{
			Name:        "materials",
			Description: "Row of spheres covering every material type under a sky environment",
			Build:       NewMaterialsScene,
		},
		{
			Name:        "cornell",
			Description: "Cornell box with an emissive ceiling panel",
			Build:       NewCornellScene,
		},
	}
}

// ByName builds a built-in scene by its registered name
func ByName(name string) (*Scene, error) {
	for _, info := range Builtin() {
		if info.Name == name {
			return info.Build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// NewMaterialsScene builds a showcase scene: a checkered ground plane and one
// sphere per material type, lit by a uniform sky environment.
func NewMaterialsScene() *Scene {
	s := &Scene{}

	s.Cameras = append(s.Cameras, Camera{
		Frame:  core.LookAtFrame(core.NewVec3(0, 0.9, 3.2), core.NewVec3(0, 0.3, 0), core.NewVec3(0, 1, 0)),
		Lens:   0.05,
		Film:   0.036,
		Aspect: 16.0 / 9.0,
	})

	checker := s.addTexture(makeCheckerTexture(16, core.NewVec4(0.8, 0.8, 0.8, 1), core.NewVec4(0.4, 0.4, 0.4, 1)))

	ground := s.addShape(makeQuadShape(8))
	s.addMaterialInstance(ground, core.TranslationFrame(core.Vec3{}), Material{
		Type:     MaterialMatte,
		Color:    core.NewVec3(1, 1, 1),
		Opacity:  1,
		IOR:      1.5,
		ColorTex: checker, EmissionTex: InvalidID,
	})

	sphere := s.addShape(makeSphereShape(32, 0.3))
	materials := []Material{
		{Type: MaterialMatte, Color: core.NewVec3(0.8, 0.3, 0.3)},
		{Type: MaterialReflective, Color: core.NewVec3(0.9, 0.7, 0.4), Roughness: 0.2},
		{Type: MaterialGlossy, Color: core.NewVec3(0.3, 0.6, 0.9), Roughness: 0.25},
		{Type: MaterialTransparent, Color: core.NewVec3(0.9, 0.9, 0.9)},
		{Type: MaterialRefractive, Color: core.NewVec3(1, 1, 1), IOR: 1.5},
		{Type: MaterialVolumetric, Color: core.NewVec3(0.6, 0.3, 0.7)},
	}
	for i, material := range materials {
		if material.IOR == 0 {
			material.IOR = 1.5
		}
		material.Opacity = 1
		material.ColorTex = InvalidID
		material.EmissionTex = InvalidID

		x := (float64(i) - float64(len(materials)-1)/2) * 0.75
		s.addMaterialInstance(sphere, core.TranslationFrame(core.NewVec3(x, 0.3, 0)), material)
	}

	s.Environments = append(s.Environments, Environment{
		Frame:       core.IdentityFrame(),
		Emission:    core.NewVec3(0.6, 0.7, 0.9),
		EmissionTex: InvalidID,
	})

	return s
}

// NewCornellScene builds the classic Cornell box with an emissive panel near
// the ceiling. There is no environment, so misses are transparent black.
func NewCornellScene() *Scene {
	s := &Scene{}

	s.Cameras = append(s.Cameras, Camera{
		Frame:  core.TranslationFrame(core.NewVec3(0, 1, 3.9)),
		Lens:   0.035,
		Film:   0.024,
		Aspect: 1,
	})

	white := Material{Type: MaterialMatte, Color: core.NewVec3(0.725, 0.71, 0.68), Opacity: 1, IOR: 1.5, ColorTex: InvalidID, EmissionTex: InvalidID}
	red := white
	red.Color = core.NewVec3(0.63, 0.065, 0.05)
	green := white
	green.Color = core.NewVec3(0.14, 0.45, 0.091)
	light := white
	light.Color = core.NewVec3(0, 0, 0)
	light.Emission = core.NewVec3(17, 12, 4)

	// Walls are unit quads oriented by their instance frames
	quad := s.addShape(makeQuadShape(2))

	floor := core.TranslationFrame(core.Vec3{})
	floor.Y, floor.Z = core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)
	s.addMaterialInstance(quad, floor, white)

	ceiling := core.TranslationFrame(core.NewVec3(0, 2, 0))
	ceiling.Y, ceiling.Z = core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0)
	s.addMaterialInstance(quad, ceiling, white)

	back := core.TranslationFrame(core.NewVec3(0, 1, -1))
	s.addMaterialInstance(quad, back, white)

	leftWall := core.TranslationFrame(core.NewVec3(-1, 1, 0))
	leftWall.X, leftWall.Z = core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0)
	s.addMaterialInstance(quad, leftWall, red)

	rightWall := core.TranslationFrame(core.NewVec3(1, 1, 0))
	rightWall.X, rightWall.Z = core.NewVec3(0, 0, 1), core.NewVec3(-1, 0, 0)
	s.addMaterialInstance(quad, rightWall, green)

	panel := s.addShape(makeQuadShape(0.5))
	panelFrame := core.TranslationFrame(core.NewVec3(0, 1.99, 0))
	panelFrame.Y, panelFrame.Z = core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0)
	s.addMaterialInstance(panel, panelFrame, light)

	sphere := s.addShape(makeSphereShape(32, 0.35))
	s.addMaterialInstance(sphere, core.TranslationFrame(core.NewVec3(0.4, 0.35, 0.3)), Material{
		Type: MaterialRefractive, Color: core.NewVec3(1, 1, 1), Opacity: 1, IOR: 1.5,
		ColorTex: InvalidID, EmissionTex: InvalidID,
	})

	tall := s.addShape(makeBoxShape(core.NewVec3(0.3, 0.6, 0.3)))
	tallFrame := core.TranslationFrame(core.NewVec3(-0.4, 0.6, -0.3))
	s.addMaterialInstance(tall, tallFrame, white)

	return s
}

func (s *Scene) addShape(shape Shape) int {
	s.Shapes = append(s.Shapes, shape)
	return len(s.Shapes) - 1
}

func (s *Scene) addTexture(texture Texture) int {
	s.Textures = append(s.Textures, texture)
	return len(s.Textures) - 1
}

func (s *Scene) addMaterialInstance(shape int, frame core.Frame, material Material) {
	s.Materials = append(s.Materials, material)
	s.Instances = append(s.Instances, Instance{
		Frame:    frame,
		Shape:    shape,
		Material: len(s.Materials) - 1,
	})
}

// makeQuadShape builds a size×size quad in the XY plane facing +Z
func makeQuadShape(size float64) Shape {
	h := size / 2
	return Shape{
		Positions: []core.Vec3{
			{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h},
		},
		Normals: []core.Vec3{
			{Z: 1}, {Z: 1}, {Z: 1}, {Z: 1},
		},
		Texcoords: []core.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// makeBoxShape builds an axis-aligned box with the given half extents
func makeBoxShape(halfExtents core.Vec3) Shape {
	shape := Shape{}
	// One quad per face, oriented outward
	faces := []struct{ x, y, z core.Vec3 }{
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},   // +Z
		{core.NewVec3(-1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1)}, // -Z
		{core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},  // +X
		{core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), core.NewVec3(-1, 0, 0)},  // -X
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)},  // +Y
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0)},  // -Y
	}
	for _, face := range faces {
		base := len(shape.Positions)
		normal := face.z
		extent := func(v core.Vec3) core.Vec3 {
			return core.NewVec3(v.X*halfExtents.X, v.Y*halfExtents.Y, v.Z*halfExtents.Z)
		}
		corners := []core.Vec3{
			face.x.Negate().Subtract(face.y).Add(face.z),
			face.x.Subtract(face.y).Add(face.z),
			face.x.Add(face.y).Add(face.z),
			face.x.Negate().Add(face.y).Add(face.z),
		}
		for _, corner := range corners {
			shape.Positions = append(shape.Positions, extent(corner))
			shape.Normals = append(shape.Normals, normal)
		}
		shape.Texcoords = append(shape.Texcoords,
			core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(1, 1), core.NewVec2(0, 1))
		shape.Triangles = append(shape.Triangles,
			[3]int{base, base + 1, base + 2}, [3]int{base, base + 2, base + 3})
	}
	return shape
}

// makeSphereShape builds a UV sphere with the given tessellation and radius
func makeSphereShape(steps int, radius float64) Shape {
	shape := Shape{}
	for row := 0; row <= steps; row++ {
		v := float64(row) / float64(steps)
		theta := v * math.Pi
		for col := 0; col <= steps; col++ {
			u := float64(col) / float64(steps)
			phi := u * 2 * math.Pi
			normal := core.NewVec3(
				math.Sin(theta)*math.Cos(phi),
				math.Cos(theta),
				math.Sin(theta)*math.Sin(phi),
			)
			shape.Positions = append(shape.Positions, normal.Multiply(radius))
			shape.Normals = append(shape.Normals, normal)
			shape.Texcoords = append(shape.Texcoords, core.NewVec2(u, v))
		}
	}
	stride := steps + 1
	for row := 0; row < steps; row++ {
		for col := 0; col < steps; col++ {
			a := row*stride + col
			b := a + 1
			c := a + stride
			d := c + 1
			shape.Triangles = append(shape.Triangles, [3]int{a, c, b}, [3]int{b, c, d})
		}
	}
	return shape
}

// makeCheckerTexture builds a two-tone checkerboard in linear color
func makeCheckerTexture(cells int, a, b core.Vec4) Texture {
	size := cells * 2
	texture := Texture{Width: size, Height: size, Pixels: make([]core.Vec4, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				texture.Pixels[y*size+x] = a
			} else {
				texture.Pixels[y*size+x] = b
			}
		}
	}
	return texture
}
