package renderer

import "fmt"

// ShaderType selects one of the shading algorithms
type ShaderType int

const (
	// ShaderRaytrace is the full recursive path-tracing integrator
	ShaderRaytrace ShaderType = iota
	// ShaderMatte traces every surface as diffuse regardless of material type
	ShaderMatte
	// ShaderEyelight is local shading only, no global illumination
	ShaderEyelight
	// ShaderNormal visualizes surface normals
	ShaderNormal
	// ShaderTexcoord visualizes surface texture coordinates
	ShaderTexcoord
	// ShaderColor visualizes material base colors
	ShaderColor
)

// shaderNames maps shader types to their CLI names, in declaration order
var shaderNames = []string{"raytrace", "matte", "eyelight", "normal", "texcoord", "color"}

// String returns the shader's CLI name
func (t ShaderType) String() string {
	if int(t) < 0 || int(t) >= len(shaderNames) {
		return fmt.Sprintf("shader(%d)", int(t))
	}
	return shaderNames[t]
}

// ParseShaderType resolves a shader name to its type
func ParseShaderType(name string) (ShaderType, error) {
	for i, candidate := range shaderNames {
		if candidate == name {
			return ShaderType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shader %q", name)
}

// ShaderNames lists the recognized shader names
func ShaderNames() []string {
	names := make([]string, len(shaderNames))
	copy(names, shaderNames)
	return names
}

// Params configures one render session. Immutable for the session's
// lifetime: changing it requires constructing a new State.
type Params struct {
	Resolution   int        // image resolution along the long edge, in pixels
	Shader       ShaderType // shading algorithm
	Samples      int        // target samples per pixel
	Bounces      int        // maximum bounce depth
	Camera       int        // camera index into the scene
	NoParallel   bool       // disable worker parallelism
	PreviewRatio int        // downscale ratio for interactive previews
}

// DefaultParams returns sensible default values
func DefaultParams() Params {
	return Params{
		Resolution:   720,
		Shader:       ShaderRaytrace,
		Samples:      512,
		Bounces:      4,
		Camera:       0,
		NoParallel:   false,
		PreviewRatio: 8,
	}
}
