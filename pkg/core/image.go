package core

import "math"

// Image is a 2D buffer of 4-channel float colors. Linear indicates whether
// pixel values are linear radiance or sRGB-encoded.
type Image struct {
	Width, Height int
	Linear        bool
	Pixels        []Vec4
}

// NewImage creates a zeroed image of the given size
func NewImage(width, height int, linear bool) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Linear: linear,
		Pixels: make([]Vec4, width*height),
	}
}

// At returns the pixel at (x, y)
func (img *Image) At(x, y int) Vec4 {
	return img.Pixels[y*img.Width+x]
}

// Set writes the pixel at (x, y)
func (img *Image) Set(x, y int, pixel Vec4) {
	img.Pixels[y*img.Width+x] = pixel
}

// SRGBToLinear converts one sRGB-encoded channel to linear
func SRGBToLinear(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// LinearToSRGB converts one linear channel to sRGB encoding
func LinearToSRGB(linear float64) float64 {
	if linear <= 0.0031308 {
		return linear * 12.92
	}
	return 1.055*math.Pow(linear, 1/2.4) - 0.055
}

// SRGBToLinearVec converts an sRGB-encoded color to linear, leaving alpha as is
func SRGBToLinearVec(srgb Vec4) Vec4 {
	return Vec4{
		X: SRGBToLinear(srgb.X),
		Y: SRGBToLinear(srgb.Y),
		Z: SRGBToLinear(srgb.Z),
		W: srgb.W,
	}
}

// LinearToSRGBVec converts a linear color to sRGB encoding, leaving alpha as is
func LinearToSRGBVec(linear Vec4) Vec4 {
	return Vec4{
		X: LinearToSRGB(linear.X),
		Y: LinearToSRGB(linear.Y),
		Z: LinearToSRGB(linear.Z),
		W: linear.W,
	}
}
