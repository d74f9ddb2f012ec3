package core

import (
	"math"
	"testing"
)

func TestImage_AtSet(t *testing.T) {
	img := NewImage(3, 2, true)
	if len(img.Pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(img.Pixels))
	}

	pixel := NewVec4(0.1, 0.2, 0.3, 1)
	img.Set(2, 1, pixel)
	if img.At(2, 1) != pixel {
		t.Errorf("Expected %v, got %v", pixel, img.At(2, 1))
	}
	if img.At(0, 0) != (Vec4{}) {
		t.Error("Expected untouched pixels to stay zero")
	}
}

func TestSRGBConversion(t *testing.T) {
	// Round trip across both segments of the curve
	for _, v := range []float64{0, 0.001, 0.01, 0.08, 0.5, 1} {
		back := SRGBToLinear(LinearToSRGB(v))
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("Round trip of %f gave %f", v, back)
		}
	}

	// Anchors of the standard curve
	if LinearToSRGB(0) != 0 || math.Abs(LinearToSRGB(1)-1) > 1e-9 {
		t.Error("Expected the curve to fix 0 and 1")
	}
	if math.Abs(SRGBToLinear(0.5)-0.2140411) > 1e-6 {
		t.Errorf("Expected sRGB 0.5 near 0.214 linear, got %f", SRGBToLinear(0.5))
	}

	// Alpha passes through untouched
	converted := SRGBToLinearVec(NewVec4(0.5, 0.5, 0.5, 0.7))
	if converted.W != 0.7 {
		t.Errorf("Expected alpha preserved, got %f", converted.W)
	}
}
