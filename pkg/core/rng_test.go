package core

import "testing"

func TestMakePixelRNGs_Deterministic(t *testing.T) {
	first := MakePixelRNGs(16)
	second := MakePixelRNGs(16)

	for i := range first {
		for j := 0; j < 8; j++ {
			a := first[i].Float64()
			b := second[i].Float64()
			if a != b {
				t.Fatalf("Pixel %d sample %d differs: %f vs %f", i, j, a, b)
			}
		}
	}
}

func TestMakePixelRNGs_Distinct(t *testing.T) {
	rngs := MakePixelRNGs(64)

	// Neighbouring pixels must not share a stream
	seen := make(map[float64]int)
	for i, rng := range rngs {
		v := rng.Float64()
		if prev, ok := seen[v]; ok {
			t.Errorf("Pixels %d and %d drew the same first sample %f", prev, i, v)
		}
		seen[v] = i
	}
}

func TestMakePixelRNGs_PrefixStable(t *testing.T) {
	// Growing the pixel count must not reshuffle earlier streams
	small := MakePixelRNGs(4)
	large := MakePixelRNGs(16)

	for i := range small {
		if small[i].Float64() != large[i].Float64() {
			t.Errorf("Pixel %d stream changed with allocation size", i)
		}
	}
}
