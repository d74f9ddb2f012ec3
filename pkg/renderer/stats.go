package renderer

// RenderStats summarizes the accumulation state for reporting
type RenderStats struct {
	Width, Height int
	TotalPixels   int
	Samples       int     // completed full-frame passes
	TotalHits     int     // per-pixel samples actually taken
	Coverage      float64 // average hits per pixel
	AvgLuminance  float64 // mean luminance of the current estimate
}

// Stats computes statistics from the current accumulation state
func (st *State) Stats() RenderStats {
	stats := RenderStats{
		Width:       st.Width,
		Height:      st.Height,
		TotalPixels: st.Width * st.Height,
		Samples:     st.Samples,
	}
	for _, hits := range st.Hits {
		stats.TotalHits += hits
	}
	if stats.TotalPixels > 0 {
		stats.Coverage = float64(stats.TotalHits) / float64(stats.TotalPixels)
	}
	if stats.TotalPixels > 0 && st.Samples > 0 {
		var sum float64
		for _, accum := range st.Accum {
			sum += accum.XYZ().Luminance()
		}
		stats.AvgLuminance = sum / float64(st.Samples) / float64(stats.TotalPixels)
	}
	return stats
}
