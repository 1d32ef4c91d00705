package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	Hits         int           // Pixels whose ray converged onto a surface
	Misses       int           // Pixels that fell back to the background
	TotalSteps   int           // March iterations over all pixels
	MaxSteps     int           // Most iterations used by a single pixel
	AverageSteps float64       // Average march iterations per pixel
	Elapsed      time.Duration // Wall time of the whole render
}

// addPixel records the march result of one pixel
func (rs *RenderStats) addPixel(result MarchResult) {
	rs.TotalPixels++
	if result.Hit {
		rs.Hits++
	} else {
		rs.Misses++
	}
	rs.TotalSteps += result.Steps
	if result.Steps > rs.MaxSteps {
		rs.MaxSteps = result.Steps
	}
}

// Merge folds other into rs and refreshes the average
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.Hits += other.Hits
	rs.Misses += other.Misses
	rs.TotalSteps += other.TotalSteps
	if other.MaxSteps > rs.MaxSteps {
		rs.MaxSteps = other.MaxSteps
	}
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
}
