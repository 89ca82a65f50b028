package renderer

import "gonum.org/v1/gonum/stat"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	TotalPixels     int     // Number of pixels rendered
	TotalSamples    int     // Number of camera rays traced
	SamplesPerPixel int     // Samples taken per pixel
	MeanLuminance   float64 // Mean pixel luminance before gamma correction
	StdDevLuminance float64 // Spread of pixel luminance across the image
}

// newRenderStats summarizes the per-pixel luminances of a finished pass
func newRenderStats(luminances []float64, samplesPerPixel int) RenderStats {
	mean, stddev := stat.MeanStdDev(luminances, nil)
	return RenderStats{
		TotalPixels:     len(luminances),
		TotalSamples:    len(luminances) * samplesPerPixel,
		SamplesPerPixel: samplesPerPixel,
		MeanLuminance:   mean,
		StdDevLuminance: stddev,
	}
}
