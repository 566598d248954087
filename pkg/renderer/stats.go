package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats summarizes a finished (or snapshotted) render
type RenderStats struct {
	TotalPixels     int           // Number of pixels in the frame
	SamplesPerPixel int           // Samples accumulated per pixel
	TotalSamples    int           // Radiance estimates computed overall
	RenderTime      time.Duration // Wall-clock render duration
	MeanLuminance   float64       // Mean pixel luminance of the normalized frame
	StdDevLuminance float64       // Luminance spread, a rough convergence signal
}

// CollectStats computes summary statistics for a frame buffer
func CollectStats(fb *FrameBuffer, renderTime time.Duration) RenderStats {
	luminances := make([]float64, 0, fb.Width()*fb.Height())
	totalSamples := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			luminances = append(luminances, fb.PixelAt(x, y).Luminance())
			totalSamples += fb.SampleCount(x, y)
		}
	}

	mean, std := stat.MeanStdDev(luminances, nil)

	samplesPerPixel := 0
	if len(luminances) > 0 {
		samplesPerPixel = totalSamples / len(luminances)
	}

	return RenderStats{
		TotalPixels:     len(luminances),
		SamplesPerPixel: samplesPerPixel,
		TotalSamples:    totalSamples,
		RenderTime:      renderTime,
		MeanLuminance:   mean,
		StdDevLuminance: std,
	}
}
