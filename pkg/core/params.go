package core

// RenderParams contains the rendering configuration shared by the camera,
// the integrator and the scheduler.
type RenderParams struct {
	Width               int   // Image width in pixels
	Height              int   // Image height in pixels
	SamplesPerPixel     int   // Total samples accumulated per pixel
	MaxDepth            int   // Maximum diffuse bounce depth
	FirstBounceUSamples int   // Stratification factor (u) for the primary bounce
	FirstBounceVSamples int   // Stratification factor (v) for the primary bounce
	Preview             bool  // Short-circuit to direct material color
	MaxWorkers          int   // Parallel sample renders (0 = all CPUs)
	Seed                int64 // Base seed for deterministic per-pixel RNG streams
}

// DefaultRenderParams returns sensible default values
func DefaultRenderParams() RenderParams {
	return RenderParams{
		Width:               1920,
		Height:              1080,
		SamplesPerPixel:     40,
		MaxDepth:            5,
		FirstBounceUSamples: 4,
		FirstBounceVSamples: 4,
		Preview:             false,
		MaxWorkers:          0,
		Seed:                0,
	}
}
