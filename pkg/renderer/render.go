// Package renderer drives the sampling loop: it partitions the requested
// samples across parallel whole-frame renders and accumulates the results.
package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/dmarsh/go-pathtrace/log"
	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/integrator"
	"github.com/dmarsh/go-pathtrace/pkg/scene"
)

var logger = log.New("renderer")

// ProgressFunc is invoked synchronously on the scheduling goroutine after
// each sample is merged into the output buffer. It must not block for long
// or it stalls dispatch of the next batch.
type ProgressFunc func(output *FrameBuffer, samplesDone, samplesTotal int)

// Render estimates the image by accumulating params.SamplesPerPixel
// whole-frame samples. Samples are rendered in batches of at most
// params.MaxWorkers concurrent goroutines; each goroutine owns a private
// deterministic RNG per pixel and a private frame buffer, so the hot path is
// lock-free. Batches are joined before merging, and merges happen in sample
// order, so identical inputs produce identical output buffers.
//
// The context is checked between batches only; a render returns early with
// ctx.Err() and the samples accumulated so far.
func Render(ctx context.Context, camera *Camera, s *scene.Scene, params core.RenderParams, onProgress ProgressFunc) (*FrameBuffer, error) {
	maxWorkers := params.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pt := integrator.NewPathTracer(params)
	output := NewFrameBuffer(params.Width, params.Height)
	total := params.SamplesPerPixel

	logger.Noticef("rendering %dx%d, %d samples/pixel, %d workers",
		params.Width, params.Height, total, maxWorkers)

	seed := params.Seed
	samplesDone := 0
	for sample := 0; sample < total; sample += maxWorkers {
		if err := ctx.Err(); err != nil {
			logger.Warningf("render cancelled after %d/%d samples", samplesDone, total)
			return output, err
		}

		batch := min(total, sample+maxWorkers) - sample
		results := make([]*FrameBuffer, batch)

		var wg sync.WaitGroup
		for i := 0; i < batch; i++ {
			wg.Add(1)
			go func(slot int, sampleSeed int64) {
				defer wg.Done()
				results[slot] = renderWholeScreen(camera, s, pt, sampleSeed, params)
			}(i, seed)
			seed++
		}
		wg.Wait()

		for _, frame := range results {
			output.Merge(frame)
			samplesDone++
			logger.Infof("merged sample %d/%d (%.1f%%)",
				samplesDone, total, 100*float64(samplesDone)/float64(total))
			if onProgress != nil {
				onProgress(output, samplesDone, total)
			}
		}
	}

	return output, nil
}

// renderWholeScreen produces one full-frame radiance estimate: a single
// camera ray and radiance evaluation per pixel. The per-pixel RNG seed is
// derived from the image dimensions, the sample seed and the pixel position,
// so no two concurrent samples and no two pixels share a stream.
func renderWholeScreen(camera *Camera, s *scene.Scene, pt *integrator.PathTracer, seed int64, params core.RenderParams) *FrameBuffer {
	frame := NewFrameBuffer(params.Width, params.Height)
	for y := 0; y < params.Height; y++ {
		for x := 0; x < params.Width; x++ {
			rng := rand.New(rand.NewSource(seed*int64(params.Width*params.Height) + int64(y*params.Width+x)))
			ray := camera.RandomRay(x, y, rng)
			frame.AddSample(x, y, pt.Radiance(s, rng, ray, 0))
		}
	}
	return frame
}
