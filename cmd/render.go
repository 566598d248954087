package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/dmarsh/go-pathtrace/log"
	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/renderer"
)

var logger = log.New("cmd")

// Output gamma for PNG encoding.
const displayGamma = 2.2

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}

// RenderFrame renders a still frame of the selected scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	params := core.RenderParams{
		Width:               ctx.Int("width"),
		Height:              ctx.Int("height"),
		SamplesPerPixel:     ctx.Int("spp"),
		MaxDepth:            ctx.Int("max-depth"),
		FirstBounceUSamples: ctx.Int("first-bounce-samples"),
		FirstBounceVSamples: ctx.Int("first-bounce-samples"),
		Preview:             ctx.Bool("preview"),
		MaxWorkers:          ctx.Int("num-cpus"),
		Seed:                int64(ctx.Int("seed")),
	}
	if err := validateParams(params); err != nil {
		return err
	}

	sc, camera, err := buildScene(ctx.String("scene"), ctx.String("obj"), params.Width, params.Height)
	if err != nil {
		return err
	}
	logger.Noticef("scene %q: %d primitives", ctx.String("scene"), len(sc.Primitives))

	outFile := ctx.String("out")
	saveEvery := ctx.Duration("save-every")

	// Periodically snapshot the accumulated frame so long renders can be
	// inspected (and survive interruption). A failed save only logs; the
	// next snapshot retries with the same buffer.
	nextSave := time.Now().Add(saveEvery)
	onProgress := func(output *renderer.FrameBuffer, samplesDone, samplesTotal int) {
		if saveEvery <= 0 || time.Now().Before(nextSave) {
			return
		}
		nextSave = time.Now().Add(saveEvery)
		if err := savePNG(output, outFile); err != nil {
			logger.Warningf("snapshot save failed: %v", err)
		} else {
			logger.Infof("snapshot saved to %s (%d/%d samples)", outFile, samplesDone, samplesTotal)
		}
	}

	start := time.Now()
	output, err := renderer.Render(context.Background(), camera, sc, params, onProgress)
	if err != nil {
		return err
	}

	if err := savePNG(output, outFile); err != nil {
		return fmt.Errorf("saving %s: %w", outFile, err)
	}
	logger.Noticef("frame saved to %s", outFile)

	displayRenderStats(renderer.CollectStats(output, time.Since(start)))
	return nil
}

// validateParams rejects parameter combinations the renderer cannot work
// with. Zero stratification samples in particular would divide every pixel
// estimate by zero.
func validateParams(params core.RenderParams) error {
	if params.Width <= 0 || params.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", params.Width, params.Height)
	}
	if params.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", params.SamplesPerPixel)
	}
	if params.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", params.MaxDepth)
	}
	if params.FirstBounceUSamples <= 0 || params.FirstBounceVSamples <= 0 {
		return fmt.Errorf("first bounce samples must be positive, got %dx%d",
			params.FirstBounceUSamples, params.FirstBounceVSamples)
	}
	return nil
}

// savePNG encodes the buffer's current pixels to a PNG file
func savePNG(fb *renderer.FrameBuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage(displayGamma))
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	buf.WriteString("\nFrame statistics:\n")
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Pixels", "Samples/pixel", "Total samples", "Mean luminance", "Luminance stddev", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.4f", stats.MeanLuminance),
		fmt.Sprintf("%.4f", stats.StdDevLuminance),
		stats.RenderTime.Round(time.Millisecond).String(),
	})
	table.Render()
	logger.Notice(buf.String())
}
