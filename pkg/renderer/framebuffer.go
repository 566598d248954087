package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dmarsh/go-pathtrace/pkg/core"
)

// SampledPixel accumulates radiance estimates for one pixel
type SampledPixel struct {
	Sum     core.Vec3 // Running sum of sample colors
	Samples int       // Number of samples contributed
}

// AddSample adds a radiance estimate to the pixel
func (sp *SampledPixel) AddSample(c core.Vec3) {
	sp.Sum = sp.Sum.Add(c)
	sp.Samples++
}

// Color returns the mean of the accumulated samples
func (sp *SampledPixel) Color() core.Vec3 {
	if sp.Samples == 0 {
		return core.Vec3{}
	}
	return sp.Sum.Multiply(1.0 / float64(sp.Samples))
}

// FrameBuffer holds the running per-pixel radiance sums for a render.
// Buffers are merged pixel-wise, so partial results can be combined in any
// order.
type FrameBuffer struct {
	width, height int
	pixels        []SampledPixel
}

// NewFrameBuffer creates an empty buffer of the given dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]SampledPixel, width*height),
	}
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// AddSample accumulates a radiance estimate for pixel (x, y)
func (fb *FrameBuffer) AddSample(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x].AddSample(c)
}

// PixelAt returns the normalized color for pixel (x, y): the accumulated sum
// divided by the samples contributed. Components are non-negative but not
// clamped; consumers clamp and gamma-correct before encoding.
func (fb *FrameBuffer) PixelAt(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x].Color()
}

// SampleCount returns the number of samples contributed to pixel (x, y)
func (fb *FrameBuffer) SampleCount(x, y int) int {
	return fb.pixels[y*fb.width+x].Samples
}

// Merge adds every pixel of other into fb. Merging is commutative and
// associative. The buffers must have identical dimensions: a mismatch is a
// scheduler bug, not a runtime condition, so it panics.
func (fb *FrameBuffer) Merge(other *FrameBuffer) {
	if fb.width != other.width || fb.height != other.height {
		panic(fmt.Sprintf("framebuffer merge dimension mismatch: %dx%d vs %dx%d",
			fb.width, fb.height, other.width, other.height))
	}
	for i := range fb.pixels {
		fb.pixels[i].Sum = fb.pixels[i].Sum.Add(other.pixels[i].Sum)
		fb.pixels[i].Samples += other.pixels[i].Samples
	}
}

// ToImage converts the buffer to an 8-bit RGBA image, clamping and applying
// gamma correction
func (fb *FrameBuffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.PixelAt(x, y), gamma))
		}
	}
	return img
}

// vec3ToColor converts a radiance value to RGBA with clamping and gamma
// correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.GammaCorrect(gamma)
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
