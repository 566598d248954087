package renderer

import (
	"math"
	"math/rand"

	"github.com/dmarsh/go-pathtrace/pkg/core"
)

// CameraConfig describes a look-at camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // World up vector
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens radius for depth of field (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = distance to LookAt)
}

// Camera maps pixel coordinates to world-space rays, with an optional
// thin-lens depth-of-field model.
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Camera basis vectors spanning the lens plane
	lensRadius      float64
	width, height   int
}

// NewCamera creates a camera from the given configuration. The image plane
// is placed at the focus distance so that points on the focus plane stay
// sharp regardless of where on the lens a ray originates.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	aspectRatio := float64(config.Width) / float64(config.Height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookAt.Subtract(config.Center).Length()
	}

	viewportHeight := 2.0 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDist)
	vertical := v.Multiply(viewportHeight * focusDist)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture,
		width:           config.Width,
		height:          config.Height,
	}
}

// RandomRay generates a ray through pixel (x, y), jittered within the pixel
// for antialiasing. With a non-zero aperture the origin is perturbed on the
// lens disk and re-aimed through the focus plane. All randomness comes from
// rng, so concurrent callers must each hold their own generator.
func (c *Camera) RandomRay(x, y int, rng *rand.Rand) core.Ray {
	s := (float64(x) + rng.Float64()) / float64(c.width)
	t := 1.0 - (float64(y)+rng.Float64())/float64(c.height)

	origin := c.center
	if c.lensRadius > 0 {
		rd := core.DiskSample(c.lensRadius, rng.Float64(), rng.Float64())
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin))
}
