package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Film describes the image sensor: pixel resolution plus the physical
// diagonal of the active area in meters.
type Film struct {
	XResolution, YResolution int
	Diagonal                 float64
}

// PhysicalExtent returns the physical bounds of the film, centered on the
// optical axis, derived from the diagonal and the pixel aspect ratio.
func (f *Film) PhysicalExtent() Bounds2 {
	aspect := float64(f.YResolution) / float64(f.XResolution)
	x := math.Sqrt(f.Diagonal * f.Diagonal / (1 + aspect*aspect))
	y := aspect * x
	return Bounds2{
		Min: r2.Vec{X: -x / 2, Y: -y / 2},
		Max: r2.Vec{X: x / 2, Y: y / 2},
	}
}
