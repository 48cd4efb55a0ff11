package optics

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"
)

// BoundExitPupil estimates the rectangle on the rear sampling plane through
// which rays starting on the film segment [filmX0, filmX1] can exit the
// lens system. The segment lies on the x axis; the lens stack is
// rotationally symmetric, so the film radius alone determines the bound.
// Candidate rear points come from a low-discrepancy sequence over the rear
// element's projection enlarged by 1.5x; a candidate already inside the
// running bound counts as exiting without re-tracing. When no sample exits,
// the full enlarged projection is returned unexpanded as a conservative
// fallback.
func (c *RealisticCamera) BoundExitPupil(filmX0, filmX1 float64) Bounds2 {
	pupilBounds := EmptyBounds2()
	samples := c.pupilSamples
	exitingRays := 0

	rearRadius := c.elements.RearElementRadius()
	projRearBounds := Bounds2{
		Min: r2.Vec{X: -1.5 * rearRadius, Y: -1.5 * rearRadius},
		Max: r2.Vec{X: 1.5 * rearRadius, Y: 1.5 * rearRadius},
	}
	rearZ := c.elements.RearZ()

	for i := 0; i < samples; i++ {
		pFilm := pt.Vector{X: lerp((float64(i)+0.5)/float64(samples), filmX0, filmX1)}
		u := r2.Vec{X: radicalInverse(2, uint64(i)), Y: radicalInverse(3, uint64(i))}
		pRear := pt.Vector{
			X: lerp(u.X, projRearBounds.Min.X, projRearBounds.Max.X),
			Y: lerp(u.Y, projRearBounds.Min.Y, projRearBounds.Max.Y),
			Z: rearZ,
		}

		if !pupilBounds.Inside(r2.Vec{X: pRear.X, Y: pRear.Y}) {
			if _, ok := c.elements.TraceFromFilm(pt.Ray{Origin: pFilm, Direction: pRear.Sub(pFilm)}); !ok {
				continue
			}
		}
		pupilBounds = pupilBounds.Union(r2.Vec{X: pRear.X, Y: pRear.Y})
		exitingRays++
	}

	if exitingRays == 0 {
		c.diag.Warnf("unable to find exit pupil in x = [%g, %g] on film", filmX0, filmX1)
		return projRearBounds
	}

	// Compensate for the finite sample spacing.
	d := projRearBounds.Diagonal()
	return pupilBounds.Expand(2 * math.Hypot(d.X, d.Y) / math.Sqrt(float64(samples)))
}

// SampleExitPupil maps a 2D variate onto the rear sampling plane inside the
// pupil bound for the film point's radius bucket, returning the rear-plane
// point and the sampled bound's area for radiometric weighting. The bounds
// were computed along the +x film axis, so the sampled point is rotated by
// the film point's azimuth.
func (c *RealisticCamera) SampleExitPupil(pFilm, lensSample r2.Vec) (pt.Vector, float64) {
	rFilm := math.Hypot(pFilm.X, pFilm.Y)
	index := int(rFilm / (c.film.Diagonal / 2) * float64(len(c.exitPupilBounds)))
	if index >= len(c.exitPupilBounds) {
		index = len(c.exitPupilBounds) - 1
	}
	bounds := c.exitPupilBounds[index]

	pLens := bounds.Lerp(lensSample)

	sinTheta, cosTheta := 0.0, 1.0
	if rFilm != 0 {
		sinTheta = pFilm.Y / rFilm
		cosTheta = pFilm.X / rFilm
	}
	return pt.Vector{
		X: cosTheta*pLens.X - sinTheta*pLens.Y,
		Y: sinTheta*pLens.X + cosTheta*pLens.Y,
		Z: c.elements.RearZ(),
	}, bounds.Area()
}

// ExitPupilBound returns the precomputed bound for a bucket index; the
// number of buckets is fixed at construction.
func (c *RealisticCamera) ExitPupilBound(index int) Bounds2 {
	return c.exitPupilBounds[index]
}

// PupilBuckets returns the number of precomputed film-radius buckets.
func (c *RealisticCamera) PupilBuckets() int { return len(c.exitPupilBounds) }

// RenderExitPupil writes a PNG visualizing which rear-plane points pass
// light from the film point (sx, sy): white where a film-to-lens probe
// traverses the stack, gray outside the rear element, black where the probe
// is blocked.
func (c *RealisticCamera) RenderExitPupil(sx, sy float64, size int, filename string) error {
	pFilm := pt.Vector{X: sx, Y: sy}
	rearRadius := c.elements.RearElementRadius()
	rearZ := c.elements.RearZ()

	dc := gg.NewContext(size, size)
	for y := 0; y < size; y++ {
		fy := rearRadius - 2*rearRadius*(float64(y)+0.5)/float64(size)
		for x := 0; x < size; x++ {
			fx := -rearRadius + 2*rearRadius*(float64(x)+0.5)/float64(size)
			if fx*fx+fy*fy > rearRadius*rearRadius {
				dc.SetRGB(0.25, 0.25, 0.25)
			} else {
				pRear := pt.Vector{X: fx, Y: fy, Z: rearZ}
				if _, ok := c.elements.TraceFromFilm(pt.Ray{Origin: pFilm, Direction: pRear.Sub(pFilm)}); ok {
					dc.SetRGB(1, 1, 1)
				} else {
					dc.SetRGB(0, 0, 0)
				}
			}
			dc.SetPixel(x, y)
		}
	}
	return dc.SavePNG(filename)
}
