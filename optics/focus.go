package optics

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

// Bracket expansion around the thick-lens seed cannot run forever on a lens
// stack whose focus probes all fail.
const maxBracketSteps = 1 << 12

// computeCardinalPoints finds the principal plane and focal point for one
// paraxial probe. The focal point is the axial position where the outgoing
// ray crosses the optical axis; the principal plane is where a line at the
// incoming ray's transverse height meets the outgoing ray. Both are
// camera-space axial positions.
func computeCardinalPoints(rIn, rOut pt.Ray) (pz, fz float64) {
	tf := -rOut.Origin.X / rOut.Direction.X
	fz = -rOut.Position(tf).Z
	tp := (rIn.Origin.X - rOut.Origin.X) / rOut.Direction.X
	pz = -rOut.Position(tp).Z
	return pz, fz
}

// ThickLensApproximation reduces the element stack to two principal planes
// and two focal points by tracing an axis-parallel probe through each side
// of the lens system. Index 0 holds the scene-side cardinal points, index 1
// the film side. A probe that fails to traverse the stack is a fatal
// configuration error.
func (c *RealisticCamera) ThickLensApproximation() (pz, fz [2]float64, err error) {
	// Probe height proportional to the film diagonal keeps the ray paraxial.
	x := 0.001 * c.film.Diagonal

	rScene := pt.Ray{
		Origin:    pt.Vector{X: x, Z: c.elements.FrontZ() + 1},
		Direction: pt.Vector{Z: -1},
	}
	rFilm, ok := c.elements.TraceFromScene(rScene)
	if !ok {
		return pz, fz, fmt.Errorf("unable to trace ray from scene to film for thick lens approximation; is the aperture stop extremely small?")
	}
	pz[0], fz[0] = computeCardinalPoints(rScene, rFilm)

	rFilm = pt.Ray{
		Origin:    pt.Vector{X: x, Z: c.elements.RearZ() - 1},
		Direction: pt.Vector{Z: 1},
	}
	rScene, ok = c.elements.TraceFromFilm(rFilm)
	if !ok {
		return pz, fz, fmt.Errorf("unable to trace ray from film to scene for thick lens approximation; is the aperture stop extremely small?")
	}
	pz[1], fz[1] = computeCardinalPoints(rFilm, rScene)
	return pz, fz, nil
}

// FocalLength returns the effective focal length of the lens system,
// fz[0]-pz[0] of the thick lens approximation.
func (c *RealisticCamera) FocalLength() (float64, error) {
	pz, fz, err := c.ThickLensApproximation()
	if err != nil {
		return 0, err
	}
	return fz[0] - pz[0], nil
}

// FocusThickLens solves the thick-lens imaging equation in closed form for
// the film distance that focuses at focusDistance.
func (c *RealisticCamera) FocusThickLens(focusDistance float64) (float64, error) {
	pz, fz, err := c.ThickLensApproximation()
	if err != nil {
		return 0, err
	}
	f := fz[0] - pz[0]
	z := -focusDistance
	coeff := (pz[1] - z - pz[0]) * (pz[1] - z - 4*f - pz[0])
	if coeff <= 0 {
		return 0, fmt.Errorf("focus distance %g is too short for this lens configuration", focusDistance)
	}
	delta := 0.5 * (pz[1] - z + pz[0] - math.Sqrt(coeff))
	return c.elements.RearZ() + delta, nil
}

// FocusDistance reports the distance at which the lens system focuses with
// the film filmDistance behind the rear element, by probing a ray from the
// film axis through a small transverse offset on the rear element.
// Decreasing offset scale factors find a probe that clears very small
// apertures. It returns +Inf when no probe traverses the stack or the probe
// crosses the axis behind the camera.
func (c *RealisticCamera) FocusDistance(filmDistance float64) float64 {
	bounds := c.BoundExitPupil(0, 0.001*c.film.Diagonal)

	scaleFactors := [...]float64{0.1, 0.01, 0.001}
	var ray pt.Ray
	var lu float64
	found := false
	for _, scale := range scaleFactors {
		lu = scale * bounds.Max.X
		probe := pt.Ray{
			Origin:    pt.Vector{Z: c.elements.RearZ() - filmDistance},
			Direction: pt.Vector{X: lu, Z: filmDistance},
		}
		if out, ok := c.elements.TraceFromFilm(probe); ok {
			ray = out
			found = true
			break
		}
	}
	if !found {
		c.diag.Warnf("focus ray at lens position (%g, 0) did not make it through the lenses with film distance %g",
			lu, filmDistance)
		return math.Inf(1)
	}

	tFocus := -ray.Origin.X / ray.Direction.X
	zFocus := ray.Position(tFocus).Z
	if zFocus < 0 {
		return math.Inf(1)
	}
	return zFocus
}

// FocusBinarySearch refines the closed-form thick-lens estimate: it expands
// a bracket around the seed until the achieved focus distances straddle the
// target, bisects a fixed number of iterations, and returns the resulting
// film-to-rear-element distance.
func (c *RealisticCamera) FocusBinarySearch(focusDistance float64) (float64, error) {
	seed, err := c.FocusThickLens(focusDistance)
	if err != nil {
		return 0, err
	}

	// Moving the film away from the lens focuses nearer, so grow the lower
	// bound and shrink the upper bound until they straddle the target.
	lower, upper := seed, seed
	steps := 0
	for c.FocusDistance(lower) > focusDistance {
		lower *= 1.005
		if steps++; steps > maxBracketSteps {
			return 0, fmt.Errorf("unable to bracket focus distance %g from below", focusDistance)
		}
	}
	steps = 0
	for c.FocusDistance(upper) < focusDistance {
		upper /= 1.005
		if steps++; steps > maxBracketSteps {
			return 0, fmt.Errorf("unable to bracket focus distance %g from above", focusDistance)
		}
	}

	for i := 0; i < 20; i++ {
		mid := 0.5 * (lower + upper)
		if c.FocusDistance(mid) < focusDistance {
			lower = mid
		} else {
			upper = mid
		}
	}
	return 0.5 * (lower + upper), nil
}
