package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

// testCamera builds a camera around a prescription without running focus
// calibration, for exercising the pupil estimator in isolation.
func testCamera(t *testing.T, lensData []float64, apertureDiameter float64, samples int) *RealisticCamera {
	p, err := NewPrescription(lensData, apertureDiameter, NopDiag)
	require.NoError(t, err)
	return &RealisticCamera{
		film:         &Film{XResolution: 600, YResolution: 400, Diagonal: 0.035},
		elements:     p,
		pupilSamples: samples,
		diag:         NopDiag,
	}
}

func TestBoundExitPupilStopOnly(t *testing.T) {
	assert := assert.New(t)

	// 2mm stop 1mm in front of the film: the sampling plane coincides with
	// the stop, so a sample exits exactly when it lands inside the opening.
	c := testCamera(t, []float64{0, 1, 0, 2}, 2, 1024)

	b := c.BoundExitPupil(0, 0.001)
	r := c.elements.RearElementRadius()
	// The bound covers most of the stop disk and never exceeds the
	// enlarged projection.
	assert.Greater(b.Max.X, 0.8*r)
	assert.Less(b.Max.X, 1.5*r)
	assert.Greater(b.Max.Y, 0.8*r)
	assert.Less(b.Min.X, -0.8*r)
	assert.Greater(b.Area(), 0.0)
}

func TestBoundExitPupilRadialSymmetry(t *testing.T) {
	// Reflecting the film segment about the optical axis must not change
	// the bound.
	c := testCamera(t, []float64{0, 1, 0, 2}, 2, 1024)

	pos := c.BoundExitPupil(0, 0.001)
	neg := c.BoundExitPupil(0, -0.001)
	assert.Equal(t, pos, neg)
}

func TestBoundExitPupilDegenerate(t *testing.T) {
	assert := assert.New(t)

	// A closed front stop blocks every sample; the estimator falls back to
	// the full enlarged rear projection, unexpanded.
	c := testCamera(t, []float64{0, 1, 0, 0, 1000, 1, 1, 2}, 0, 512)
	diag := &recordingDiag{}
	c.diag = diag

	b := c.BoundExitPupil(0.0005, 0.001)
	r := c.elements.RearElementRadius()
	want := Bounds2{
		Min: r2.Vec{X: -1.5 * r, Y: -1.5 * r},
		Max: r2.Vec{X: 1.5 * r, Y: 1.5 * r},
	}
	assert.Equal(want, b)
	assert.Len(diag.warnings, 1)
}

func TestSampleExitPupil(t *testing.T) {
	assert := assert.New(t)

	c := testCamera(t, []float64{0, 1, 0, 2}, 2, 512)
	c.exitPupilBounds = []Bounds2{{
		Min: r2.Vec{X: -0.001, Y: -0.001},
		Max: r2.Vec{X: 0.001, Y: 0.001},
	}}

	// Center variate maps to the bound center on the rear plane.
	p, area := c.SampleExitPupil(r2.Vec{X: 0.002}, r2.Vec{X: 0.5, Y: 0.5})
	assert.InDelta(0.0, p.X, 1e-12)
	assert.InDelta(0.0, p.Y, 1e-12)
	assert.InDelta(c.elements.RearZ(), p.Z, 1e-12)
	assert.InDelta(4e-6, area, 1e-12)

	// A film point on the +y axis rotates the sampled offset by 90
	// degrees.
	p, _ = c.SampleExitPupil(r2.Vec{Y: 0.002}, r2.Vec{X: 1, Y: 0.5})
	assert.InDelta(0.0, p.X, 1e-12)
	assert.InDelta(0.001, p.Y, 1e-12)

	// On-axis film points use the bound unrotated.
	p, _ = c.SampleExitPupil(r2.Vec{}, r2.Vec{X: 1, Y: 1})
	assert.InDelta(0.001, p.X, 1e-12)
	assert.InDelta(0.001, p.Y, 1e-12)
}
