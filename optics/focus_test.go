package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// biconvexCamera builds a symmetric biconvex singlet (20mm surface radii,
// 3mm center thickness, n=1.5) focused at 1m. The reduced pupil sampling
// keeps construction fast.
func biconvexCamera(t *testing.T) *RealisticCamera {
	c, err := NewRealisticCamera(RealisticCameraOptions{
		ShutterOpen:      0,
		ShutterClose:     1,
		ApertureDiameter: 15,
		FocusDistance:    1.0,
		SimpleWeighting:  true,
		LensData: []float64{
			20, 3, 1.5, 15,
			-20, 21, 1, 15,
		},
		Film:         &Film{XResolution: 600, YResolution: 400, Diagonal: 0.035},
		PupilSamples: 4096,
		PupilBuckets: 8,
		Diag:         NopDiag,
	})
	require.NoError(t, err)
	return c
}

func TestFocalLength(t *testing.T) {
	c := biconvexCamera(t)

	// Lensmaker's equation for the thick biconvex singlet gives 20.51mm.
	f, err := c.FocalLength()
	require.NoError(t, err)
	assert.InDelta(t, 0.020513, f, 0.0005)
}

func TestThickLensApproximation(t *testing.T) {
	assert := assert.New(t)
	c := biconvexCamera(t)

	pz, fz, err := c.ThickLensApproximation()
	require.NoError(t, err)

	// Symmetric lens: both principal planes sit inside the glass, about a
	// millimeter in from each vertex, and the focal lengths agree.
	assert.InDelta(fz[0]-pz[0], fz[1]-pz[1], 1e-4)
	assert.Less(math.Abs(pz[0]-pz[1]), 0.003)
}

func TestFocusCalibration(t *testing.T) {
	assert := assert.New(t)
	c := biconvexCamera(t)

	// Construction fixed the film distance; the lens system must actually
	// focus at the requested 1m.
	rearZ := c.Elements().RearZ()
	assert.InDelta(1.0, c.FocusDistance(rearZ), 0.05)

	// Pulling the film further from the lens focuses nearer.
	assert.Less(c.FocusDistance(rearZ*1.1), c.FocusDistance(rearZ))
}

func TestFocusThickLensTooShort(t *testing.T) {
	c := biconvexCamera(t)

	// 30mm is inside the lens system's minimum focusable distance.
	_, err := c.FocusThickLens(0.03)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestUnfocusableLensIsFatal(t *testing.T) {
	// A micron-scale aperture blocks the paraxial focus probes; the
	// constructor must fail rather than produce an uncalibrated camera.
	_, err := NewRealisticCamera(RealisticCameraOptions{
		ShutterClose:     1,
		ApertureDiameter: 0.001,
		FocusDistance:    1.0,
		LensData: []float64{
			0, 1, 0, 0.001,
			0, 20, 0, 10,
		},
		Film:         &Film{XResolution: 600, YResolution: 400, Diagonal: 0.035},
		PupilSamples: 256,
		PupilBuckets: 2,
		Diag:         NopDiag,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "focusing lens system")
}
