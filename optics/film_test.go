package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilmPhysicalExtent(t *testing.T) {
	assert := assert.New(t)

	f := &Film{XResolution: 600, YResolution: 400, Diagonal: 0.035}
	b := f.PhysicalExtent()

	// Centered on the axis with a 3:2 aspect and the configured diagonal.
	d := b.Diagonal()
	assert.InDelta(0.035, math.Hypot(d.X, d.Y), 1e-12)
	assert.InDelta(1.5, d.X/d.Y, 1e-12)
	assert.InDelta(-b.Min.X, b.Max.X, 1e-12)
	assert.InDelta(-b.Min.Y, b.Max.Y, 1e-12)
}
