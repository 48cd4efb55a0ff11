package optics

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestStaticTransform(t *testing.T) {
	assert := assert.New(t)

	a := StaticTransform(pt.Translate(pt.Vector{X: 2}))
	r := ray(0, 0, 0, 0, 0, 1)

	// A static transform ignores time entirely.
	for _, time := range []float64{0, 0.5, 1, 7} {
		out := a.Ray(r, time)
		assert.Equal(2.0, out.Origin.X)
		assert.Equal(r.Direction, out.Direction)
	}
}

func TestAnimatedTransformInterpolates(t *testing.T) {
	assert := assert.New(t)

	a := NewAnimatedTransform(pt.Identity(), pt.Translate(pt.Vector{X: 1}), 0, 1)
	r := ray(0, 0, 0, 0, 0, 1)

	assert.InDelta(0.0, a.Ray(r, 0).Origin.X, 1e-12)
	assert.InDelta(0.5, a.Ray(r, 0.5).Origin.X, 1e-12)
	assert.InDelta(1.0, a.Ray(r, 1).Origin.X, 1e-12)

	// Times outside the interval clamp to the endpoints.
	assert.InDelta(0.0, a.Ray(r, -1).Origin.X, 1e-12)
	assert.InDelta(1.0, a.Ray(r, 2).Origin.X, 1e-12)

	// Translation leaves directions alone.
	assert.Equal(r.Direction, a.Ray(r, 0.5).Direction)
}

func TestAnimatedTransformIdenticalEndpoints(t *testing.T) {
	a := NewAnimatedTransform(pt.Identity(), pt.Identity(), 0, 1)
	r := ray(1, 2, 3, 0, 0, 1)
	assert.Equal(t, r, a.Ray(r, 0.25))
}
