package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds2 is an axis-aligned rectangle on a sampling plane.
type Bounds2 struct {
	Min, Max r2.Vec
}

// EmptyBounds2 returns the degenerate bound that unions correctly with any
// point. Its zero-sample state contains nothing.
func EmptyBounds2() Bounds2 {
	return Bounds2{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Union grows the bound to include p.
func (b Bounds2) Union(p r2.Vec) Bounds2 {
	return Bounds2{
		Min: r2.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: r2.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Inside reports whether p lies within the bound, boundary included.
func (b Bounds2) Inside(p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand pads the bound by delta on every side.
func (b Bounds2) Expand(delta float64) Bounds2 {
	return Bounds2{
		Min: r2.Vec{X: b.Min.X - delta, Y: b.Min.Y - delta},
		Max: r2.Vec{X: b.Max.X + delta, Y: b.Max.Y + delta},
	}
}

// Diagonal returns the vector from the minimum to the maximum corner.
func (b Bounds2) Diagonal() r2.Vec {
	return r2.Vec{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y}
}

// Area returns the bound's area.
func (b Bounds2) Area() float64 {
	d := b.Diagonal()
	return d.X * d.Y
}

// Lerp maps a point in [0,1]^2 onto the bound.
func (b Bounds2) Lerp(t r2.Vec) r2.Vec {
	return r2.Vec{
		X: lerp(t.X, b.Min.X, b.Max.X),
		Y: lerp(t.Y, b.Min.Y, b.Max.Y),
	}
}

func lerp(t, a, b float64) float64 { return (1-t)*a + t*b }
