package optics

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// quadratic solves a*t^2 + b*t + c = 0, returning the real roots in
// ascending order. The cancellation-stable form avoids subtracting nearly
// equal quantities for small roots.
func quadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	discrim := b*b - 4*a*c
	if discrim < 0 {
		return 0, 0, false
	}
	rootDiscrim := math.Sqrt(discrim)
	var q float64
	if b < 0 {
		q = -0.5 * (b - rootDiscrim)
	} else {
		q = -0.5 * (b + rootDiscrim)
	}
	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// intersectSphericalElement intersects a lens-space ray with a spherical
// surface of signed radius centered on the optical axis at zCenter. The
// root is chosen so the surface cap containing the element vertex is hit,
// not the far side of the sphere. The returned normal is unit length and
// faces against the incoming ray direction, which the refraction sign
// convention requires. A selected hit behind the ray origin is a miss.
func intersectSphericalElement(radius, zCenter float64, ray pt.Ray) (t float64, n pt.Vector, ok bool) {
	o := ray.Origin.Sub(pt.Vector{Z: zCenter})
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(o)
	c := o.Dot(o) - radius*radius
	t0, t1, ok := quadratic(a, b, c)
	if !ok {
		return 0, pt.Vector{}, false
	}
	useCloser := (ray.Direction.Z > 0) != (radius < 0)
	if useCloser {
		t = math.Min(t0, t1)
	} else {
		t = math.Max(t0, t1)
	}
	if t < 0 {
		return 0, pt.Vector{}, false
	}
	n = o.Add(ray.Direction.MulScalar(t)).Normalize()
	if n.Dot(ray.Direction) > 0 {
		n = n.Negate()
	}
	return t, n, true
}
