package optics

import (
	"github.com/fogleman/pt/pt"
)

// Camera space puts the scene at positive z with the film plane at the
// origin; lens space flips z so elements sit at negative z. The transform
// is its own inverse.
var cameraToLens = pt.Scale(pt.Vector{X: 1, Y: 1, Z: -1})

// TraceFromFilm pushes a camera-space ray from the film side through every
// element out toward the scene, refracting at each glass interface. The
// boolean result is false whenever the ray is vignetted by an aperture,
// totally internally reflected, or cannot reach the stop; these are
// expected per-ray outcomes, not errors. Both trace functions are pure and
// deterministic.
func (p Prescription) TraceFromFilm(rCamera pt.Ray) (pt.Ray, bool) {
	elementZ := 0.0
	rLens := cameraToLens.MulRay(rCamera)
	for i := len(p) - 1; i >= 0; i-- {
		element := p[i]
		elementZ -= element.Thickness

		var t float64
		var n pt.Vector
		if element.IsStop() {
			// A previously refracted ray can point back toward the film
			// plane; it can never reach the stop.
			if rLens.Direction.Z >= 0 {
				return pt.Ray{}, false
			}
			t = (elementZ - rLens.Origin.Z) / rLens.Direction.Z
		} else {
			var ok bool
			t, n, ok = intersectSphericalElement(element.CurvatureRadius, elementZ+element.CurvatureRadius, rLens)
			if !ok {
				return pt.Ray{}, false
			}
		}

		pHit := rLens.Position(t)
		if pHit.X*pHit.X+pHit.Y*pHit.Y > element.ApertureRadius*element.ApertureRadius {
			return pt.Ray{}, false
		}
		rLens.Origin = pHit

		if !element.IsStop() {
			etaI := element.Eta
			etaT := 1.0
			if i > 0 && p[i-1].Eta != 0 {
				etaT = p[i-1].Eta
			}
			w := n.Refract(rLens.Direction.Normalize(), etaI, etaT)
			if w == (pt.Vector{}) {
				// Total internal reflection.
				return pt.Ray{}, false
			}
			rLens.Direction = w
		}
	}
	return cameraToLens.MulRay(rLens), true
}

// TraceFromScene mirrors TraceFromFilm for rays entering the front of the
// lens system, walking elements front to rear and swapping the refractive
// index roles accordingly.
func (p Prescription) TraceFromScene(rCamera pt.Ray) (pt.Ray, bool) {
	elementZ := -p.FrontZ()
	rLens := cameraToLens.MulRay(rCamera)
	for i := 0; i < len(p); i++ {
		element := p[i]

		var t float64
		var n pt.Vector
		if element.IsStop() {
			t = (elementZ - rLens.Origin.Z) / rLens.Direction.Z
			if t < 0 {
				return pt.Ray{}, false
			}
		} else {
			var ok bool
			t, n, ok = intersectSphericalElement(element.CurvatureRadius, elementZ+element.CurvatureRadius, rLens)
			if !ok {
				return pt.Ray{}, false
			}
		}

		pHit := rLens.Position(t)
		if pHit.X*pHit.X+pHit.Y*pHit.Y > element.ApertureRadius*element.ApertureRadius {
			return pt.Ray{}, false
		}
		rLens.Origin = pHit

		if !element.IsStop() {
			etaI := 1.0
			if i > 0 && p[i-1].Eta != 0 {
				etaI = p[i-1].Eta
			}
			etaT := 1.0
			if element.Eta != 0 {
				etaT = element.Eta
			}
			w := n.Refract(rLens.Direction.Normalize(), etaI, etaT)
			if w == (pt.Vector{}) {
				return pt.Ray{}, false
			}
			rLens.Direction = w
		}
		elementZ += element.Thickness
	}
	return cameraToLens.MulRay(rLens), true
}
