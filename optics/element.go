package optics

import "fmt"

// LensElementInterface describes one physical surface of the lens system.
// All lengths are in scene units (meters); lens files use millimeters and
// are scaled once on load.
type LensElementInterface struct {
	// Signed curvature radius. Zero marks the aperture stop. Positive means
	// the sphere's center lies on the film side of the surface vertex, so a
	// positive front surface is convex toward the scene.
	CurvatureRadius float64
	// Axial gap from this surface to the next one toward the film. For the
	// rearmost element this is the rear-vertex-to-film distance.
	Thickness float64
	// Refractive index of the medium on the film side of this surface.
	// Zero and one both mean vacuum.
	Eta float64
	// Radius of the physical opening.
	ApertureRadius float64
}

// IsStop reports whether this surface is the aperture stop, which bounds
// ray radius without refracting.
func (e LensElementInterface) IsStop() bool { return e.CurvatureRadius == 0 }

// Prescription is the ordered element stack, scene-facing surface first and
// film-facing surface last. It is read-only after camera construction and
// safe for unlimited concurrent readers.
type Prescription []LensElementInterface

// NewPrescription builds a prescription from raw lens-file records: groups
// of four values in millimeters (curvature radius, thickness, refractive
// index, aperture diameter). The user-supplied aperture diameter replaces
// the stop record's diameter unless it exceeds the record's declared
// maximum, in which case it is clamped with a warning. Non-stop apertures
// are never altered.
func NewPrescription(lensData []float64, apertureDiameter float64, diag Diag) (Prescription, error) {
	if diag == nil {
		diag = DefaultDiag
	}
	if len(lensData) == 0 {
		return nil, fmt.Errorf("empty lens specification")
	}
	if len(lensData)%4 != 0 {
		return nil, fmt.Errorf("lens specification must hold multiple-of-four values, read %d", len(lensData))
	}
	elements := make(Prescription, 0, len(lensData)/4)
	for i := 0; i < len(lensData); i += 4 {
		diameter := lensData[i+3]
		if lensData[i] == 0 {
			if apertureDiameter > lensData[i+3] {
				diag.Warnf("specified aperture diameter %g is greater than maximum possible %g; clamping it",
					apertureDiameter, lensData[i+3])
			} else {
				diameter = apertureDiameter
			}
		}
		elements = append(elements, LensElementInterface{
			CurvatureRadius: lensData[i] * 0.001,
			Thickness:       lensData[i+1] * 0.001,
			Eta:             lensData[i+2],
			ApertureRadius:  diameter * 0.001 / 2,
		})
	}
	return elements, nil
}

// RearZ returns the axial distance from the rear element vertex to the film.
func (p Prescription) RearZ() float64 { return p[len(p)-1].Thickness }

// FrontZ returns the axial distance from the front element vertex to the
// film, the sum of all element thicknesses.
func (p Prescription) FrontZ() float64 {
	var z float64
	for _, e := range p {
		z += e.Thickness
	}
	return z
}

// RearElementRadius returns the aperture radius of the film-facing element.
func (p Prescription) RearElementRadius() float64 { return p[len(p)-1].ApertureRadius }
