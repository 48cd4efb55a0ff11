package optics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnsupported reports a camera capability this variant does not provide.
var ErrUnsupported = errors.New("capability not supported by this camera")

// CameraSample carries everything needed to generate one primary ray.
type CameraSample struct {
	// FilmX, FilmY are raster-space coordinates on the film.
	FilmX, FilmY float64
	// Lens is a 2D variate in [0,1)^2 used to sample the exit pupil.
	Lens r2.Vec
	// Time is a variate in [0,1) mapped onto the shutter interval.
	Time float64
}

// RayDifferential is a primary ray together with the rays for the
// neighboring pixels in x and y.
type RayDifferential struct {
	Ray                      pt.Ray
	RxOrigin, RyOrigin       pt.Vector
	RxDirection, RyDirection pt.Vector
	HasDifferentials         bool
}

// Camera is the capability set shared by all camera variants: primary ray
// generation with differentials, importance evaluation for bidirectional
// techniques, and access to the film. This package implements the
// realistic (physical lens stack) variant.
type Camera interface {
	// GenerateRay produces a world-space primary ray and its radiometric
	// weight. ok is false when the sample is vignetted by the lens system,
	// a normal zero-contribution outcome.
	GenerateRay(sample CameraSample) (ray pt.Ray, weight float64, ok bool)
	GenerateRayDifferential(sample CameraSample) (rd RayDifferential, weight float64, ok bool)
	// We evaluates emitted importance for a world-space ray, with the
	// raster position it corresponds to.
	We(ray pt.Ray) (weight float64, raster r2.Vec, err error)
	Film() *Film
	Shutter() (open, close float64)
}

// RealisticCameraOptions configures construction of a RealisticCamera.
type RealisticCameraOptions struct {
	CameraToWorld             AnimatedTransform
	ShutterOpen, ShutterClose float64
	// ApertureDiameter in millimeters, applied to the stop record and
	// clamped to the record's declared maximum.
	ApertureDiameter float64
	// FocusDistance in meters from the film.
	FocusDistance float64
	// SimpleWeighting selects the cosine^4 approximation over the exact
	// pupil-area weight.
	SimpleWeighting bool
	// LensData holds the raw prescription records in millimeters:
	// front-to-rear groups of curvature radius, thickness, refractive
	// index and aperture diameter.
	LensData []float64
	Film     *Film
	// PupilSamples is the Monte-Carlo sample count per exit pupil bucket.
	// Defaults to 1<<20.
	PupilSamples int
	// PupilBuckets is the number of film-radius buckets. Defaults to 64.
	PupilBuckets int
	// Diag receives warnings; defaults to DefaultDiag.
	Diag Diag
}

// RealisticCamera simulates light propagation through a stack of spherical
// lens elements and an aperture stop between the film plane and the scene.
// Construction calibrates the film-to-rear-element distance for the
// requested focus distance and precomputes the per-radius exit pupil
// bounds; afterwards the camera is immutable and safe for unlimited
// concurrent readers.
type RealisticCamera struct {
	cameraToWorld             AnimatedTransform
	shutterOpen, shutterClose float64
	simpleWeighting           bool
	film                      *Film
	elements                  Prescription
	pupilSamples              int
	exitPupilBounds           []Bounds2
	diag                      Diag
}

var _ Camera = (*RealisticCamera)(nil)

// NewRealisticCamera builds and calibrates a realistic camera. Malformed
// prescriptions and unfocusable lens stacks are fatal configuration errors;
// there is no degraded mode.
func NewRealisticCamera(opts RealisticCameraOptions) (*RealisticCamera, error) {
	if opts.Film == nil {
		return nil, errors.New("realistic camera requires a film")
	}
	if opts.ShutterClose < opts.ShutterOpen {
		return nil, fmt.Errorf("shutter close time %g precedes shutter open time %g", opts.ShutterClose, opts.ShutterOpen)
	}
	diag := opts.Diag
	if diag == nil {
		diag = DefaultDiag
	}
	elements, err := NewPrescription(opts.LensData, opts.ApertureDiameter, diag)
	if err != nil {
		return nil, err
	}
	cameraToWorld := opts.CameraToWorld
	if cameraToWorld == (AnimatedTransform{}) {
		cameraToWorld = StaticTransform(pt.Identity())
	}
	pupilSamples := opts.PupilSamples
	if pupilSamples <= 0 {
		pupilSamples = 1 << 20
	}
	pupilBuckets := opts.PupilBuckets
	if pupilBuckets <= 0 {
		pupilBuckets = 64
	}

	c := &RealisticCamera{
		cameraToWorld:   cameraToWorld,
		shutterOpen:     opts.ShutterOpen,
		shutterClose:    opts.ShutterClose,
		simpleWeighting: opts.SimpleWeighting,
		film:            opts.Film,
		elements:        elements,
		pupilSamples:    pupilSamples,
		diag:            diag,
	}

	// Fix the film-to-rear-element distance for the requested focus.
	filmDistance, err := c.FocusBinarySearch(opts.FocusDistance)
	if err != nil {
		return nil, fmt.Errorf("focusing lens system: %w", err)
	}
	c.elements[len(c.elements)-1].Thickness = filmDistance

	// Populate every film-radius bucket eagerly; the buckets are
	// independent and the camera must not mutate after construction.
	c.exitPupilBounds = make([]Bounds2, pupilBuckets)
	var wg sync.WaitGroup
	for i := 0; i < pupilBuckets; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r0 := float64(i) / float64(pupilBuckets) * c.film.Diagonal / 2
			r1 := float64(i+1) / float64(pupilBuckets) * c.film.Diagonal / 2
			c.exitPupilBounds[i] = c.BoundExitPupil(r0, r1)
		}(i)
	}
	wg.Wait()

	return c, nil
}

// Elements exposes the calibrated prescription. Callers must not modify it.
func (c *RealisticCamera) Elements() Prescription { return c.elements }

// Film returns the camera's film.
func (c *RealisticCamera) Film() *Film { return c.film }

// Shutter returns the shutter open and close times.
func (c *RealisticCamera) Shutter() (open, close float64) {
	return c.shutterOpen, c.shutterClose
}

// GenerateRay traces a primary ray for the film sample through the lens
// stack and into world space. The weight is the radiometric contribution of
// the sampled pupil point; ok is false for vignetted samples.
func (c *RealisticCamera) GenerateRay(sample CameraSample) (pt.Ray, float64, bool) {
	s := r2.Vec{
		X: sample.FilmX / float64(c.film.XResolution),
		Y: sample.FilmY / float64(c.film.YResolution),
	}
	pFilm2 := c.film.PhysicalExtent().Lerp(s)
	pFilm := pt.Vector{X: -pFilm2.X, Y: pFilm2.Y}

	pRear, pupilArea := c.SampleExitPupil(r2.Vec{X: pFilm.X, Y: pFilm.Y}, sample.Lens)
	rFilm := pt.Ray{Origin: pFilm, Direction: pRear.Sub(pFilm)}
	ray, ok := c.elements.TraceFromFilm(rFilm)
	if !ok {
		return pt.Ray{}, 0, false
	}

	time := lerp(sample.Time, c.shutterOpen, c.shutterClose)
	ray = c.cameraToWorld.Ray(ray, time)
	ray.Direction = ray.Direction.Normalize()

	cosTheta := rFilm.Direction.Normalize().Z
	cos4Theta := (cosTheta * cosTheta) * (cosTheta * cosTheta)
	if c.simpleWeighting {
		return ray, cos4Theta * pupilArea / c.exitPupilBounds[0].Area(), true
	}
	rearZ := c.elements.RearZ()
	return ray, (c.shutterClose - c.shutterOpen) * cos4Theta * pupilArea / (rearZ * rearZ), true
}

// GenerateRayDifferential generates the primary ray plus rays offset by one
// pixel in x and y. A vignetted primary sample fails; vignetted offset rays
// only clear HasDifferentials.
func (c *RealisticCamera) GenerateRayDifferential(sample CameraSample) (RayDifferential, float64, bool) {
	ray, weight, ok := c.GenerateRay(sample)
	if !ok {
		return RayDifferential{}, 0, false
	}
	rd := RayDifferential{Ray: ray}

	sx := sample
	sx.FilmX++
	rx, _, okx := c.GenerateRay(sx)

	sy := sample
	sy.FilmY++
	ry, _, oky := c.GenerateRay(sy)

	if okx && oky {
		rd.RxOrigin, rd.RxDirection = rx.Origin, rx.Direction
		rd.RyOrigin, rd.RyDirection = ry.Origin, ry.Direction
		rd.HasDifferentials = true
	}
	return rd, weight, true
}

// We is not supported by the realistic camera variant.
func (c *RealisticCamera) We(pt.Ray) (float64, r2.Vec, error) {
	return 0, r2.Vec{}, ErrUnsupported
}
