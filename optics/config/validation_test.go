package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *ExperimentConfig {
	return &ExperimentConfig{
		Lens:   Lens{File: "biconvex.dat", ApertureDiameter: 15},
		Camera: Camera{ShutterClose: 1, FocusDistance: 1},
		Film:   Film{XResolution: 600, YResolution: 400, DiagonalMM: 35},
		Pupil:  Pupil{Samples: 4096, Buckets: 8},
	}
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(validConfig().Validate())

	// Zero pupil settings mean "use the defaults" and are accepted.
	cfg := validConfig()
	cfg.Pupil = Pupil{}
	assert.Empty(cfg.Validate())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	assert := assert.New(t)

	cfg := validConfig()
	cfg.Lens.File = ""
	cfg.Lens.ApertureDiameter = 0
	cfg.Camera.ShutterOpen = 2
	cfg.Film.XResolution = -1

	errs := cfg.Validate()
	require.Len(t, errs, 4)

	fields := make([]string, len(errs))
	for i, err := range errs {
		fields[i] = err.Field
	}
	assert.Contains(fields, "lens.file")
	assert.Contains(fields, "lens.aperture_diameter")
	assert.Contains(fields, "camera.shutter_close")
	assert.Contains(fields, "film.x_resolution")
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(FormatValidationErrors(nil))

	cfg := validConfig()
	cfg.Lens.File = ""
	cfg.Film.DiagonalMM = 0
	out := FormatValidationErrors(cfg.Validate())

	assert.Contains(out, "LENS:")
	assert.Contains(out, "FILM:")
	assert.Contains(out, "lens.file: no lens description file supplied")
	assert.Contains(out, "film.diagonal_mm: must be positive")
	// Sections follow config order.
	assert.Less(strings.Index(out, "LENS:"), strings.Index(out, "FILM:"))
}
