package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validatePositiveInt(field string, value int) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegativeInt(field string, value int) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

// Validate checks the configuration for structural problems, collecting
// every error rather than stopping at the first.
func (c *ExperimentConfig) Validate() []ValidationError {
	var errs []ValidationError
	if c.Lens.File == "" {
		errs = append(errs, ValidationError{
			Field:   "lens.file",
			Message: "no lens description file supplied",
		})
	}
	errs = append(errs, validatePositive("lens.aperture_diameter", c.Lens.ApertureDiameter)...)
	errs = append(errs, validatePositive("camera.focus_distance", c.Camera.FocusDistance)...)
	if c.Camera.ShutterClose < c.Camera.ShutterOpen {
		errs = append(errs, ValidationError{
			Field:   "camera.shutter_close",
			Message: "must not precede shutter_open",
		})
	}
	errs = append(errs, validatePositiveInt("film.x_resolution", c.Film.XResolution)...)
	errs = append(errs, validatePositiveInt("film.y_resolution", c.Film.YResolution)...)
	errs = append(errs, validatePositive("film.diagonal_mm", c.Film.DiagonalMM)...)
	errs = append(errs, validateNonNegativeInt("pupil.samples", c.Pupil.Samples)...)
	errs = append(errs, validateNonNegativeInt("pupil.buckets", c.Pupil.Buckets)...)
	return errs
}

// FormatValidationErrors formats validation errors grouped by config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var order []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			b.WriteString(fmt.Sprintf("  %s\n", err.Error()))
		}
	}
	return b.String()
}
