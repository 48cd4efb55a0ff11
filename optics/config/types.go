package config

// ExperimentConfig represents the complete configuration for a lens camera
// simulation
type ExperimentConfig struct {
	Lens   Lens   `yaml:"lens"`
	Camera Camera `yaml:"camera"`
	Film   Film   `yaml:"film"`
	Pupil  Pupil  `yaml:"pupil"`
}

type Lens struct {
	// Path to the lens prescription file (groups of four values in mm)
	File string `yaml:"file"`
	// Diameter of the aperture stop in mm; clamped to the prescription's
	// declared maximum
	ApertureDiameter float64 `yaml:"aperture_diameter"`
}

type Camera struct {
	ShutterOpen  float64 `yaml:"shutter_open"`
	ShutterClose float64 `yaml:"shutter_close"`
	// Distance to the focus plane in meters
	FocusDistance float64 `yaml:"focus_distance"`
	// Use the cosine^4 weighting approximation instead of the exact
	// pupil-area weight
	SimpleWeighting bool `yaml:"simple_weighting"`
}

type Film struct {
	XResolution int `yaml:"x_resolution"`
	YResolution int `yaml:"y_resolution"`
	// Physical diagonal of the sensor in mm
	DiagonalMM float64 `yaml:"diagonal_mm"`
}

type Pupil struct {
	// Monte-Carlo samples per exit pupil bucket; 0 selects the default
	Samples int `yaml:"samples"`
	// Number of film-radius buckets; 0 selects the default
	Buckets int `yaml:"buckets"`
}
