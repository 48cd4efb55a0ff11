package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"

	"github.com/jdginn/go-realistic-camera/optics"
	"github.com/jdginn/go-realistic-camera/optics/config"
)

var CLI struct {
	Inspect     InspectCmd     `cmd:"" help:"Print the lens prescription, cardinal points and focused film distance"`
	RenderPupil RenderPupilCmd `cmd:"" help:"Render the exit pupil for a film point to a PNG"`
	FocusCurve  FocusCurveCmd  `cmd:"" help:"Plot focus distance against film distance"`
}

func buildCamera(configPath string) (*optics.RealisticCamera, *config.ExperimentConfig, error) {
	cfg, err := config.LoadFromFile(configPath, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
	})
	if err != nil {
		return nil, nil, err
	}
	lensData, err := config.ReadLensFile(cfg.Lens.File)
	if err != nil {
		return nil, nil, err
	}
	camera, err := optics.NewRealisticCamera(optics.RealisticCameraOptions{
		ShutterOpen:      cfg.Camera.ShutterOpen,
		ShutterClose:     cfg.Camera.ShutterClose,
		ApertureDiameter: cfg.Lens.ApertureDiameter,
		FocusDistance:    cfg.Camera.FocusDistance,
		SimpleWeighting:  cfg.Camera.SimpleWeighting,
		LensData:         lensData,
		Film: &optics.Film{
			XResolution: cfg.Film.XResolution,
			YResolution: cfg.Film.YResolution,
			Diagonal:    cfg.Film.DiagonalMM * 0.001,
		},
		PupilSamples: cfg.Pupil.Samples,
		PupilBuckets: cfg.Pupil.Buckets,
	})
	if err != nil {
		return nil, nil, err
	}
	return camera, cfg, nil
}

type InspectCmd struct {
	Config string `arg:"" name:"config" help:"experiment config file"`
}

func (c InspectCmd) Run() error {
	camera, cfg, err := buildCamera(c.Config)
	if err != nil {
		return err
	}

	fmt.Printf("lens file: %s\n", cfg.Lens.File)
	for i, e := range camera.Elements() {
		kind := "surface"
		if e.IsStop() {
			kind = "stop"
		}
		fmt.Printf("  [%d] %-7s radius %9.6f m  thickness %9.6f m  eta %5.3f  aperture radius %9.6f m\n",
			i, kind, e.CurvatureRadius, e.Thickness, e.Eta, e.ApertureRadius)
	}

	pz, fz, err := camera.ThickLensApproximation()
	if err != nil {
		return err
	}
	fmt.Printf("cardinal points: p' = %g f' = %g, p = %g f = %g\n", pz[0], fz[0], pz[1], fz[1])
	fmt.Printf("effective focal length: %g m\n", fz[0]-pz[0])
	fmt.Printf("film distance for focus at %g m: %g m\n", cfg.Camera.FocusDistance, camera.Elements().RearZ())
	fmt.Printf("achieved focus distance: %g m\n", camera.FocusDistance(camera.Elements().RearZ()))
	return nil
}

type RenderPupilCmd struct {
	Config string  `arg:"" name:"config" help:"experiment config file"`
	X      float64 `name:"x" default:"0" help:"film point x in meters"`
	Y      float64 `name:"y" default:"0" help:"film point y in meters"`
	Size   int     `name:"size" default:"512" help:"image size in pixels"`
	Out    string  `name:"out" default:"pupil.png" help:"output PNG path"`
}

func (c RenderPupilCmd) Run() error {
	camera, _, err := buildCamera(c.Config)
	if err != nil {
		return err
	}
	return camera.RenderExitPupil(c.X, c.Y, c.Size, c.Out)
}

type FocusCurveCmd struct {
	Config  string `arg:"" name:"config" help:"experiment config file"`
	Samples int    `name:"samples" default:"64" help:"film distances to probe"`
	Out     string `name:"out" default:"focus_curve.png" help:"output PNG path"`
}

func (c FocusCurveCmd) Run() error {
	camera, _, err := buildCamera(c.Config)
	if err != nil {
		return err
	}

	// Sweep around the calibrated film distance.
	filmDistance := camera.Elements().RearZ()
	table, err := camera.BuildFocusTable(0.8*filmDistance, 1.2*filmDistance, c.Samples)
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, 0, c.Samples)
	for i := 0; i < c.Samples; i++ {
		d := table.FilmMin + (table.FilmMax-table.FilmMin)*float64(i)/float64(c.Samples-1)
		pts = append(pts, plotter.XY{X: d * 1000, Y: table.FocusAt(d)})
	}

	p := plot.New()
	p.Title.Text = "Focus distance vs film distance"
	p.X.Label.Text = "film distance (mm)"
	p.Y.Label.Text = "focus distance (m)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	if err := p.Save(font.Length(800), font.Length(500), c.Out); err != nil {
		return err
	}

	fmt.Printf("focus curve over film distances [%g, %g] m written to %s\n", table.FilmMin, table.FilmMax, c.Out)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
