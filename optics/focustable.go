package optics

import (
	"fmt"
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
)

// FocusTable is a sampled, invertible piecewise-linear mapping between
// film-to-rear-element distance and achieved focus distance. Building one
// costs a sweep of focus probes; evaluating it is cheap, which suits
// repeated approximate refocusing and reporting.
type FocusTable struct {
	filmToFocus lin.Function
	focusToFilm lin.Function
	// FilmMin, FilmMax delimit the usable swept film distances.
	FilmMin, FilmMax float64
}

// BuildFocusTable probes n film distances evenly across [filmMin, filmMax].
// Film distances whose focus diverges are skipped; at least two usable
// samples are required.
func (c *RealisticCamera) BuildFocusTable(filmMin, filmMax float64, n int) (*FocusTable, error) {
	if n < 2 || filmMin <= 0 || filmMax <= filmMin {
		return nil, fmt.Errorf("invalid focus table sweep [%g, %g] with %d samples", filmMin, filmMax, n)
	}
	film := make([]float64, 0, n)
	focus := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		d := lerp(float64(i)/float64(n-1), filmMin, filmMax)
		z := c.FocusDistance(d)
		if math.IsInf(z, 1) {
			continue
		}
		film = append(film, d)
		focus = append(focus, z)
	}
	if len(film) < 2 {
		return nil, fmt.Errorf("focus table sweep [%g, %g] produced fewer than two usable samples", filmMin, filmMax)
	}

	t := &FocusTable{
		filmToFocus: lin.Function{X: film, Y: focus},
		FilmMin:     film[0],
		FilmMax:     film[len(film)-1],
	}

	// The inverse needs its sample points ascending in focus distance.
	order := make([]int, len(film))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return focus[order[a]] < focus[order[b]] })
	fx := make([]float64, len(order))
	fy := make([]float64, len(order))
	for i, j := range order {
		fx[i] = focus[j]
		fy[i] = film[j]
	}
	t.focusToFilm = lin.Function{X: fx, Y: fy}
	return t, nil
}

// FocusAt returns the interpolated focus distance for a film distance.
func (t *FocusTable) FocusAt(filmDistance float64) float64 {
	return t.filmToFocus.At(filmDistance)
}

// FilmDistance returns the interpolated film distance that focuses at
// focusDistance.
func (t *FocusTable) FilmDistance(focusDistance float64) float64 {
	return t.focusToFilm.At(focusDistance)
}
