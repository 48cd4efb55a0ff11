package optics

import "github.com/fogleman/pt/pt"

// AnimatedTransform interpolates between two camera-to-world transforms
// across a time interval. Interpolating the transformed origin and
// direction equals applying the entry-wise interpolated matrix, which is
// adequate for the small motions a camera sees within one shutter interval.
type AnimatedTransform struct {
	Start, End         pt.Matrix
	StartTime, EndTime float64
	animated           bool
}

// StaticTransform wraps a single transform that does not vary with time.
func StaticTransform(m pt.Matrix) AnimatedTransform {
	return AnimatedTransform{Start: m, End: m, StartTime: 0, EndTime: 1}
}

// NewAnimatedTransform interpolates from start at startTime to end at
// endTime, clamping outside the interval.
func NewAnimatedTransform(start, end pt.Matrix, startTime, endTime float64) AnimatedTransform {
	return AnimatedTransform{
		Start:     start,
		End:       end,
		StartTime: startTime,
		EndTime:   endTime,
		animated:  start != end,
	}
}

// Ray transforms r at the given time.
func (a AnimatedTransform) Ray(r pt.Ray, time float64) pt.Ray {
	if !a.animated {
		return a.Start.MulRay(r)
	}
	u := (time - a.StartTime) / (a.EndTime - a.StartTime)
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	s := a.Start.MulRay(r)
	e := a.End.MulRay(r)
	return pt.Ray{
		Origin:    lerpVector(s.Origin, e.Origin, u),
		Direction: lerpVector(s.Direction, e.Direction, u),
	}
}

func lerpVector(a, b pt.Vector, t float64) pt.Vector {
	return a.MulScalar(1 - t).Add(b.MulScalar(t))
}
