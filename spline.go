package cadence

import (
	"fmt"
	"time"
)

// MaxSplinePoints is the largest control polygon a SplineTo accepts.
const MaxSplinePoints = 48

// SplineTo moves its target along a cardinal spline through a list of
// control points. Progress is split into len(points) equal segments; segment
// p runs from points[p] toward points[p+1], with neighbors beyond either end
// of the list clamped to the first or last point. Segments follow raw
// progress; the easing curve does not change the pacing.
type SplineTo struct {
	interval
	target  Target
	points  [MaxSplinePoints]Vec2
	count   int
	tension float64
	deltaT  float32
}

// NewSplineTo creates a SplineTo action. tension 0 gives a Catmull-Rom
// curve; 1 gives straight segments. It fails with ErrTooManyPoints when
// points exceeds MaxSplinePoints and ErrNoPoints when it is empty.
func NewSplineTo(tag uint32, target Target, points []Vec2, tension float64, d time.Duration) (*SplineTo, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(points) > MaxSplinePoints {
		return nil, fmt.Errorf("spline with %d points: %w", len(points), ErrTooManyPoints)
	}
	a := &SplineTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "SplineTo"),
		count:    len(points),
		tension:  tension,
		deltaT:   1 / float32(len(points)),
	}
	copy(a.points[:], points)
	return a, nil
}

// Start rewinds the clock and snaps the target onto the first point.
func (a *SplineTo) Start() {
	a.interval.Start()
	if !isDisposed(a.target) {
		a.target.SetPosition(a.points[0].X, a.points[0].Y)
	}
}

func (a *SplineTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, _ := a.step(dt)
	pos := a.at(p)
	a.target.SetPosition(pos.X, pos.Y)
	return resultFor(p)
}

// at evaluates the spline at raw progress t.
func (a *SplineTo) at(t float32) Vec2 {
	var seg int
	var lt float32
	if t >= 1 {
		seg = a.count - 1
		lt = 1
	} else {
		seg = int(t / a.deltaT)
		lt = (t - a.deltaT*float32(seg)) / a.deltaT
	}
	return cardinal(
		a.point(seg-1), a.point(seg), a.point(seg+1), a.point(seg+2),
		a.tension, float64(lt),
	)
}

// point returns points[i] with i clamped to the valid range.
func (a *SplineTo) point(i int) Vec2 {
	return a.points[min(max(i, 0), a.count-1)]
}

// cardinal evaluates the cardinal spline basis through p1..p2 with p0 and p3
// as outer neighbors.
func cardinal(p0, p1, p2, p3 Vec2, tension, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	s := (1 - tension) / 2

	b1 := s * (-t3 + 2*t2 - t)
	b2 := s*(-t3+t2) + (2*t3 - 3*t2 + 1)
	b3 := s*(t3-2*t2+t) + (-2*t3 + 3*t2)
	b4 := s * (t3 - t2)

	return Vec2{
		X: p0.X*b1 + p1.X*b2 + p2.X*b3 + p3.X*b4,
		Y: p0.Y*b1 + p1.Y*b2 + p2.Y*b3 + p3.Y*b4,
	}
}
