// Package motion generates randomized pointer targets and curved
// trajectories for activity simulation.
package motion

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	// controlSpread bounds the random displacement of the bezier control
	// point from the straight-line midpoint, per axis.
	controlSpread = 30.0

	// sampleJitter bounds the per-sample pixel jitter, per axis.
	sampleJitter = 1.0

	// stepInterval is the nominal time between curve samples.
	stepInterval = 10 * time.Millisecond

	// minSteps is the minimum number of segments in a curve, so even very
	// short moves animate instead of teleporting.
	minSteps = 10
)

// Point is a pixel coordinate on screen.
type Point struct {
	X int
	Y int
}

// Bounds describes the usable screen rectangle.
type Bounds struct {
	Width  int
	Height int
}

// ValidateMargin reports whether the margin leaves any usable area inside
// the bounds.
func ValidateMargin(b Bounds, margin int) error {
	if b.Width-2*margin <= 0 || b.Height-2*margin <= 0 {
		return fmt.Errorf("margin %dpx leaves no usable area on a %dx%d screen", margin, b.Width, b.Height)
	}
	return nil
}

// SamplePoint returns a uniformly random point within bounds, keeping
// margin pixels clear of every edge. X lands in [margin, width-margin)
// and Y in [margin, height-margin).
func SamplePoint(rnd *rand.Rand, b Bounds, margin int) (Point, error) {
	if err := ValidateMargin(b, margin); err != nil {
		return Point{}, err
	}
	return Point{
		X: margin + rnd.Intn(b.Width-2*margin),
		Y: margin + rnd.Intn(b.Height-2*margin),
	}, nil
}

// Curve streams the samples of one randomized quadratic bezier trajectory
// from start to end. Samples are produced lazily: the caller consumes one,
// holds for the returned delay, then asks for the next. The per-sample
// jitter can cause small back-steps along the path; that wobble is what
// makes the motion look hand-driven.
type Curve struct {
	rnd          *rand.Rand
	start, end   Point
	ctrlX, ctrlY float64
	steps        int
	next         int
	stepDelay    time.Duration
}

// NewCurve builds a curve covering the move in max(10, duration/10ms)
// segments, bending through a control point picked near the straight-line
// midpoint.
func NewCurve(rnd *rand.Rand, start, end Point, duration time.Duration) *Curve {
	steps := int(duration / stepInterval)
	if steps < minSteps {
		steps = minSteps
	}
	return &Curve{
		rnd:       rnd,
		start:     start,
		end:       end,
		ctrlX:     float64(start.X+end.X)/2 + (rnd.Float64()*2-1)*controlSpread,
		ctrlY:     float64(start.Y+end.Y)/2 + (rnd.Float64()*2-1)*controlSpread,
		steps:     steps,
		stepDelay: duration / time.Duration(steps),
	}
}

// Len returns the total number of samples the curve produces.
func (c *Curve) Len() int { return c.steps + 1 }

// Next returns the next sample and the delay to hold before asking for the
// one after. ok is false once the curve is exhausted.
func (c *Curve) Next() (pt Point, delay time.Duration, ok bool) {
	if c.next > c.steps {
		return Point{}, 0, false
	}
	t := float64(c.next) / float64(c.steps)
	c.next++

	u := 1 - t
	x := u*u*float64(c.start.X) + 2*u*t*c.ctrlX + t*t*float64(c.end.X)
	y := u*u*float64(c.start.Y) + 2*u*t*c.ctrlY + t*t*float64(c.end.Y)
	x += (c.rnd.Float64()*2 - 1) * sampleJitter
	y += (c.rnd.Float64()*2 - 1) * sampleJitter

	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}, c.stepDelay, true
}
