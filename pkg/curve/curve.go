// Package curve turns a hex path into a parametric curve in world space and
// provides arc-length lookup for constant-speed traversal.
package curve

import (
	"fmt"
	"strings"

	"rising-tides/pkg/hexmap"
)

// Mode selects how consecutive path points are joined.
type Mode int

const (
	// Linear joins points with straight segments.
	Linear Mode = iota
	// Spline joins points with Catmull-Rom segments.
	Spline
)

const (
	// MinSamples is the lowest arc-length sampling resolution per spline segment.
	MinSamples = 10
	// TangentDelta is the parameter step used for the finite-difference tangent.
	TangentDelta = 0.01
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Spline:
		return "spline"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "linear" or "spline" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "spline", "catmull-rom", "catmullrom":
		return Spline, nil
	}
	return Linear, fmt.Errorf("unknown curve mode %q", s)
}

// Curve is immutable once built.
//
// In Spline mode Points holds the path points plus one extrapolated control
// point at each end, and segment i is driven by Points[i:i+4].
// In Linear mode Points holds only the path points and segment i runs from
// Points[i] to Points[i+1].
type Curve struct {
	Mode           Mode
	Points         []hexmap.Point
	SegmentLengths []float64
	TotalLength    float64
}

// Build converts waypoints into a curve that starts at origin.
// Returns false when there are no waypoints; nothing is built in that case.
func Build(origin hexmap.Point, waypoints []hexmap.Hex, hexSize float64, mode Mode) (*Curve, bool) {
	return BuildWithSamples(origin, waypoints, hexSize, mode, MinSamples)
}

// BuildWithSamples is Build with an explicit per-segment sampling resolution
// for spline arc lengths. Values below MinSamples are raised to MinSamples.
func BuildWithSamples(origin hexmap.Point, waypoints []hexmap.Hex, hexSize float64, mode Mode, samples int) (*Curve, bool) {
	if len(waypoints) == 0 {
		return nil, false
	}
	if samples < MinSamples {
		samples = MinSamples
	}

	anchors := make([]hexmap.Point, 0, len(waypoints)+1)
	anchors = append(anchors, origin)
	for _, hex := range waypoints {
		anchors = append(anchors, hex.ToWorld(hexSize))
	}

	c := &Curve{Mode: mode}
	switch mode {
	case Spline:
		c.Points = withBoundaryPoints(anchors)
		c.SegmentLengths = make([]float64, 0, len(anchors)-1)
		for i := 0; i+3 < len(c.Points); i++ {
			l := splineSegmentLength(c.Points[i], c.Points[i+1], c.Points[i+2], c.Points[i+3], samples)
			c.SegmentLengths = append(c.SegmentLengths, l)
			c.TotalLength += l
		}
	default:
		c.Mode = Linear
		c.Points = anchors
		c.SegmentLengths = make([]float64, 0, len(anchors)-1)
		for i := 0; i+1 < len(anchors); i++ {
			l := anchors[i].DistanceTo(anchors[i+1])
			c.SegmentLengths = append(c.SegmentLengths, l)
			c.TotalLength += l
		}
	}
	return c, true
}

// withBoundaryPoints добавляет экстраполированные контрольные точки до первой и после последней
func withBoundaryPoints(anchors []hexmap.Point) []hexmap.Point {
	n := len(anchors)
	first, second := anchors[0], anchors[1]
	last, secondLast := anchors[n-1], anchors[n-2]

	points := make([]hexmap.Point, 0, n+2)
	points = append(points, first.Sub(second.Sub(first)))
	points = append(points, anchors...)
	points = append(points, last.Add(last.Sub(secondLast)))
	return points
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at t.
func CatmullRom(p0, p1, p2, p3 hexmap.Point, t float64) hexmap.Point {
	t2 := t * t
	t3 := t2 * t
	return hexmap.Point{
		X: catmullRom1(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Z: catmullRom1(p0.Z, p1.Z, p2.Z, p3.Z, t, t2, t3),
	}
}

func catmullRom1(p0, p1, p2, p3, t, t2, t3 float64) float64 {
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func splineSegmentLength(p0, p1, p2, p3 hexmap.Point, samples int) float64 {
	length := 0.0
	prev := CatmullRom(p0, p1, p2, p3, 0)
	for i := 1; i <= samples; i++ {
		point := CatmullRom(p0, p1, p2, p3, float64(i)/float64(samples))
		length += prev.DistanceTo(point)
		prev = point
	}
	return length
}

// SegmentCount returns the number of segments.
func (c *Curve) SegmentCount() int {
	return len(c.SegmentLengths)
}

// Degenerate reports a curve with zero total length.
func (c *Curve) Degenerate() bool {
	return c.TotalLength <= 0
}

// Start returns the first path point of the curve.
func (c *Curve) Start() hexmap.Point {
	if c.Mode == Spline {
		return c.Points[1]
	}
	return c.Points[0]
}

// End returns the last path point of the curve.
func (c *Curve) End() hexmap.Point {
	if c.Mode == Spline {
		return c.Points[len(c.Points)-2]
	}
	return c.Points[len(c.Points)-1]
}

// Segment evaluates segment i at local parameter t in [0, 1].
func (c *Curve) Segment(i int, t float64) hexmap.Point {
	if c.Mode == Spline {
		return CatmullRom(c.Points[i], c.Points[i+1], c.Points[i+2], c.Points[i+3], t)
	}
	a, b := c.Points[i], c.Points[i+1]
	return a.Add(b.Sub(a).Scale(t))
}

// Locate maps a fraction of the total length to a segment and a local parameter.
// The first segment whose running total reaches the target distance wins.
func (c *Curve) Locate(fraction float64) (int, float64) {
	target := c.TotalLength * fraction
	accumulated := 0.0
	for i, length := range c.SegmentLengths {
		if accumulated+length >= target {
			if length <= 0 {
				return i, 0
			}
			t := (target - accumulated) / length
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			return i, t
		}
		accumulated += length
	}
	return len(c.SegmentLengths) - 1, 1
}

// PointAt returns the point at the given fraction of total length and a
// forward tangent approximated by a finite difference of TangentDelta.
// The tangent is zero at the very end of a segment and on degenerate curves.
func (c *Curve) PointAt(fraction float64) (pos, tangent hexmap.Point) {
	if c.Degenerate() || c.SegmentCount() == 0 {
		return c.End(), hexmap.Point{}
	}
	i, t := c.Locate(fraction)
	pos = c.Segment(i, t)
	next := c.Segment(i, min(1, t+TangentDelta))
	return pos, next.Sub(pos)
}
