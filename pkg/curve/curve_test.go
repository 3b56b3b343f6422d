package curve

import (
	"math"
	"testing"

	"rising-tides/pkg/hexmap"
)

const epsilon = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestBuildEmpty(t *testing.T) {
	for _, mode := range []Mode{Linear, Spline} {
		c, ok := Build(hexmap.Point{}, nil, 1, mode)
		if ok || c != nil {
			t.Errorf("%v: Expected no curve for empty waypoints, got %+v", mode, c)
		}
	}
}

func TestBuildSingleStep(t *testing.T) {
	for _, mode := range []Mode{Linear, Spline} {
		c, ok := Build(hexmap.Point{}, []hexmap.Hex{{Q: 1, R: 0}}, 1, mode)
		if !ok {
			t.Fatalf("%v: Expected a curve", mode)
		}
		if c.SegmentCount() != 1 {
			t.Errorf("%v: Expected 1 segment, got %d", mode, c.SegmentCount())
		}
		if !almostEqual(c.TotalLength, math.Sqrt(3), 1e-6) {
			t.Errorf("%v: Expected length %.6f, got %.6f", mode, math.Sqrt(3), c.TotalLength)
		}
		end := c.End()
		if !almostEqual(end.X, math.Sqrt(3), epsilon) || !almostEqual(end.Z, 0, epsilon) {
			t.Errorf("%v: Expected end at (√3, 0), got %+v", mode, end)
		}
	}
}

func TestBuildStructure(t *testing.T) {
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 1, R: 1}, {Q: 2, R: 1}, {Q: 2, R: 2}}
	origin := hexmap.Point{}

	linear, _ := Build(origin, path, 1, Linear)
	if len(linear.Points) != len(path)+1 || linear.SegmentCount() != len(path) {
		t.Errorf("Expected %d points and %d segments, got %d and %d", len(path)+1, len(path), len(linear.Points), linear.SegmentCount())
	}

	spline, _ := Build(origin, path, 1, Spline)
	if len(spline.Points) != len(path)+3 || spline.SegmentCount() != len(path) {
		t.Errorf("Expected %d control points and %d segments, got %d and %d", len(path)+3, len(path), len(spline.Points), spline.SegmentCount())
	}

	for _, c := range []*Curve{linear, spline} {
		sum := 0.0
		for _, l := range c.SegmentLengths {
			if l <= 0 {
				t.Errorf("%v: Expected positive segment length, got %f", c.Mode, l)
			}
			sum += l
		}
		if !almostEqual(sum, c.TotalLength, epsilon) {
			t.Errorf("%v: Expected total %f to equal sum %f", c.Mode, c.TotalLength, sum)
		}
		if c.Start() != origin {
			t.Errorf("%v: Expected start at origin, got %+v", c.Mode, c.Start())
		}
		if c.End() != path[len(path)-1].ToWorld(1) {
			t.Errorf("%v: Expected end at last hex, got %+v", c.Mode, c.End())
		}
	}

	// Сплайн не короче ломаной через те же точки
	if spline.TotalLength < linear.TotalLength-1e-6 {
		t.Errorf("Expected spline length %f to be at least linear length %f", spline.TotalLength, linear.TotalLength)
	}
}

func TestSplinePassesThroughPathPoints(t *testing.T) {
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 1, R: 1}, {Q: 0, R: 2}}
	c, _ := Build(hexmap.Point{X: 0.3, Z: -0.2}, path, 2, Spline)

	for i := 0; i < c.SegmentCount(); i++ {
		start := c.Segment(i, 0)
		end := c.Segment(i, 1)
		if !almostEqual(start.X, c.Points[i+1].X, epsilon) || !almostEqual(start.Z, c.Points[i+1].Z, epsilon) {
			t.Errorf("Expected segment %d to start at %+v, got %+v", i, c.Points[i+1], start)
		}
		if !almostEqual(end.X, c.Points[i+2].X, epsilon) || !almostEqual(end.Z, c.Points[i+2].Z, epsilon) {
			t.Errorf("Expected segment %d to end at %+v, got %+v", i, c.Points[i+2], end)
		}
	}
}

func TestCollinearSplineMatchesChord(t *testing.T) {
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 3, R: 0}}
	c, _ := Build(hexmap.Point{}, path, 1, Spline)

	want := 3 * math.Sqrt(3)
	if !almostEqual(c.TotalLength, want, 1e-6) {
		t.Errorf("Expected length %f, got %f", want, c.TotalLength)
	}
}

func TestBuildWithSamplesClamp(t *testing.T) {
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 1, R: 1}, {Q: 0, R: 2}}
	low, _ := BuildWithSamples(hexmap.Point{}, path, 1, Spline, 1)
	def, _ := Build(hexmap.Point{}, path, 1, Spline)
	if low.TotalLength != def.TotalLength {
		t.Errorf("Expected low sample count to be raised to %d, got length %f vs %f", MinSamples, low.TotalLength, def.TotalLength)
	}

	fine, _ := BuildWithSamples(hexmap.Point{}, path, 1, Spline, 200)
	if fine.TotalLength < def.TotalLength-1e-9 {
		t.Errorf("Expected finer sampling to measure at least as long, got %f vs %f", fine.TotalLength, def.TotalLength)
	}
}

func TestPointAt(t *testing.T) {
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 2, R: 0}}

	for _, mode := range []Mode{Linear, Spline} {
		c, _ := Build(hexmap.Point{}, path, 1, mode)

		start, tangent := c.PointAt(0)
		if !almostEqual(start.X, 0, epsilon) || !almostEqual(start.Z, 0, epsilon) {
			t.Errorf("%v: Expected start at origin, got %+v", mode, start)
		}
		if tangent.X <= 0 || !almostEqual(tangent.Z, 0, epsilon) {
			t.Errorf("%v: Expected tangent along +X, got %+v", mode, tangent)
		}

		mid, _ := c.PointAt(0.5)
		if !almostEqual(mid.X, math.Sqrt(3), 1e-6) {
			t.Errorf("%v: Expected midpoint at x=√3, got %+v", mode, mid)
		}

		end, _ := c.PointAt(1)
		if !almostEqual(end.X, 2*math.Sqrt(3), epsilon) {
			t.Errorf("%v: Expected end at x=2√3, got %+v", mode, end)
		}
	}
}

func TestLocate(t *testing.T) {
	c, _ := Build(hexmap.Point{}, []hexmap.Hex{{Q: 1, R: 0}, {Q: 2, R: 0}}, 1, Linear)

	tests := []struct {
		name     string
		fraction float64
		segment  int
		local    float64
	}{
		{"Start", 0, 0, 0},
		{"Quarter", 0.25, 0, 0.5},
		// На границе побеждает первый сегмент
		{"Boundary", 0.5, 0, 1},
		{"Three quarters", 0.75, 1, 0.5},
		{"End", 1, 1, 1},
		{"Past end", 1.5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, local := c.Locate(tt.fraction)
			if i != tt.segment || !almostEqual(local, tt.local, 1e-9) {
				t.Errorf("Expected (%d, %.2f), got (%d, %.2f)", tt.segment, tt.local, i, local)
			}
		})
	}
}

func TestDegenerateCurve(t *testing.T) {
	origin := hexmap.Hex{Q: 2, R: -1}.ToWorld(1)
	for _, mode := range []Mode{Linear, Spline} {
		c, ok := Build(origin, []hexmap.Hex{{Q: 2, R: -1}}, 1, mode)
		if !ok {
			t.Fatalf("%v: Expected a curve", mode)
		}
		if !c.Degenerate() {
			t.Errorf("%v: Expected zero-length curve to be degenerate, length %f", mode, c.TotalLength)
		}
		pos, tangent := c.PointAt(0.5)
		if math.IsNaN(pos.X) || math.IsNaN(pos.Z) {
			t.Fatalf("%v: Expected no NaN, got %+v", mode, pos)
		}
		if pos != origin || tangent != (hexmap.Point{}) {
			t.Errorf("%v: Expected (%+v, zero tangent), got (%+v, %+v)", mode, origin, pos, tangent)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"linear", Linear, false},
		{"Spline", Spline, false},
		{" catmull-rom ", Spline, false},
		{"bezier", Linear, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q): expected (%v, err=%v), got (%v, %v)", tt.in, tt.want, tt.wantErr, got, err)
		}
	}
	if Spline.String() != "spline" || Mode(7).String() != "mode(7)" {
		t.Errorf("Unexpected mode names: %s, %s", Spline, Mode(7))
	}
}
