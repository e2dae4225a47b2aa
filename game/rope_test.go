package game

import (
	"math"
	"testing"

	"github.com/lixenwraith/quiz-fisher/constants"
)

// TestRopeEndpoints verifies the polyline starts and ends exactly on the anchors
func TestRopeEndpoints(t *testing.T) {
	start := Point{X: 512, Y: 50}
	end := Point{X: 874, Y: 400}

	pts := RopePoints(start, end, 1.3)
	if pts[0] != start || pts[len(pts)-1] != end {
		t.Errorf("Expected endpoints %v %v, got %v %v", start, end, pts[0], pts[len(pts)-1])
	}

	want := int(math.Hypot(362, 350) / constants.RopeSegmentLength)
	if len(pts) != want {
		t.Errorf("Expected %d points, got %d", want, len(pts))
	}
}

// TestRopeDisplacementBounded verifies interior points stay within the wave amplitude
func TestRopeDisplacementBounded(t *testing.T) {
	start := Point{X: 0, Y: 0}
	end := Point{X: 0, Y: 300}

	for _, p := range RopePoints(start, end, 0.7) {
		if math.Abs(p.X) > constants.RopeAmplitude+1e-9 {
			t.Errorf("Point %v displaced beyond amplitude", p)
		}
	}
}

// TestRopeDegenerate verifies a zero-length line still yields two points
func TestRopeDegenerate(t *testing.T) {
	p := Point{X: 10, Y: 10}
	pts := RopePoints(p, p, 0)
	if len(pts) != 2 || pts[0] != p || pts[1] != p {
		t.Errorf("Expected two identical points, got %v", pts)
	}
}
