package game

import (
	"math"

	"github.com/lixenwraith/quiz-fisher/constants"
)

// Point is a world-space coordinate
type Point struct {
	X, Y float64
}

// RopePoints returns the zig-zag polyline of the fishing line from the rod tip
// to the hook. Interior points are displaced perpendicular to the line by a
// sine wave that travels with phase; the end points are exact.
func RopePoints(start, end Point, phase float64) []Point {
	dx := end.X - start.X
	dy := end.Y - start.Y
	distance := math.Hypot(dx, dy)

	n := int(distance / constants.RopeSegmentLength)
	if n < 2 {
		n = 2
	}

	angle := math.Atan2(dy, dx)
	sinA, cosA := math.Sin(angle), math.Cos(angle)

	points := make([]Point, 0, n+1)
	points = append(points, start)
	for i := 1; i < n; i++ {
		ratio := float64(i) / float64(n-1)
		px := start.X + dx*ratio
		py := start.Y + dy*ratio
		if distance > 0 {
			wave := constants.RopeAmplitude * math.Sin(constants.RopeFrequency*float64(i)+phase)
			px += wave * sinA
			py -= wave * cosA
		}
		points = append(points, Point{X: px, Y: py})
	}
	points[len(points)-1] = end
	return points
}
