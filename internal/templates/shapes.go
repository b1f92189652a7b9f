package templates

import (
	"math"

	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/stroke"
)

const (
	Circle   = "circle"
	Square   = "square"
	Triangle = "triangle"
)

// Builtin returns the raw outlines of the built-in shapes, in library order.
func Builtin() []Shape {
	return []Shape{
		{Label: Circle, Points: PerfectCircle(stroke.NumPoints)},
		{Label: Square, Points: PerfectSquare(stroke.NumPoints)},
		{Label: Triangle, Points: PerfectTriangle(stroke.NumPoints)},
	}
}

// PerfectCircle spreads n points counter-clockwise around the unit circle,
// starting on the positive x axis.
func PerfectCircle(n int) []models.Point {
	pts := make([]models.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = models.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	return pts
}

// PerfectSquare starts at the top-left corner and runs clockwise (y up):
// top, right, bottom, left, n/4 points per side.
func PerfectSquare(n int) []models.Point {
	return polygon([]models.Point{
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: -1},
	}, n)
}

// PerfectTriangle starts at the bottom-left corner, climbs to the apex and
// comes back along the base, n/3 points per edge.
func PerfectTriangle(n int) []models.Point {
	return polygon([]models.Point{
		{X: -1, Y: -1},
		{X: 0, Y: 1},
		{X: 1, Y: -1},
	}, n)
}

// polygon walks the closed outline through vertices, placing n/len(vertices)
// points on each edge. Leftover points close the outline at the first vertex.
func polygon(vertices []models.Point, n int) []models.Point {
	perEdge := n / len(vertices)
	pts := make([]models.Point, 0, n)
	for k, v := range vertices {
		next := vertices[(k+1)%len(vertices)]
		for i := 0; i < perEdge; i++ {
			pts = append(pts, v.Lerp(next, float64(i)/float64(perEdge)))
		}
	}
	for len(pts) < n {
		pts = append(pts, vertices[0])
	}
	return pts
}
