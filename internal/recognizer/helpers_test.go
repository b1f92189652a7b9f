package recognizer_test

import (
	"math"

	"github.com/ThatOtherAndrew/sigil/internal/models"
)

// circleStroke traces n points counter-clockwise around (cx, cy), leaving
// the loop one step short of closing.
func circleStroke(cx, cy, r float64, n int) []models.Point {
	pts := make([]models.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = models.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// outline walks the closed polygon through corners, perEdge points an edge.
func outline(corners []models.Point, perEdge int) []models.Point {
	var pts []models.Point
	for k, c := range corners {
		next := corners[(k+1)%len(corners)]
		for i := 0; i < perEdge; i++ {
			pts = append(pts, c.Lerp(next, float64(i)/float64(perEdge)))
		}
	}
	return pts
}

// squareStroke starts at the top-left corner (y up) and runs clockwise.
func squareStroke(x, y, side float64, perEdge int) []models.Point {
	return outline([]models.Point{
		{X: x, Y: y + side},
		{X: x + side, Y: y + side},
		{X: x + side, Y: y},
		{X: x, Y: y},
	}, perEdge)
}

// triangleStroke starts bottom-left, climbs to the apex and returns to the
// start along the base.
func triangleStroke(x, y, side float64, perEdge int) []models.Point {
	corners := []models.Point{{X: x, Y: y}, {X: x + side/2, Y: y + side}, {X: x + side, Y: y}}
	return append(outline(corners, perEdge), corners[0])
}

// transform rotates about the origin by degrees, scales, then translates.
func transform(pts []models.Point, degrees, scale float64, offset models.Point) []models.Point {
	out := make([]models.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Rotate(degrees * math.Pi / 180).Scale(scale).Add(offset)
	}
	return out
}
