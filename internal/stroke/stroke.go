// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/sigil/internal/models"
)

// NumPoints is the length of every normalized stroke.
const NumPoints = 64

// Below this total length a stroke is treated as a single point.
const minPathLength = 1e-4

// Step 1

// Resample returns n points spaced evenly along the arc length of points.
// The input slice is never modified.
func Resample(points []models.Point, n int) []models.Point {
	if len(points) == 0 || n <= 0 {
		return nil
	}

	L := PathLength(points)
	if L <= minPathLength {
		newPoints := make([]models.Point, n)
		for i := range newPoints {
			newPoints[i] = points[0]
		}
		return newPoints
	}

	I := L / float64(n-1)
	D := 0.0
	newPoints := make([]models.Point, 1, n)
	newPoints[0] = points[0]

	// prev is the walk position: a source point or the last emitted one.
	prev := points[0]
	for i := 1; i < len(points) && len(newPoints) < n; {
		d := prev.Dist(points[i])
		if d > 0 && D+d >= I {
			q := prev.Lerp(points[i], (I-D)/d)
			newPoints = append(newPoints, q)
			prev = q
			D = 0
			continue
		}
		D += d
		prev = points[i]
		i++
	}
	for len(newPoints) < n {
		newPoints = append(newPoints, points[len(points)-1])
	}
	return newPoints
}

func PathLength(points []models.Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += points[i-1].Dist(points[i])
	}
	return d
}

// Step 2

func Centroid(points []models.Point) models.Point {
	var c models.Point
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	n := float64(len(points))
	return models.Point{X: c.X / n, Y: c.Y / n}
}

// IndicativeAngle is the angle from the centroid to the first point.
func IndicativeAngle(points []models.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	return points[0].Sub(Centroid(points)).Angle()
}

// RotateBy rotates points about their centroid.
func RotateBy(points []models.Point, angle float64) []models.Point {
	c := Centroid(points)
	newPoints := make([]models.Point, len(points))
	for i, p := range points {
		newPoints[i] = p.RotateAround(c, angle)
	}
	return newPoints
}

// Step 3

func TranslateToOrigin(points []models.Point) []models.Point {
	c := Centroid(points)
	newPoints := make([]models.Point, len(points))
	for i, p := range points {
		newPoints[i] = p.Sub(c)
	}
	return newPoints
}

// ScaleToUnit divides every point by the largest magnitude, so the point
// farthest from the origin lands on the unit circle. This is scaling by
// radius rather than by bounding box.
func ScaleToUnit(points []models.Point) []models.Point {
	maxDist := 0.0
	for _, p := range points {
		maxDist = math.Max(maxDist, p.Magnitude())
	}
	newPoints := make([]models.Point, len(points))
	if maxDist < 1e-9 {
		copy(newPoints, points)
		return newPoints
	}
	for i, p := range points {
		newPoints[i] = p.Scale(1 / maxDist)
	}
	return newPoints
}

// Step 4

const (
	searchLimit = 45 * math.Pi / 180
	searchStep  = 2 * math.Pi / 180
	// SearchAngles is the number of template rotations tried per comparison.
	SearchAngles = 46
)

// DistanceAtBestAngle scans template rotations from -45° to +45° in 2° steps
// and returns the smallest path distance to points. Both strokes must be
// normalized.
func DistanceAtBestAngle(points, template []models.Point) float64 {
	best := math.Inf(1)
	for k := 0; k < SearchAngles; k++ {
		angle := -searchLimit + float64(k)*searchStep
		best = math.Min(best, DistanceAtAngle(points, template, angle))
	}
	return best
}

// DistanceAtAngle rotates template about the origin before comparing.
func DistanceAtAngle(points, template []models.Point, angle float64) float64 {
	rotated := make([]models.Point, len(template))
	for i, p := range template {
		rotated[i] = p.Rotate(angle)
	}
	return PathDistance(points, rotated)
}

// PathDistance is the mean distance between index-aligned points.
func PathDistance(A, B []models.Point) float64 {
	n := min(len(A), len(B))
	if n == 0 {
		return math.Inf(1)
	}
	d := 0.0
	for i := 0; i < n; i++ {
		d += A[i].Dist(B[i])
	}
	return d / float64(n)
}

// Entry points

// Normalize resamples points to NumPoints and maps them to canonical
// orientation, position and scale.
func Normalize(points []models.Point) []models.Point {
	points = Resample(points, NumPoints)
	if len(points) == 0 {
		return nil
	}
	points = RotateBy(points, -IndicativeAngle(points))
	points = TranslateToOrigin(points)
	return ScaleToUnit(points)
}
