package gestures

import "github.com/ThatOtherAndrew/sigil/internal/models"

// MaxPoints caps a recorded stroke; older points are dropped first.
const MaxPoints = 2048

// Recorder accumulates the points of one stroke as they arrive.
type Recorder struct {
	spacing float64
	points  []models.Point
}

// NewRecorder drops any point within spacing of the previously kept one.
// A spacing of 0 keeps every point.
func NewRecorder(spacing float64) *Recorder {
	return &Recorder{spacing: spacing}
}

// AddPoint reports whether the point was kept.
func (r *Recorder) AddPoint(x, y float64) bool {
	newPoint := models.Point{X: x, Y: y}

	shouldAdd := false
	if len(r.points) == 0 || r.spacing <= 0 {
		shouldAdd = true
	} else {
		lastPoint := r.points[len(r.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		if dx*dx+dy*dy > r.spacing*r.spacing {
			shouldAdd = true
		}
	}

	if shouldAdd {
		r.points = append(r.points, newPoint)
		if len(r.points) > MaxPoints {
			r.points = r.points[len(r.points)-MaxPoints:]
		}
	}
	return shouldAdd
}

func (r *Recorder) Len() int { return len(r.points) }

// Points returns a copy of the stroke so far.
func (r *Recorder) Points() []models.Point {
	pts := make([]models.Point, len(r.points))
	copy(pts, r.points)
	return pts
}

func (r *Recorder) Reset() { r.points = nil }

// Filter runs points through a fresh Recorder.
func Filter(points []models.Point, spacing float64) []models.Point {
	r := NewRecorder(spacing)
	for _, p := range points {
		r.AddPoint(p.X, p.Y)
	}
	return r.Points()
}
