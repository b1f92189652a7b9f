package recognizer

import (
	"math"
	"sort"

	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/stroke"
	"github.com/ThatOtherAndrew/sigil/internal/templates"
)

// MinPoints is the smallest raw stroke that gets matched at all.
const MinPoints = 20

// HalfDiagonal is the distance that maps to a score of zero.
const HalfDiagonal = 0.5 * math.Sqrt2

// Recognizer matches strokes against a template library. The zero value
// uses the built-in shapes.
type Recognizer struct {
	lib *templates.Library
}

func New(lib *templates.Library) (*Recognizer, error) {
	if lib == nil || lib.Len() == 0 {
		return nil, templates.ErrNoTemplates
	}
	return &Recognizer{lib: lib}, nil
}

// Default recognizes against the built-in shapes.
func Default() *Recognizer {
	return &Recognizer{lib: templates.Default()}
}

// Recognize classifies points with the built-in shapes.
func Recognize(points []models.Point) models.Result {
	return Default().Recognize(points)
}

func (r *Recognizer) Library() *templates.Library {
	if r.lib == nil {
		return templates.Default()
	}
	return r.lib
}

// Recognize returns the closest template and its score. Strokes shorter
// than MinPoints are not matched and come back with LabelTooShort.
func (r *Recognizer) Recognize(points []models.Point) models.Result {
	if len(points) < MinPoints {
		return tooShort()
	}

	candidate := stroke.Normalize(points)

	lib := r.Library()
	best := math.Inf(1)
	bestIndex := 0
	for i, t := range lib.Templates() {
		d := t.Distance(candidate)
		if d < best {
			best = d
			bestIndex = i
		}
	}

	return models.Result{
		Label: lib.At(bestIndex).Label(),
		Score: Score(best),
	}
}

// Rank scores every label, best first. A label with several templates is
// scored by its closest one.
func (r *Recognizer) Rank(points []models.Point) []models.Result {
	if len(points) < MinPoints {
		return []models.Result{tooShort()}
	}

	candidate := stroke.Normalize(points)

	type ranked struct {
		label    string
		distance float64
	}
	var order []ranked
	index := make(map[string]int)
	for _, t := range r.Library().Templates() {
		d := t.Distance(candidate)
		i, ok := index[t.Label()]
		if !ok {
			index[t.Label()] = len(order)
			order = append(order, ranked{label: t.Label(), distance: d})
			continue
		}
		if d < order[i].distance {
			order[i].distance = d
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].distance < order[j].distance
	})

	results := make([]models.Result, len(order))
	for i, o := range order {
		results[i] = models.Result{Label: o.label, Score: Score(o.distance)}
	}
	return results
}

// Score maps a template distance onto [0, 1], 1 being a perfect match.
func Score(distance float64) float64 {
	score := 1 - distance/HalfDiagonal
	return math.Max(0, math.Min(1, score))
}

func tooShort() models.Result {
	return models.Result{Label: models.LabelTooShort, Score: 0}
}
