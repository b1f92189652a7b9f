package templates

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/stroke"
)

var (
	ErrNoTemplates = errors.New("templates: library needs at least one template")
	ErrEmptyShape  = errors.New("templates: shape has no points")
)

// Shape is a labelled raw outline, before normalization.
type Shape struct {
	Label  string
	Points []models.Point
}

// Template is a normalized reference stroke. Its points cannot be reached
// from outside the package except as a copy.
type Template struct {
	label  string
	points []models.Point
}

func (t Template) Label() string { return t.label }

func (t Template) Points() []models.Point {
	pts := make([]models.Point, len(t.points))
	copy(pts, t.points)
	return pts
}

// Distance is the rotation-invariant distance from a normalized candidate.
func (t Template) Distance(candidate []models.Point) float64 {
	return stroke.DistanceAtBestAngle(candidate, t.points)
}

// Library is an ordered, read-only set of templates. It is safe to share
// between goroutines.
type Library struct {
	templates []Template
}

// Build normalizes every shape with the same pipeline used for candidates.
func Build(shapes ...Shape) (*Library, error) {
	if len(shapes) == 0 {
		return nil, ErrNoTemplates
	}
	lib := &Library{templates: make([]Template, 0, len(shapes))}
	for _, s := range shapes {
		if len(s.Points) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyShape, s.Label)
		}
		lib.templates = append(lib.templates, Template{
			label:  s.Label,
			points: stroke.Normalize(s.Points),
		})
	}
	return lib, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the built-in circle, square and triangle library. It is
// built on first use and shared afterwards.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := Build(Builtin()...)
		if err != nil {
			panic(err)
		}
		defaultLib = lib
	})
	return defaultLib
}

func (l *Library) Len() int { return len(l.templates) }

func (l *Library) At(i int) Template { return l.templates[i] }

// Templates returns the templates in library order.
func (l *Library) Templates() []Template {
	out := make([]Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Labels returns the distinct labels in first-seen order.
func (l *Library) Labels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, t := range l.templates {
		if !seen[t.label] {
			seen[t.label] = true
			labels = append(labels, t.label)
		}
	}
	return labels
}
