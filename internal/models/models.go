package models

import "fmt"

// LabelTooShort is the label carried by a result for a stroke with too few
// points to be worth matching.
const LabelTooShort = "too short"

type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (r Result) TooShort() bool {
	return r.Label == LabelTooShort
}

func (r Result) String() string {
	if r.TooShort() {
		return "Too short, draw more"
	}
	return fmt.Sprintf("%s: %.1f%%", r.Label, r.Score*100)
}

// GestureConfig is a learned gesture as stored on disk. Templates holds the
// raw sample strokes; they are normalized when the library is built.
type GestureConfig struct {
	Label     string    `json:"label"`
	Command   string    `json:"command,omitempty"`
	Templates [][]Point `json:"templates,omitempty"`
}
