package gestures

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/sigil/internal/config"
	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/templates"
)

var ErrNotFound = errors.New("gesture not found")

func LoadGestures() ([]models.GestureConfig, error) {
	configFile, err := config.GetPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GestureConfig{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", configFile)
	}

	var gestures []models.GestureConfig
	if err := json.Unmarshal(data, &gestures); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", configFile)
	}

	return gestures, nil
}

func writeGestures(gestures []models.GestureConfig) error {
	configFile, err := config.GetPath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(gestures)
	if err != nil {
		return err
	}

	return errors.Wrapf(os.WriteFile(configFile, data, 0644), "writing %s", configFile)
}

// SaveGesture stores samples under label, replacing earlier samples for it.
// An empty command keeps the one already bound.
func SaveGesture(label, command string, samples [][]models.Point) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	newGesture := models.GestureConfig{
		Label:     label,
		Command:   command,
		Templates: samples,
	}

	found := false
	for i, g := range gestures {
		if g.Label == label {
			if newGesture.Command == "" {
				newGesture.Command = g.Command
			}
			gestures[i] = newGesture
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, newGesture)
	}

	return writeGestures(gestures)
}

// BindCommand sets the command run when label is recognized. The label may
// be a built-in shape with no stored samples.
func BindCommand(label, command string) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	found := false
	for i, g := range gestures {
		if g.Label == label {
			gestures[i].Command = command
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, models.GestureConfig{Label: label, Command: command})
	}

	return writeGestures(gestures)
}

func RemoveGesture(label string) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	found := false
	for i, g := range gestures {
		if g.Label == label {
			gestures = append(gestures[:i], gestures[i+1:]...)
			found = true
			break
		}
	}

	if !found {
		return errors.Wrap(ErrNotFound, label)
	}

	return writeGestures(gestures)
}

// Library builds the built-in shapes plus every learned sample.
func Library(gestures []models.GestureConfig) (*templates.Library, error) {
	shapes := templates.Builtin()
	for _, g := range gestures {
		for _, sample := range g.Templates {
			if len(sample) == 0 {
				continue
			}
			shapes = append(shapes, templates.Shape{Label: g.Label, Points: sample})
		}
	}
	return templates.Build(shapes...)
}
