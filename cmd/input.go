package cmd

import (
	"errors"
	"fmt"
	"os"

	gestures "github.com/ThatOtherAndrew/sigil/internal/gesture"
	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/recognizer"
	"github.com/ThatOtherAndrew/sigil/internal/strokefile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var stdinFormat string

var errStdinTerminal = errors.New("no stroke files given: pipe a stroke into stdin or name a file")

var isTerminal = term.IsTerminal

func parseFormat(name string) (strokefile.Format, error) {
	switch name {
	case "", "text":
		return strokefile.Text, nil
	case "json":
		return strokefile.JSON, nil
	case "yaml", "yml":
		return strokefile.YAML, nil
	default:
		return 0, fmt.Errorf("unsupported format: %s", name)
	}
}

// readStrokes loads one stroke per path, or a single stroke from stdin when
// paths is empty. Points closer than spacing are merged.
func readStrokes(cmd *cobra.Command, paths []string, spacing float64) ([][]models.Point, error) {
	if len(paths) == 0 {
		format, err := parseFormat(stdinFormat)
		if err != nil {
			return nil, err
		}
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
			return nil, errStdinTerminal
		}
		points, err := strokefile.Decode(in, format)
		if err != nil {
			return nil, err
		}
		return [][]models.Point{gestures.Filter(points, spacing)}, nil
	}

	strokes := make([][]models.Point, 0, len(paths))
	for _, path := range paths {
		points, err := strokefile.Load(path)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, gestures.Filter(points, spacing))
	}
	return strokes, nil
}

// loadRecognizer matches against the built-in shapes plus learned gestures.
func loadRecognizer() (*recognizer.Recognizer, []models.GestureConfig, error) {
	saved, err := gestures.LoadGestures()
	if err != nil {
		return nil, nil, err
	}
	lib, err := gestures.Library(saved)
	if err != nil {
		return nil, nil, err
	}
	rec, err := recognizer.New(lib)
	if err != nil {
		return nil, nil, err
	}
	return rec, saved, nil
}

// checkLabel rejects labels a stored gesture cannot use.
func checkLabel(label string) error {
	switch label {
	case "":
		return errors.New("gesture label must not be empty")
	case models.LabelTooShort:
		return fmt.Errorf("%q is reserved for strokes too short to match", label)
	}
	return nil
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&stdinFormat, "format", "text", "stdin encoding: text, json or yaml")
}
