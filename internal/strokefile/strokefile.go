// Package strokefile reads strokes written as point lists.
//
// Three encodings are understood:
//
//	JSON  [{"x": 1, "y": 2}, ...] or [[1, 2], ...]
//	YAML  - {x: 1, y: 2}           or - [1, 2]
//	Text  one "x y" or "x,y" pair per line, '#' starts a comment
package strokefile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ThatOtherAndrew/sigil/internal/models"
)

type Format int

const (
	Text Format = iota
	JSON
	YAML
)

var ErrBadPoint = errors.New("point needs exactly two finite coordinates")

// coords is a point as written in a file. Both fields must be present.
type coords struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

func (c coords) point() (models.Point, error) {
	if c.X == nil || c.Y == nil {
		return models.Point{}, ErrBadPoint
	}
	return pair([]float64{*c.X, *c.Y})
}

func pair(xy []float64) (models.Point, error) {
	if len(xy) != 2 {
		return models.Point{}, ErrBadPoint
	}
	for _, v := range xy {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Point{}, ErrBadPoint
		}
	}
	return models.Point{X: xy[0], Y: xy[1]}, nil
}

// FormatOf picks the encoding from a file extension. Unknown extensions
// are read as text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}

func Load(path string) ([]models.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening stroke")
	}
	defer f.Close()

	points, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return points, nil
}

func Decode(r io.Reader, format Format) ([]models.Point, error) {
	switch format {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	default:
		return decodeText(r)
	}
}

func decodeJSON(r io.Reader) ([]models.Point, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding JSON stroke")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decoding JSON stroke: trailing data after point list")
	}

	points := make([]models.Point, 0, len(raw))
	for i, msg := range raw {
		p, err := decodeJSONPoint(bytes.TrimSpace(msg))
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		points = append(points, p)
	}
	return points, nil
}

func decodeJSONPoint(msg []byte) (models.Point, error) {
	if bytes.HasPrefix(msg, []byte("[")) {
		var xy []float64
		if err := json.Unmarshal(msg, &xy); err != nil {
			return models.Point{}, err
		}
		return pair(xy)
	}
	if !bytes.HasPrefix(msg, []byte("{")) {
		return models.Point{}, ErrBadPoint
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()
	var c coords
	if err := dec.Decode(&c); err != nil {
		return models.Point{}, err
	}
	return c.point()
}

func decodeYAML(r io.Reader) ([]models.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading YAML stroke")
	}

	var maps []coords
	if err := yaml.UnmarshalStrict(data, &maps); err == nil {
		points := make([]models.Point, 0, len(maps))
		for i, c := range maps {
			p, err := c.point()
			if err != nil {
				return nil, errors.Wrapf(err, "point %d", i)
			}
			points = append(points, p)
		}
		return points, nil
	}

	var pairs [][]float64
	if err := yaml.UnmarshalStrict(data, &pairs); err != nil {
		return nil, errors.Wrap(err, "decoding YAML stroke")
	}
	points := make([]models.Point, 0, len(pairs))
	for i, xy := range pairs {
		p, err := pair(xy)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		points = append(points, p)
	}
	return points, nil
}

func decodeText(r io.Reader) ([]models.Point, error) {
	var points []models.Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		xy := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			xy[i] = v
		}
		p, err := pair(xy)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading text stroke")
	}
	return points, nil
}
