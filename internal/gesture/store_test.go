package gestures_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/sigil/internal/config"
	gestures "github.com/ThatOtherAndrew/sigil/internal/gesture"
	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/recognizer"
	"github.com/ThatOtherAndrew/sigil/internal/templates"
)

func useDir(t *testing.T) {
	t.Helper()
	config.SetDir(t.TempDir())
	t.Cleanup(func() { config.SetDir("") })
}

// wave is a sine stroke, unlike any built-in shape.
func wave(amplitude float64) []models.Point {
	pts := make([]models.Point, 40)
	for i := range pts {
		x := float64(i)
		pts[i] = models.Point{X: x * 5, Y: amplitude * math.Sin(x/39*4*math.Pi)}
	}
	return pts
}

// TestStore_RoundTrip saves, rebinds and removes gestures.
func TestStore_RoundTrip(t *testing.T) {
	useDir(t)

	saved, err := gestures.LoadGestures()
	require.NoError(t, err)
	assert.Empty(t, saved)

	require.NoError(t, gestures.SaveGesture("wave", "notify-send hi", [][]models.Point{wave(30), wave(40)}))
	require.NoError(t, gestures.BindCommand(templates.Circle, "firefox"))

	saved, err = gestures.LoadGestures()
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "wave", saved[0].Label)
	assert.Equal(t, "notify-send hi", saved[0].Command)
	assert.Len(t, saved[0].Templates, 2)
	assert.Equal(t, models.GestureConfig{Label: templates.Circle, Command: "firefox"}, saved[1])

	// Relearning without a command keeps the old binding.
	require.NoError(t, gestures.SaveGesture("wave", "", [][]models.Point{wave(35)}))
	saved, err = gestures.LoadGestures()
	require.NoError(t, err)
	assert.Equal(t, "notify-send hi", saved[0].Command)
	assert.Len(t, saved[0].Templates, 1)

	require.NoError(t, gestures.RemoveGesture(templates.Circle))
	saved, err = gestures.LoadGestures()
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	err = gestures.RemoveGesture("nope")
	assert.ErrorIs(t, err, gestures.ErrNotFound)
	assert.Contains(t, err.Error(), "nope")
}

// TestLoadGestures_Corrupt checks a broken file is reported, not ignored.
func TestLoadGestures_Corrupt(t *testing.T) {
	useDir(t)
	path, err := config.GetPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0644))

	_, err = gestures.LoadGestures()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

// TestLibrary adds learned samples after the built-ins.
func TestLibrary(t *testing.T) {
	lib, err := gestures.Library([]models.GestureConfig{
		{Label: "wave", Templates: [][]models.Point{wave(30), {}, wave(40)}},
		{Label: templates.Circle, Command: "firefox"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Len())
	assert.Equal(t, []string{templates.Circle, templates.Square, templates.Triangle, "wave"}, lib.Labels())

	rec, err := recognizer.New(lib)
	require.NoError(t, err)
	res := rec.Recognize(wave(33))
	assert.Equal(t, "wave", res.Label)
	assert.Greater(t, res.Score, 0.9)
}
