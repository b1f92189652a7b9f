package recognizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/ThatOtherAndrew/sigil/internal/recognizer"
)

func batchStrokes() [][]models.Point {
	var strokes [][]models.Point
	for i := 0; i < 4; i++ {
		f := float64(i + 1)
		strokes = append(strokes,
			circleStroke(10*f, 20*f, 5*f, 40+i),
			squareStroke(-f, f, 3*f, 6+i),
			triangleStroke(f, -f, 7*f, 8+i),
			circleStroke(0, 0, f, 5),
		)
	}
	return strokes
}

// TestRecognizeAll checks results line up with their strokes for several
// worker counts.
func TestRecognizeAll(t *testing.T) {
	rec := recognizer.Default()
	strokes := batchStrokes()

	want := make([]models.Result, len(strokes))
	for i, s := range strokes {
		want[i] = rec.Recognize(s)
	}

	for _, workers := range []int64{0, 1, 3, 64} {
		got, err := rec.RecognizeAll(context.Background(), strokes, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

// TestRecognizeAll_Empty verifies an empty batch is not an error.
func TestRecognizeAll_Empty(t *testing.T) {
	got, err := recognizer.Default().RecognizeAll(context.Background(), nil, 2)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

// TestRecognizeAll_Cancelled verifies a cancelled context stops the batch.
func TestRecognizeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := recognizer.Default().RecognizeAll(ctx, batchStrokes(), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
