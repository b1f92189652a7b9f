package recognizer

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/ThatOtherAndrew/sigil/internal/models"
)

// RecognizeAll recognizes every stroke with at most workers running at once.
// Results line up with strokes. If ctx is cancelled no new strokes are
// started and ctx's error is returned once running work has finished.
func (r *Recognizer) RecognizeAll(ctx context.Context, strokes [][]models.Point, workers int64) ([]models.Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]models.Result, len(strokes))
	sem := semaphore.NewWeighted(workers)

	var scheduleErr error
	for i := range strokes {
		if err := ctx.Err(); err != nil {
			scheduleErr = err
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			scheduleErr = err
			break
		}
		go func(i int) {
			defer sem.Release(1)
			results[i] = r.Recognize(strokes[i])
		}(i)
	}

	// Wait for all goroutines to finish
	if err := sem.Acquire(context.Background(), workers); err != nil {
		return nil, err
	}
	if scheduleErr != nil {
		return nil, scheduleErr
	}
	return results, nil
}
