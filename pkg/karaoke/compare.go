package karaoke

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Compare extracts features for the reference and candidate tracks and
// scores the candidate against the reference.
//
// The two extractions have no data dependency and run concurrently on a
// pool bounded by the engine's worker limit. Either failure aborts the
// comparison; no partial score is produced. Callers should bound total
// wait time with a context deadline.
func (e *Engine) Compare(ctx context.Context, refPath, candPath string) (int, error) {
	var ref, cand *FeatureRecord

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	g.Go(func() error {
		var err error
		ref, err = e.Extract(ctx, refPath)
		return err
	})
	g.Go(func() error {
		var err error
		cand, err = e.Extract(ctx, candPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	score := Score(ref, cand)
	e.log.Info("scored performance",
		"reference", refPath,
		"candidate", candPath,
		"score", score)
	return score, nil
}
