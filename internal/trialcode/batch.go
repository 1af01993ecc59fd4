package trialcode

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"trialcode/internal/record"
	"trialcode/internal/textcode"
)

// Result is the outcome for one record of a batch.
type Result struct {
	Index int
	Code  textcode.Code
	Err   error
}

// EncodeBatch encodes recs with at most workers goroutines and returns one
// result per record in input order. A workers value of zero or less uses
// GOMAXPROCS. Rejections are reported per result; only ctx cancellation
// stops the batch early, in which case the returned error is ctx.Err() and
// records not yet started carry it as their error.
func EncodeBatch(ctx context.Context, recs []record.RaceRecord, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(recs))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := range recs {
		results[i].Index = i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i].Code, results[i].Err = Encode(recs[i])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
