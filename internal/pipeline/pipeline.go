// Package pipeline runs batches of call records through the metrics engine.
package pipeline

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/processor"
	"call-metrics-go/internal/types"
)

// DefaultConcurrency is used when Run is given a concurrency below 1.
const DefaultConcurrency = 4

// Run analyzes records with at most concurrency in flight and returns one
// result per record, in input order. A record that fails analysis carries
// its error in KPIResult.Error and does not stop the batch. Run only returns
// an error when ctx is done before every record started.
func Run(ctx context.Context, a processor.Analyzer, records []types.CallRecord, concurrency int, log *logger.Logger) ([]processor.KPIResult, error) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	entry := log.WithComponent("pipeline")
	results := make([]processor.KPIResult, len(records))
	var failed atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	started := 0
	for i, rec := range records {
		if egCtx.Err() != nil {
			break
		}
		started++
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := processor.ProcessTranscript(a, rec.CallID, rec.ToTranscript())
			if err != nil {
				failed.Add(1)
				entry.WithError(err).WithField("call_id", res.CallID).Warn("call analysis failed")
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	if started < len(records) {
		return results, ctx.Err()
	}
	entry.WithField("calls", len(records)).WithField("failed", failed.Load()).Info("batch complete")
	return results, nil
}
