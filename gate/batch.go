// SPDX-License-Identifier: MIT

package gate

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SubmitBatch validates ts concurrently with at most workers goroutines
// (workers < 1 means GOMAXPROCS). Results are returned in input order.
//
// Tier failures do not stop the batch. Cancelling ctx stops scheduling new
// transitions and SubmitBatch returns ctx.Err() with no results.
func (p *Pipeline) SubmitBatch(ctx context.Context, ts []Transition, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := p.opts.logger.With("batch_id", uuid.NewString())

	out := make([]Result, len(ts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range ts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := ts[i]
			out[i] = p.SubmitTransition(t.Source, t.Target, t.ContextID, t.Depth)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Info("batch cancelled", "size", len(ts), "error", err)

		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Info("batch cancelled", "size", len(ts), "error", err)

		return nil, err
	}

	accepted := 0
	for _, r := range out {
		if r.Accepted {
			accepted++
		}
	}
	log.Info("batch done", "size", len(ts), "accepted", accepted, "workers", workers)

	return out, nil
}
