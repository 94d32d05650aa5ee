// Package workerpool scores submissions concurrently. Submissions are
// independent, so the batch may fan out; results land in index-addressed
// slots, so the output order is identical for any worker count.
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/scoring"
)

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the number of scoring goroutines. 1 gives the strictly
// sequential reference behavior.
func WithWorkers(count int) Option {
	return func(p *Pool) {
		if count > 0 {
			p.workers = count
		}
	}
}

// Pool fans submission scoring out over a bounded set of goroutines.
type Pool struct {
	scorer  scoring.Scorer
	workers int
}

// NewPool creates a Pool over the given scorer.
func NewPool(scorer scoring.Scorer, opts ...Option) *Pool {
	p := &Pool{
		scorer:  scorer,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ScoreAll scores every submission and returns results in input order.
// The computation never suspends; ctx only short-circuits job dispatch when
// the caller is already gone.
func (p *Pool) ScoreAll(ctx context.Context, subs []model.Submission) []scoring.Result {
	results := make([]scoring.Result, len(subs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.scorer.Score(scoring.Input{
					SubmissionID: subs[i].ID,
					Reviews:      subs[i].Reviews,
				})
			}
		}()
	}

	for i := range subs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
