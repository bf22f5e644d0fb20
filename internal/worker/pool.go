// Package worker runs submission assessments in parallel. Scoring is pure
// and stateless, so independent submissions can be processed concurrently
// against one corpus snapshot with no shared mutable state beyond the
// sequence table, which serializes internally.
package worker

import (
	"context"
	"sync"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Assessor scores one submission against a fixed corpus snapshot.
type Assessor interface {
	Assess(sub model.Submission, corpus []model.Record) (*model.Record, error)
}

// Outcome is the result of assessing one submission. Outcomes keep the
// input order regardless of completion order.
type Outcome struct {
	Submission model.Submission
	Record     *model.Record
	Err        error
}

// Pool bounds how many assessments run at once.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given concurrency.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run assesses every submission against the same corpus snapshot and returns
// one outcome per submission, in input order. A cancelled context marks the
// remaining submissions with the context error instead of scoring them.
func (p *Pool) Run(ctx context.Context, assessor Assessor, subs []model.Submission, corpus []model.Record) []Outcome {
	outcomes := make([]Outcome, len(subs))
	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, sub := range subs {
		wg.Add(1)
		go func(idx int, s model.Submission) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				outcomes[idx] = Outcome{Submission: s, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			record, err := assessor.Assess(s, corpus)
			outcomes[idx] = Outcome{Submission: s, Record: record, Err: err}
		}(i, sub)
	}

	wg.Wait()
	return outcomes
}
