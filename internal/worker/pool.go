package worker

import (
	"context"
	"sync"
)

// Pool runs blocking jobs on a fixed set of workers so that long extraction
// runs never occupy the goroutines serving chat updates. The submitting
// goroutine parks until its job finishes or its context is cancelled.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{jobs: make(chan func())}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Do dispatches fn to a worker and waits for it. When ctx is cancelled
// before a worker becomes free, the job is never started; cancellation
// after dispatch returns early but lets the job run to completion.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	select {
	case p.jobs <- func() { done <- fn() }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs and waits for running ones to finish.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
