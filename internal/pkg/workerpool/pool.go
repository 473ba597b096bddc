package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Index int
	Err   error
}

// Pool runs submitted tasks on a fixed number of goroutines. Submit blocks
// once the buffer is full, so Run must be started first for unbuffered pools.
type Pool struct {
	workers int
	tasks   chan indexedTask
	wg      sync.WaitGroup
	mu      sync.Mutex
	next    int
	closed  bool
}

type indexedTask struct {
	index int
	fn    Task
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan indexedTask, buffer),
	}
}

// Submit enqueues t and returns its submission index, or -1 when the pool
// is closed or t is nil.
func (p *Pool) Submit(t Task) int {
	if p == nil || t == nil {
		return -1
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return -1
	}
	idx := p.next
	p.next++
	p.mu.Unlock()

	p.tasks <- indexedTask{index: idx, fn: t}
	return idx
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// Run starts the workers. The returned channel is closed once every task has
// finished or ctx is done.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					err := t.fn(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Index: t.index, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// Each calls fn for every index in [0, n) on at most workers goroutines and
// returns the first error by index.
func Each(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	p := New(workers, n)
	results := p.Run(ctx)
	for i := 0; i < n; i++ {
		p.Submit(func(ctx context.Context) error { return fn(ctx, i) })
	}
	p.Close()

	errs := make([]error, n)
	done := 0
	for r := range results {
		errs[r.Index] = r.Err
		done++
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	if done < n {
		return ctx.Err()
	}
	return nil
}
