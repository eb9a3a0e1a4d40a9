// Package forkjoin provides a fixed-size fork-join worker pool.
//
// A Pool owns a set of persistent worker goroutines. Run dispatches a closure
// across a number of worker slots and blocks the calling goroutine until all
// slots have finished, so every call forms a fork-join barrier. The pool is
// intended to be created once and shared across many calls; it keeps no state
// between calls.
package forkjoin

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cr-marcstevens/go-parallel-algorithms/internal"
)

// Pool is a fixed-size fork-join executor. The zero value is not usable; use
// New.
type Pool struct {
	size    int
	tasks   chan func()
	workers sync.WaitGroup
}

// New returns a pool with the given number of persistent worker goroutines.
//
// If size is 0 or negative, runtime.NumCPU()-1 workers are used, leaving one
// CPU for the calling goroutine, which participates in every Run as the last
// worker slot.
func New(size int) *Pool {
	if size <= 0 {
		if size = runtime.NumCPU() - 1; size < 1 {
			size = 1
		}
	}
	p := &Pool{
		size:  size,
		tasks: make(chan func()),
	}
	p.workers.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.workers.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Size returns the number of persistent workers in the pool, not counting the
// calling goroutine.
func (p *Pool) Size() int {
	return p.size
}

// Run invokes body(worker, n) for every worker slot 0 <= worker < n and
// returns only when all invocations have finished. Slot n-1 runs on the
// calling goroutine, so a pool of size s runs up to s+1 slots truly in
// parallel. If n is 0, p.Size()+1 slots are used. Run panics if n is
// negative.
//
// If one or more body invocations panic, the corresponding workers recover
// the panics, and Run panics with the left-most recovered panic value after
// the barrier.
//
// A body must not call Run on the same pool: the pool is fixed-size, and a
// nested barrier could wait on slots that no free worker can ever pick up.
func (p *Pool) Run(n int, body func(worker, nworkers int)) {
	switch {
	case n == 0:
		n = p.size + 1
	case n < 0:
		panic(fmt.Sprintf("invalid number of worker slots: %v", n))
	}
	panics := make([]interface{}, n)
	invoke := func(worker int) {
		defer func() {
			panics[worker] = internal.WrapPanic(recover())
		}()
		body(worker, n)
	}
	var barrier sync.WaitGroup
	barrier.Add(n - 1)
	for i := 0; i < n-1; i++ {
		worker := i
		p.tasks <- func() {
			defer barrier.Done()
			invoke(worker)
		}
	}
	invoke(n - 1)
	barrier.Wait()
	for _, pan := range panics {
		if pan != nil {
			panic(pan)
		}
	}
}

// Close shuts down the worker goroutines and waits for them to exit. It must
// not be called concurrently with Run, and the pool cannot be used
// afterwards.
func (p *Pool) Close() {
	close(p.tasks)
	p.workers.Wait()
}
