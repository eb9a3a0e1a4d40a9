package internal

import (
	"fmt"
	"runtime/debug"
)

// NumWorkers determines how many worker slots are worth dispatching for a
// range of dist elements processed in chunks of chunksize, given a pool with
// poolSize workers. The calling goroutine counts as one extra worker, and
// every worker needs at least two chunks of work to justify its dispatch.
func NumWorkers(dist, chunksize, poolSize int) int {
	workers := dist / (2 * chunksize)
	if workers > poolSize+1 {
		workers = poolSize + 1
	}
	return workers
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
