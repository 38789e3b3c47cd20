// Package workers provides the per-node work distribution primitive used
// by the parallel centrality computations.
package workers

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// ForEach invokes fn once for every value in [0, n), distributing the
// calls across a fixed pool of numWorkers goroutines. The worker index in
// [0, numWorkers) is passed to fn so callers can maintain per-worker
// accumulators that get merged after ForEach returns.
//
// ForEach blocks until every value has been processed. Errors returned by
// fn do not stop the remaining workers; all collected errors are combined
// into the returned error. A numWorkers value less than 1 is treated as 1.
func ForEach(n, numWorkers int, fn func(worker, value int) error) error {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var (
		wg     sync.WaitGroup
		valueC = make(chan int)
		errC   = make(chan error, numWorkers)
	)

	wg.Add(numWorkers)
	for worker := 0; worker < numWorkers; worker++ {
		go func(worker int) {
			defer wg.Done()
			for value := range valueC {
				if err := fn(worker, value); err != nil {
					emitError(err, errC)
				}
			}
		}(worker)
	}

	for value := 0; value < n; value++ {
		valueC <- value
	}
	close(valueC)
	wg.Wait()
	close(errC)

	var err error
	for workerErr := range errC {
		err = multierror.Append(err, workerErr)
	}
	return err
}

func emitError(err error, errC chan<- error) {
	select {
	case errC <- err:
	default: // error channel is full.
	}
}
