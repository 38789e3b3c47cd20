package service

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Service is implemented by the long-running components of the toolkit.
type Service interface {
	Name() string

	// Run executes the service and blocks until the context gets
	// cancelled or an error occurs.
	Run(context.Context) error
}

// Group runs a set of services as a unit: the first service failure
// cancels all others and the combined errors are reported to the caller.
type Group []Service

// Run executes all services in the group using the provided context and
// blocks until every service has returned.
func (g Group) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		errC = make(chan error, len(g))
	)
	wg.Add(len(g))
	for _, svc := range g {
		go func(svc Service) {
			defer wg.Done()
			if err := svc.Run(runCtx); err != nil {
				errC <- xerrors.Errorf("%s: %w", svc.Name(), err)
				cancel()
			}
		}(svc)
	}

	<-runCtx.Done()
	wg.Wait()
	close(errC)

	var err error
	for svcErr := range errC {
		err = multierror.Append(err, svcErr)
	}
	return err
}
