package update

import (
	"context"
	"fmt"
)

// Pending is the handle of a check running on its own goroutine.
type Pending struct {
	done   chan struct{}
	result Result
	err    error
}

// Done is closed once the check has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the check finishes and returns its result, or the
// failure it raised. Later calls return the same values.
func (p *Pending) Wait() (Result, error) {
	<-p.done
	return p.result, p.err
}

// CheckAsync schedules exactly one Check on a new goroutine and returns
// immediately. Failures are deferred to Wait. There is no retry and no
// way to cancel a scheduled check; ctx only reaches the fetcher.
func (c *Checker) CheckAsync(ctx context.Context, repoRef, localVersion string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.result = Result{}
				p.err = fmt.Errorf("update check panicked: %v", r)
			}
		}()
		p.result, p.err = c.Check(ctx, repoRef, localVersion)
	}()
	return p
}

// CheckUpdateAsync runs CheckAsync with the default github.com Checker.
func CheckUpdateAsync(ctx context.Context, repoRef, localVersion string) *Pending {
	return defaultChecker().CheckAsync(ctx, repoRef, localVersion)
}
