// Package progress defines the sink that long-running computations use to
// report periodic completion updates. Trackers are purely observational
// and must never influence the computation that feeds them.
package progress

// Tracker receives "current of total" updates from a computation and a
// completion signal once the computation finishes.
type Tracker interface {
	// Report records that current units of work have completed so far.
	Report(current int)

	// End signals that the computation has finished.
	End()
}

// Null is a Tracker that discards all updates.
type Null struct{}

func (Null) Report(int) {}
func (Null) End()       {}

// OrNull returns t, or a Null tracker when t is nil, so computations can
// report unconditionally.
func OrNull(t Tracker) Tracker {
	if t == nil {
		return Null{}
	}
	return t
}
