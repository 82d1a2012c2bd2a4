// Package resource implements a counted semaphore on top of desim: a fixed
// number of interchangeable units that actors request and release.
package resource

import "github.com/cortado-sim/desim/desim"

// Resource is a counted semaphore: Available() units are held in reserve,
// and each successful Request consumes one until a matching Release gives
// it back. Requests are granted strictly in the order they were made.
//
// A Resource is not safe to share across more than one active actor at a
// time in the sense of Go memory safety either: like every desim type, it
// relies on the scheduler's single-active-goroutine invariant rather than
// its own locking.
type Resource struct {
	sched     *desim.Scheduler
	available uint64

	// pending holds requests still waiting for a unit, in request order.
	pending []*desim.Event
}

// New creates a Resource with the given number of interchangeable units
// available immediately.
func New(sched *desim.Scheduler, available uint64) *Resource {
	return &Resource{sched: sched, available: available}
}

// Available reports how many units are currently unclaimed.
func (r *Resource) Available() uint64 {
	return r.available
}

// Request asks for one unit of the resource. The returned event is
// Processed once a unit has been granted, which may be immediately. A
// caller that gives up waiting should Abort the returned event (a renege);
// an aborted request is skipped when its turn comes and never consumes a
// unit.
func (r *Resource) Request() *desim.Event {
	ev := r.sched.Event()
	r.pending = append(r.pending, ev)
	r.grantPending()
	return ev
}

// Release returns one unit to the pool and immediately grants it to the
// next non-reneged waiter, if any.
func (r *Resource) Release() {
	r.available++
	r.grantPending()
}

// grantPending hands out units to queued requests, in request order, for
// as long as units remain and requests are waiting.
func (r *Resource) grantPending() {
	for r.available > 0 && len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]

		if ev.Aborted() {
			continue
		}

		ev.Trigger()
		r.available--
	}
}
