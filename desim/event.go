package desim

// eventState is one position in the four-state lifecycle of an Event:
//
//	Pending ──trigger()──▶ Triggered ──process()──▶ Processed
//	   │
//	   └──abort()──▶ Aborted
type eventState int

const (
	statePending eventState = iota
	stateTriggered
	stateProcessed
	stateAborted
)

// Event is a shared synchronization primitive with a four-state lifecycle.
// Tasks can suspend on it (Task.Await), callers can trigger, abort, or add
// callbacks to it, and the Scheduler alone may process it. Many holders may
// reference the same *Event; ownership is shared freely since Go's garbage
// collector keeps it alive for as long as any holder does.
type Event struct {
	// ID identifies the event for logging and tracing.
	ID string

	sched *Scheduler
	state eventState

	// observers are tasks suspended on this event via Task.Await, in the
	// order they suspended.
	observers []*Task

	// callbacks are plain closures added with AddCallback, in registration
	// order. They run after every observer has been resumed.
	callbacks []func()
}

// Pending reports whether the event has not yet been triggered or aborted.
func (e *Event) Pending() bool {
	return e.state == statePending
}

// Triggered reports whether the event is Triggered or Processed.
func (e *Event) Triggered() bool {
	return e.state == stateTriggered || e.state == stateProcessed
}

// Processed reports whether the scheduler has delivered this event.
func (e *Event) Processed() bool {
	return e.state == stateProcessed
}

// Aborted reports whether the event was cancelled while Pending.
func (e *Event) Aborted() bool {
	return e.state == stateAborted
}

// Trigger moves a Pending event to Triggered and schedules it to be
// processed at the scheduler's current time. It is a no-op on a non-Pending
// event.
func (e *Event) Trigger() {
	if !e.Pending() {
		return
	}

	e.state = stateTriggered
	e.sched.schedule(e, 0)
}

// TriggerDelayed schedules a Pending event to be processed after delay.
// Unlike Trigger, the event's state stays Pending until the scheduler
// actually dequeues and processes it. It is a no-op on a non-Pending event,
// and fails with ErrInvalidDelay if delay is negative.
func (e *Event) TriggerDelayed(delay VTime) error {
	if !e.Pending() {
		return nil
	}

	if delay < 0 {
		return ErrInvalidDelay
	}

	e.sched.schedule(e, delay)
	return nil
}

// Abort cancels a Pending event: it becomes terminal, every task suspended
// on it is destroyed immediately (their goroutines are unwound before Abort
// returns), and its callback list is dropped. It is a no-op on a
// non-Pending event.
func (e *Event) Abort() {
	if !e.Pending() {
		return
	}

	e.state = stateAborted

	observers := e.observers
	e.observers = nil
	e.callbacks = nil

	for _, t := range observers {
		t.destroyNow()
	}
}

// AddCallback appends cb to the event's callback list. Callbacks registered
// on a Processed or Aborted event are silently discarded; one registered
// while Triggered runs at the next process().
func (e *Event) AddCallback(cb func()) {
	if e.Processed() || e.Aborted() {
		return
	}

	e.callbacks = append(e.callbacks, cb)
}

// registerObserver adds t to this event's observer list, unless the event
// is already terminal (invariant: observers registered on a Processed or
// Aborted event are never queued — they simply never resume).
func (e *Event) registerObserver(t *Task) {
	if e.Processed() || e.Aborted() {
		return
	}

	e.observers = append(e.observers, t)
}

// process is called only by the Scheduler. If the event is Pending or
// Triggered, it becomes Processed, every observer is resumed in the order
// it suspended, and then every callback runs in registration order.
func (e *Event) process() {
	if e.Processed() || e.Aborted() {
		return
	}

	e.state = stateProcessed

	observers := e.observers
	e.observers = nil
	callbacks := e.callbacks
	e.callbacks = nil

	for _, t := range observers {
		t.resume()
	}

	for _, cb := range callbacks {
		cb()
	}
}

// Or is the pairwise shorthand for AnyOf.
func (e *Event) Or(other Awaitable) *Event {
	return AnyOf(e.sched, e, other)
}

// And is the pairwise shorthand for AllOf.
func (e *Event) And(other Awaitable) *Event {
	return AllOf(e.sched, e, other)
}
