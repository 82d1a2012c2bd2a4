package desim

import "runtime"

// Task is the coroutine handle bound to a running actor: the capability to
// resume or destroy its suspended goroutine. It is never constructed by
// user code directly; Spawn and SpawnValue create one per actor and pass it
// to the actor function so the body can call Await.
//
// An actor's goroutine alternates between two phases: running user code
// (the goroutine owns control, nothing else touches Task's channels) and
// parked on <-wake (waiting for the Scheduler, via some Event's process, to
// resume it). Exactly one goroutine is ever doing the former at a time —
// that invariant is what lets desim behave like a single-threaded
// cooperative scheduler despite actors being real goroutines.
type Task struct {
	sched      *Scheduler
	completion Awaitable

	wake   chan struct{}
	parked chan struct{}

	aborted  bool
	panicVal any
}

func newTask(sched *Scheduler, completion Awaitable) *Task {
	return &Task{
		sched:      sched,
		completion: completion,
		wake:       make(chan struct{}),
		parked:     make(chan struct{}),
	}
}

// Await suspends the calling task until ev is processed. If ev is already
// Processed, Await returns immediately without suspending. Otherwise the
// task registers itself as an observer
// of ev and hands control back to whoever resumed it, blocking until it is
// woken again.
//
// If this task's own completion event is aborted while it is suspended,
// the next time anything would resume it, the goroutine unwinds instead of
// continuing — this is how aborting an actor's completion event cancels
// the actor body itself, lazily, at its next suspension point.
func (t *Task) Await(ev Awaitable) {
	if ev.Processed() {
		return
	}

	ev.registerObserver(t)

	t.parked <- struct{}{}
	<-t.wake

	if t.aborted {
		runtime.Goexit()
	}
}

// AwaitValue suspends the calling task until ev is processed, then returns
// its payload. A ValueEvent's payload is always set no later than the
// moment it becomes Processed, so the returned error is always nil on a
// normal return; it exists purely so a caller who bypasses that guarantee
// still gets a typed failure instead of a silent zero value.
func AwaitValue[V any](t *Task, ev *ValueEvent[V]) (V, error) {
	t.Await(ev)
	return ev.Value()
}

// resume is called by Event.process for every task that suspended on it.
// It hands control to the task's goroutine and blocks until that goroutine
// either suspends again or finishes, so that no other observer or callback
// runs while this one is active.
func (t *Task) resume() {
	if t.completion.Aborted() {
		t.aborted = true
	}

	t.wake <- struct{}{}
	<-t.parked

	if t.panicVal != nil {
		pv := t.panicVal
		t.panicVal = nil
		panic(pv)
	}
}

// destroyNow is called by Event.Abort for every task registered on the
// aborted event, and by Scheduler.Shutdown for every task still alive when
// the scheduler is torn down. Unlike resume, it unconditionally marks the
// task aborted and never re-raises a panic: an abort unwinds the actor
// silently, without raising an error at the abort site.
func (t *Task) destroyNow() {
	t.aborted = true
	t.wake <- struct{}{}
	<-t.parked
}

// spawnTask creates and tracks a Task bound to completion, schedules its
// implicit initial Timeout(0) so that spawning never reenters the body
// synchronously, and starts body running in its own goroutine.
func spawnTask(sched *Scheduler, completion Awaitable, body func(t *Task)) *Task {
	t := newTask(sched, completion)
	sched.trackTask(t)

	bootstrap, _ := sched.Timeout(0)
	bootstrap.registerObserver(t)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.panicVal = r
			}
			sched.untrackTask(t)
			t.parked <- struct{}{}
		}()

		<-t.wake
		if t.aborted {
			runtime.Goexit()
		}

		body(t)
	}()

	return t
}

// Spawn starts fn as an actor whose completion is represented by the
// returned Event: it becomes Triggered when fn returns nil, and is left
// Pending forever if fn returns a non-nil error — unless
// Scheduler.AbortOnError is set, in which case it is aborted instead.
func Spawn(sched *Scheduler, fn func(sched *Scheduler, t *Task) error) *Event {
	completion := sched.Event()

	spawnTask(sched, completion, func(t *Task) {
		err := fn(sched, t)
		if t.aborted {
			return
		}

		if err != nil {
			if sched.AbortOnError {
				completion.Abort()
			}
			return
		}

		completion.Trigger()
	})

	return completion
}

// SpawnValue starts fn as a value-returning actor. Its completion event
// carries the value fn returns on success, following the same error policy
// as Spawn.
func SpawnValue[V any](sched *Scheduler, fn func(sched *Scheduler, t *Task) (V, error)) *ValueEvent[V] {
	completion := EventValue[V](sched)

	spawnTask(sched, completion, func(t *Task) {
		value, err := fn(sched, t)
		if t.aborted {
			return
		}

		if err != nil {
			if sched.AbortOnError {
				completion.Abort()
			}
			return
		}

		completion.Trigger(value)
	})

	return completion
}
