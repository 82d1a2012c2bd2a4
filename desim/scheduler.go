package desim

// Scheduler runs a deterministic discrete-event simulation: it holds the
// current simulated time, a min-heap of scheduled events, and the set of
// still-running tasks it is responsible for tearing down. A Scheduler is
// only ever used by one goroutine at a time (its caller, or the single task
// goroutine it has handed control to), and runs events one at a time in a
// single, strictly ordered loop, so it carries none of the locking a
// concurrent scheduler would need.
type Scheduler struct {
	HookableBase

	now   VTime
	queue *eventQueue

	nextSeq uint64
	idGen   IDGenerator

	tasks map[*Task]struct{}

	// AbortOnError controls how an actor's returned error affects its
	// completion event: when true, a non-nil error aborts the
	// completion event instead of leaving it pending forever (the
	// default).
	AbortOnError bool
}

// NewScheduler creates an empty Scheduler at time zero, using a sequential
// IDGenerator.
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: newEventQueue(),
		idGen: NewSequentialIDGenerator(),
		tasks: make(map[*Task]struct{}),
	}
}

// WithIDGenerator overrides the IDGenerator new events are labelled with, and returns the scheduler for chaining.
func (s *Scheduler) WithIDGenerator(g IDGenerator) *Scheduler {
	s.idGen = g
	return s
}

// Now returns the scheduler's current simulated time.
func (s *Scheduler) Now() VTime {
	return s.now
}

// Empty reports whether no event remains scheduled.
func (s *Scheduler) Empty() bool {
	return s.queue.len() == 0
}

// Event creates a new Pending event bound to this scheduler.
func (s *Scheduler) Event() *Event {
	return &Event{ID: s.idGen.Generate(), sched: s}
}

// EventValue creates a new Pending ValueEvent bound to sched, carrying a
// payload of type V.
func EventValue[V any](sched *Scheduler) *ValueEvent[V] {
	return &ValueEvent[V]{Event: sched.Event()}
}

// Timeout creates a Pending event already scheduled to be processed at
// Now()+delay. It fails with ErrInvalidDelay if delay is negative.
func (s *Scheduler) Timeout(delay VTime) (*Event, error) {
	ev := s.Event()
	if err := s.Schedule(ev, delay); err != nil {
		return nil, err
	}

	return ev, nil
}

// TimeoutValue creates a Pending ValueEvent whose payload is already set to
// value, scheduled to be processed at Now()+delay. It fails with
// ErrInvalidDelay if delay is negative.
func TimeoutValue[V any](sched *Scheduler, delay VTime, value V) (*ValueEvent[V], error) {
	ev := EventValue[V](sched)
	ev.value = value
	ev.hasValue = true

	if err := sched.Schedule(ev.Event, delay); err != nil {
		return nil, err
	}

	return ev, nil
}

// Schedule enqueues ev to be processed at Now()+delay, assigning it a fresh
// seq so that events scheduled at the same time process in the order they
// were scheduled. It fails with ErrInvalidDelay if delay is negative; it
// does not otherwise inspect or change ev's state, so it is safe to
// schedule the same event more than once (Trigger and TriggerDelayed both
// rely on this).
func (s *Scheduler) Schedule(ev *Event, delay VTime) error {
	if delay < 0 {
		return ErrInvalidDelay
	}

	s.schedule(ev, delay)
	return nil
}

func (s *Scheduler) schedule(ev *Event, delay VTime) {
	s.queue.push(scheduledEntry{time: s.now + delay, seq: s.nextSeq, evt: ev})
	s.nextSeq++
}

// Step pops the earliest scheduled entry, advances Now() to its time, and
// processes its event. It fails with ErrQueueEmpty if nothing is scheduled.
// A panic raised inside a resumed task propagates out of Step.
func (s *Scheduler) Step() error {
	if s.Empty() {
		return ErrQueueEmpty
	}

	entry := s.queue.pop()
	s.now = entry.time

	hookCtx := HookCtx{Domain: s, Pos: HookPosBeforeEvent, Item: entry.evt}
	s.InvokeHook(hookCtx)

	entry.evt.process()

	hookCtx.Pos = HookPosAfterEvent
	s.InvokeHook(hookCtx)

	return nil
}

// Run steps the scheduler until no event remains scheduled.
func (s *Scheduler) Run() error {
	for !s.Empty() {
		if err := s.Step(); err != nil {
			return err
		}
	}

	return nil
}

// RunUntil steps the scheduler while the next scheduled entry's time is
// strictly before target, then sets Now() to target unconditionally. An
// event scheduled at exactly target is therefore left for the next call. It
// fails with ErrTimeWentBackwards if target is before Now().
func (s *Scheduler) RunUntil(target VTime) error {
	if target < s.now {
		return ErrTimeWentBackwards
	}

	for !s.Empty() && s.queue.peek().time < target {
		if err := s.Step(); err != nil {
			return err
		}
	}

	s.now = target
	return nil
}

// Shutdown destroys every task this scheduler is still tracking: each
// still-suspended actor goroutine is unwound synchronously, the same way
// Event.Abort unwinds the tasks suspended on an aborted event. The tasks'
// completion events are left in whatever state they are in. Call it when a Scheduler is done
// being used and some actors may still be suspended, since nothing else
// tears them down automatically.
func (s *Scheduler) Shutdown() {
	tasks := s.tasks
	s.tasks = make(map[*Task]struct{})

	for t := range tasks {
		t.destroyNow()
	}
}

func (s *Scheduler) trackTask(t *Task) {
	s.tasks[t] = struct{}{}
}

func (s *Scheduler) untrackTask(t *Task) {
	delete(s.tasks, t)
}
