package desim

// VTime is simulated time, measured in seconds. It never reflects wall-clock
// time; it only advances when the Scheduler processes an event.
type VTime float64

// Awaitable is anything a Task can suspend on with Task.Await: it reports
// its own state and accepts a callback to run once it settles into the
// Processed state. *Event and *ValueEvent[V] both implement it.
//
// registerObserver is deliberately unexported: only desim's own Event and
// ValueEvent are meant to satisfy this interface, so combinators and
// Task.Await can reach into the shared state machine they both build on.
type Awaitable interface {
	Pending() bool
	Triggered() bool
	Processed() bool
	Aborted() bool
	AddCallback(cb func())

	registerObserver(t *Task)
}
