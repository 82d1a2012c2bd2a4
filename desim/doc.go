// Package desim implements a deterministic, single-threaded discrete-event
// simulation kernel. Simulated actors are goroutines ("tasks") that suspend
// on Events instead of running to completion; the Scheduler resumes them in
// a strict (time, seq) order so that two runs over the same program always
// observe the same interleaving.
//
// The kernel has four moving parts: the Scheduler (simulated clock and event
// heap), the Event (a four-state synchronization primitive with observers),
// the ValueEvent (an Event carrying a payload), and the Task (the binding
// that turns an actor function into an Event representing its completion).
// AnyOf and AllOf combine sets of events into a derived Event.
package desim
