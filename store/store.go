// Package store implements a bounded FIFO queue of values on top of desim:
// actors Put values in and Get them back out, suspending on either side
// when the store is empty or full.
package store

import "github.com/cortado-sim/desim/desim"

// Unbounded is the capacity to pass to New for a store with no upper
// bound on how many values it can hold at once.
const Unbounded = ^uint64(0)

type pendingPut[T any] struct {
	ev    *desim.Event
	value T
}

// Store[T] holds values of type T, handed out in the order they were put
// in, with Get and Put each suspending until their side of the handoff is
// possible.
type Store[T any] struct {
	sched    *desim.Scheduler
	capacity uint64

	values []T

	gets []*desim.ValueEvent[T]
	puts []pendingPut[T]
}

// New creates an empty Store with the given capacity. Pass Unbounded for a
// store that never blocks a Put.
func New[T any](sched *desim.Scheduler, capacity uint64) *Store[T] {
	return &Store[T]{sched: sched, capacity: capacity}
}

// Get removes and returns the next value in the store. The returned event
// is Processed with that value once one is available, which may be
// immediately.
func (s *Store[T]) Get() *desim.ValueEvent[T] {
	ev := desim.EventValue[T](s.sched)
	ev.AddCallback(func() { s.triggerPuts() })

	s.gets = append(s.gets, ev)
	s.triggerGets()

	return ev
}

// Put adds value to the store. The returned event is Processed once the
// store has room and the value has been added, which may be immediately.
func (s *Store[T]) Put(value T) *desim.Event {
	ev := s.sched.Event()
	ev.AddCallback(func() { s.triggerGets() })

	s.puts = append(s.puts, pendingPut[T]{ev: ev, value: value})
	s.triggerPuts()

	return ev
}

// Len reports how many values are currently held in the store.
func (s *Store[T]) Len() int {
	return len(s.values)
}

func (s *Store[T]) triggerGets() {
	for len(s.values) > 0 && len(s.gets) > 0 {
		ev := s.gets[0]
		s.gets = s.gets[1:]

		if ev.Aborted() {
			continue
		}

		ev.Trigger(s.values[0])
		s.values = s.values[1:]
	}
}

func (s *Store[T]) triggerPuts() {
	for uint64(len(s.values)) < s.capacity && len(s.puts) > 0 {
		p := s.puts[0]
		s.puts = s.puts[1:]

		if p.ev.Aborted() {
			continue
		}

		s.values = append(s.values, p.value)
		p.ev.Trigger()
	}
}
