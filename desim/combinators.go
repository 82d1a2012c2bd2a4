package desim

// AnyOf returns a new Pending event that is triggered the moment any one of
// evs is processed. It registers exactly one callback on each input that is
// not yet Processed, so a
// later input firing after the first is a harmless no-op (Trigger is
// idempotent on a non-Pending event). An empty list, or a list where some
// input is already Processed, triggers the result immediately — equivalent
// to a Timeout(0).
//
// Aborted inputs never contribute: if every remaining input is aborted
// before any processes, the result stays Pending forever.
func AnyOf(sched *Scheduler, evs ...Awaitable) *Event {
	out := sched.Event()

	if len(evs) == 0 {
		out.Trigger()
		return out
	}

	for _, ev := range evs {
		if ev.Processed() {
			out.Trigger()
			continue
		}

		ev.AddCallback(func() { out.Trigger() })
	}

	return out
}

// AllOf returns a new Pending event that is triggered once every one of evs
// has processed. An empty list triggers the result immediately. If any
// input is aborted before it processes, it never contributes its decrement,
// so the result never completes.
func AllOf(sched *Scheduler, evs ...Awaitable) *Event {
	out := sched.Event()

	if len(evs) == 0 {
		out.Trigger()
		return out
	}

	remaining := 0
	for _, ev := range evs {
		if !ev.Processed() {
			remaining++
		}
	}

	if remaining == 0 {
		out.Trigger()
		return out
	}

	count := remaining
	for _, ev := range evs {
		if ev.Processed() {
			continue
		}

		ev.AddCallback(func() {
			count--
			if count == 0 {
				out.Trigger()
			}
		})
	}

	return out
}

// AnyOfValue is the typed variant of AnyOf: all inputs must carry the same
// payload type V, and the result's payload is that of whichever input
// processes first.
func AnyOfValue[V any](sched *Scheduler, evs ...*ValueEvent[V]) *ValueEvent[V] {
	out := EventValue[V](sched)

	if len(evs) == 0 {
		var zero V
		out.Trigger(zero)
		return out
	}

	for _, ev := range evs {
		if ev.Processed() {
			v, _ := ev.Value()
			out.Trigger(v)
			continue
		}

		ev.AddCallback(func() {
			v, _ := ev.Value()
			out.Trigger(v)
		})
	}

	return out
}
