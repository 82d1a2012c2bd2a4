package desim

import "errors"

// ErrInvalidDelay is returned by Schedule, Timeout, and TriggerDelayed when
// called with a negative delay.
var ErrInvalidDelay = errors.New("desim: delay must not be negative")

// ErrTimeWentBackwards is returned by RunUntil when the target time is
// earlier than the scheduler's current time.
var ErrTimeWentBackwards = errors.New("desim: target time is before now")

// ErrQueueEmpty is returned by Step when there is no scheduled event left to
// process.
var ErrQueueEmpty = errors.New("desim: event queue is empty")

// ErrValueUnset is returned by ValueEvent.Value when the event has not been
// triggered yet, so no payload has been stored.
var ErrValueUnset = errors.New("desim: value event has no value set")
