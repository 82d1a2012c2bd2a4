package desim

import "github.com/sirupsen/logrus"

// LogHook is a Hook that reports simulation progress through logrus,
// writing structured fields for each processed event.
type LogHook struct {
	Entry *logrus.Entry
}

// NewLogHook returns a LogHook that logs through logger, or through
// logrus's standard logger if logger is nil.
func NewLogHook(logger *logrus.Logger) *LogHook {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogHook{Entry: logrus.NewEntry(logger)}
}

// Func implements Hook. It logs at trace level before an event is
// processed, naming the event's ID and the scheduler's current time.
func (h *LogHook) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	sched, ok := ctx.Domain.(*Scheduler)
	if !ok {
		return
	}

	evt, ok := ctx.Item.(*Event)
	if !ok {
		return
	}

	h.Entry.WithFields(logrus.Fields{
		"time":  sched.Now(),
		"event": evt.ID,
	}).Trace("processing event")
}
