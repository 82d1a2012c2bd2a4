package desim

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator produces identifiers used to label events for logging and
// tracing. Every Scheduler owns its own IDGenerator instance
// rather than sharing one through global state, so that a run's behavior
// depends only on what was passed to it explicitly.
type IDGenerator interface {
	// Generate returns a new, previously unused ID.
	Generate() string
}

// NewSequentialIDGenerator returns an IDGenerator that hands out small
// increasing decimal IDs. It is deterministic and is the default used by
// NewScheduler.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewRandomIDGenerator returns an IDGenerator backed by github.com/rs/xid.
// The IDs it produces are globally unique but not tied to scheduling order;
// use it when correlating desim traces with IDs from other, non-simulated
// systems.
func NewRandomIDGenerator() IDGenerator {
	return &randomIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

type randomIDGenerator struct{}

func (g *randomIDGenerator) Generate() string {
	return xid.New().String()
}
