package fixstate

import (
	"github.com/novarover/gps-logger/internal/types"
)

// Level classifies the diagnostic attached to an emission decision.
type Level int

const (
	LevelNone    Level = iota
	LevelInfo          // expected receiver state, e.g. no satellite lock
	LevelWarning       // protocol anomaly, e.g. a dropped malformed sentence
)

// Emission is the arbitration result for one resolved sentence.
type Emission struct {
	Publish bool
	Fix     types.Fix
	Level   Level
	Reason  string
}

// Tracker holds the most recently accepted fix and decides whether each
// decode outcome is publishable. Before the first valid fix has ever been
// seen, nothing is published: the zero-initialized (0,0) placeholder must
// never reach a consumer as if it were a real position.
//
// Policy for "not fixed" after a prior valid fix: stop publishing rather
// than repeat the stale fix. Consumers that want the last known position
// read it from the cache, not from the live stream.
type Tracker struct {
	last     types.Fix
	hasPrior bool
}

// New creates a new Tracker
func New() *Tracker {
	return &Tracker{}
}

// Observe arbitrates one extractor outcome. extractErr carries a rejection
// from the extractor; it is surfaced as a warning diagnostic and suppressed.
func (t *Tracker) Observe(fix types.Fix, extractErr error) Emission {
	if extractErr != nil {
		return Emission{Level: LevelWarning, Reason: extractErr.Error()}
	}

	if fix.Valid {
		t.last = fix
		t.hasPrior = true
		return Emission{Publish: true, Fix: fix}
	}

	return Emission{Level: LevelInfo, Reason: "receiver cannot locate position"}
}

// Last returns the most recently accepted fix and whether one exists.
func (t *Tracker) Last() (types.Fix, bool) {
	return t.last, t.hasPrior
}
