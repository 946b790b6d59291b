package decoder

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/novarover/gps-logger/internal/fixstate"
	"github.com/novarover/gps-logger/internal/nmea"
	"github.com/novarover/gps-logger/internal/stats"
	"github.com/novarover/gps-logger/internal/types"
)

// Transport supplies bytes the receiver has already delivered. Absence of
// bytes means "nothing to do this cycle", never an error.
type Transport interface {
	// ReadAvailable copies buffered bytes into p without blocking for
	// more. It returns 0 when nothing is pending.
	ReadAvailable(p []byte) (int, error)
}

// Sink receives publishable fixes.
type Sink interface {
	PublishFix(fix *types.Fix) error
}

// Decoder drives the decode pipeline for one session: it drains transport
// bytes through the sentence framer, resolves each completed sentence into
// a fix outcome, and publishes whatever the fix state deems emittable.
// It runs no goroutines and takes no locks; the cycle driver invokes it
// sequentially.
type Decoder struct {
	transport Transport
	sink      Sink
	framer    *nmea.Framer
	state     *fixstate.Tracker
	stats     *stats.Stats
	sessionID string
	source    string
	buf       []byte
}

// New creates a Decoder with a fresh session identity.
func New(transport Transport, sink Sink, st *stats.Stats, source string) *Decoder {
	return &Decoder{
		transport: transport,
		sink:      sink,
		framer:    nmea.NewFramer(),
		state:     fixstate.New(),
		stats:     st,
		sessionID: uuid.New().String(),
		source:    source,
		buf:       make([]byte, 512),
	}
}

// SessionID returns the session identity stamped on every published fix
func (d *Decoder) SessionID() string {
	return d.sessionID
}

// Cycle drains the bytes currently available from the transport and
// resolves every complete sentence they contain. Multiple sentences in one
// burst each resolve individually. A starved transport makes the cycle a
// no-op; the in-flight partial sentence survives until the next cycle.
func (d *Decoder) Cycle() error {
	start := time.Now()
	for {
		n, err := d.transport.ReadAvailable(d.buf)
		if err != nil {
			return fmt.Errorf("transport read: %w", err)
		}
		if n == 0 {
			break
		}
		for _, b := range d.buf[:n] {
			body, complete := d.framer.Feed(b)
			if complete {
				d.resolve(body)
			}
		}
	}
	d.stats.AddProcessingTime(time.Since(start))
	return nil
}

func (d *Decoder) resolve(body string) {
	d.stats.IncrementFramedSentences()

	fix, err := nmea.Extract(body)
	emission := d.state.Observe(fix, err)

	switch emission.Level {
	case fixstate.LevelInfo:
		d.stats.IncrementNoFixSentences()
		log.Printf("no fix: %s", emission.Reason)
	case fixstate.LevelWarning:
		d.stats.IncrementMalformedSentences()
		log.Printf("dropped sentence: %s", emission.Reason)
	}

	if !emission.Publish {
		d.stats.IncrementSuppressedCycles()
		return
	}
	d.stats.IncrementExtractedFixes()

	out := emission.Fix
	out.SessionID = d.sessionID
	out.Source = d.source
	out.Timestamp = time.Now().UTC()

	if err := d.sink.PublishFix(&out); err != nil {
		log.Printf("Failed to publish fix: %v", err)
		return
	}
	d.stats.IncrementPublishedFixes()
	d.stats.UpdateLastFixTime()
}

// LastFix returns the most recently accepted fix, if any.
func (d *Decoder) LastFix() (types.Fix, bool) {
	return d.state.Last()
}
