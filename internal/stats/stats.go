package stats

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/novarover/gps-logger/internal/types"
)

// Stats tracks decode pipeline counters for one decoder session
type Stats struct {
	FramedSentences    uint64
	ExtractedFixes     uint64
	NoFixSentences     uint64
	MalformedSentences uint64
	SuppressedCycles   uint64
	PublishedFixes     uint64

	lastFixTime    time.Time
	processingTime time.Duration

	mu sync.RWMutex
}

// New creates a new Stats instance
func New() *Stats {
	return &Stats{}
}

// IncrementFramedSentences increments the framed sentences counter
func (s *Stats) IncrementFramedSentences() {
	atomic.AddUint64(&s.FramedSentences, 1)
}

// IncrementExtractedFixes increments the extracted fixes counter
func (s *Stats) IncrementExtractedFixes() {
	atomic.AddUint64(&s.ExtractedFixes, 1)
}

// IncrementNoFixSentences increments the no-fix sentences counter
func (s *Stats) IncrementNoFixSentences() {
	atomic.AddUint64(&s.NoFixSentences, 1)
}

// IncrementMalformedSentences increments the malformed sentences counter
func (s *Stats) IncrementMalformedSentences() {
	atomic.AddUint64(&s.MalformedSentences, 1)
}

// IncrementSuppressedCycles increments the suppressed emissions counter
func (s *Stats) IncrementSuppressedCycles() {
	atomic.AddUint64(&s.SuppressedCycles, 1)
}

// IncrementPublishedFixes increments the published fixes counter
func (s *Stats) IncrementPublishedFixes() {
	atomic.AddUint64(&s.PublishedFixes, 1)
}

// UpdateLastFixTime records the time of the most recent published fix.
// Together with the published counter it lets an external watchdog raise a
// "no fix for N seconds" alarm.
func (s *Stats) UpdateLastFixTime() {
	s.mu.Lock()
	s.lastFixTime = time.Now().UTC()
	s.mu.Unlock()
}

// LastFixTime returns the time of the most recent published fix
func (s *Stats) LastFixTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFixTime
}

// AddProcessingTime adds to the cumulative decode time
func (s *Stats) AddProcessingTime(d time.Duration) {
	s.mu.Lock()
	s.processingTime += d
	s.mu.Unlock()
}

// Snapshot returns a copy of the current counters for logging or persistence
func (s *Stats) Snapshot(sessionID string) *types.DecoderStats {
	s.mu.RLock()
	lastFix := s.lastFixTime
	processing := s.processingTime
	s.mu.RUnlock()

	return &types.DecoderStats{
		SessionID:          sessionID,
		FramedSentences:    atomic.LoadUint64(&s.FramedSentences),
		ExtractedFixes:     atomic.LoadUint64(&s.ExtractedFixes),
		NoFixSentences:     atomic.LoadUint64(&s.NoFixSentences),
		MalformedSentences: atomic.LoadUint64(&s.MalformedSentences),
		SuppressedCycles:   atomic.LoadUint64(&s.SuppressedCycles),
		PublishedFixes:     atomic.LoadUint64(&s.PublishedFixes),
		LastFixTime:        lastFix,
		ProcessingTime:     processing,
	}
}
