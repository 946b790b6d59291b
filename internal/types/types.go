package types

import (
	"time"
)

// Fix represents a decoded GPS position fix
type Fix struct {
	SessionID string    `json:"session_id"`
	Latitude  float64   `json:"latitude"`  // decimal degrees, [-90, 90]
	Longitude float64   `json:"longitude"` // decimal degrees, [-180, 180]
	Valid     bool      `json:"valid"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// FixRecord represents a fix as stored in the database
type FixRecord struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// DecoderStats represents a snapshot of decoder counters for persistence
type DecoderStats struct {
	SessionID          string        `json:"session_id"`
	FramedSentences    uint64        `json:"framed_sentences"`
	ExtractedFixes     uint64        `json:"extracted_fixes"`
	NoFixSentences     uint64        `json:"no_fix_sentences"`
	MalformedSentences uint64        `json:"malformed_sentences"`
	SuppressedCycles   uint64        `json:"suppressed_cycles"`
	PublishedFixes     uint64        `json:"published_fixes"`
	LastFixTime        time.Time     `json:"last_fix_time"`
	ProcessingTime     time.Duration `json:"processing_time"`
}
