package nmea

// MaxSentenceLen is the longest sentence body the framer will accumulate,
// per the NMEA 0183 line length limit. A run that reaches this length
// without a terminator is discarded as malformed.
const MaxSentenceLen = 82

const (
	startSentinel = '$'
	terminator    = '\r'
)

// Framer assembles sentence bodies from a raw byte stream. It holds at most
// one sentence in flight: a new start sentinel while armed restarts
// accumulation, so an interrupted sentence is never recovered.
type Framer struct {
	buf   []byte
	armed bool
}

// NewFramer creates a new Framer
func NewFramer() *Framer {
	return &Framer{buf: make([]byte, 0, MaxSentenceLen)}
}

// Feed consumes one byte from the stream. When the byte completes a
// sentence, Feed returns its body (start sentinel and terminator stripped)
// and true. Noise between sentences and overlong unterminated runs are
// discarded silently; Feed never fails.
func (f *Framer) Feed(b byte) (string, bool) {
	switch {
	case b == startSentinel:
		f.buf = f.buf[:0]
		f.armed = true

	case !f.armed:
		// Noise or a sentence type we never armed on.

	case b == terminator:
		body := string(f.buf)
		f.buf = f.buf[:0]
		f.armed = false
		return body, true

	default:
		if len(f.buf) >= MaxSentenceLen {
			// No terminator in sight; drop the partial sentence rather
			// than buffer without bound.
			f.buf = f.buf[:0]
			f.armed = false
			return "", false
		}
		f.buf = append(f.buf, b)
	}
	return "", false
}

// Reset discards any partially accumulated sentence.
func (f *Framer) Reset() {
	f.buf = f.buf[:0]
	f.armed = false
}
