package nmea

import (
	"fmt"

	"github.com/novarover/gps-logger/internal/types"
)

// Receiver status codes carried inside a sentence.
const (
	statusActive = "A" // position locked
	statusVoid   = "V" // receiver cannot locate position
)

// sentenceLayout describes where one sentence family keeps its status and
// coordinate fields. New families are supported by adding a table entry.
type sentenceLayout struct {
	minFields int
	status    int
	lat       int
	latHemi   int
	lon       int
	lonHemi   int
}

var sentenceLayouts = map[string]sentenceLayout{
	// $GPGLL,4916.45000,N,12311.12000,W,225444,A
	"GLL": {minFields: 7, status: 6, lat: 1, latHemi: 2, lon: 3, lonHemi: 4},
	// $GPRMC,225446,A,4916.45000,N,12311.12000,W,000.5,054.7,191194,020.3,E
	"RMC": {minFields: 7, status: 2, lat: 3, latHemi: 4, lon: 5, lonHemi: 6},
}

// Extract resolves one framed sentence body into a Fix.
//
// A void status is an expected receiver state ("cannot locate position") and
// yields Fix{Valid: false} with no error; the coordinate fields are not
// parsed. Anything structurally wrong returns an error wrapping
// ErrMalformedSentence and the sentence is dropped -- a corrupt sentence is
// never turned into a false fix.
func Extract(body string) (types.Fix, error) {
	fields := SplitFields(body)

	layout, ok := sentenceLayouts[addressType(fields[0])]
	if !ok {
		return types.Fix{}, fmt.Errorf("%w: unknown sentence type %q", ErrMalformedSentence, fields[0])
	}
	if len(fields) < layout.minFields {
		return types.Fix{}, fmt.Errorf("%w: got %d fields, want at least %d", ErrMalformedSentence, len(fields), layout.minFields)
	}

	switch fields[layout.status] {
	case statusVoid:
		return types.Fix{Valid: false}, nil
	case statusActive:
	default:
		return types.Fix{}, fmt.Errorf("%w: unrecognized status %q", ErrMalformedSentence, fields[layout.status])
	}

	lat, err := DecodeCoordinate(fields[layout.lat], fields[layout.latHemi], Latitude)
	if err != nil {
		return types.Fix{}, fmt.Errorf("%w: %w", ErrMalformedSentence, err)
	}
	lon, err := DecodeCoordinate(fields[layout.lon], fields[layout.lonHemi], Longitude)
	if err != nil {
		return types.Fix{}, fmt.Errorf("%w: %w", ErrMalformedSentence, err)
	}

	return types.Fix{Latitude: lat, Longitude: lon, Valid: true}, nil
}

// addressType extracts the sentence family from the address field, ignoring
// the two-character talker prefix: "GPGLL" and "GNGLL" are both GLL.
func addressType(addr string) string {
	if len(addr) < 3 {
		return ""
	}
	return addr[len(addr)-3:]
}
