package nmea

import "errors"

// Decode failures are classified so diagnostics can tell an expected
// "no satellite lock" report apart from protocol corruption. All of them are
// recoverable: the pipeline drops the sentence and resumes on the next one.
var (
	// ErrMalformedSentence marks structural problems: unknown sentence
	// type, short field count, or undecodable coordinate fields.
	ErrMalformedSentence = errors.New("malformed sentence")

	// ErrInvalidDigits marks a coordinate field with a non-digit character
	// in a digit position.
	ErrInvalidDigits = errors.New("invalid digits in coordinate field")

	// ErrInvalidHemisphere marks a hemisphere field that is not one of the
	// letters recognized for its axis.
	ErrInvalidHemisphere = errors.New("invalid hemisphere")

	// ErrOutOfRange marks a decoded coordinate outside the physical bounds
	// of its axis.
	ErrOutOfRange = errors.New("coordinate out of range")
)
