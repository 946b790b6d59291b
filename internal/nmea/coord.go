package nmea

import (
	"fmt"
)

// Axis identifies which coordinate axis a field encodes. It determines the
// degree digit count and the physical bound of the decoded value.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) String() string {
	if a == Longitude {
		return "longitude"
	}
	return "latitude"
}

// degreeDigits returns the width of the degrees part: latitude uses two
// digits, longitude three.
func (a Axis) degreeDigits() int {
	if a == Longitude {
		return 3
	}
	return 2
}

// maxDegrees returns the physical bound of the axis in degrees.
func (a Axis) maxDegrees() float64 {
	if a == Longitude {
		return 180
	}
	return 90
}

// DecodeCoordinate converts a sexagesimal coordinate field plus its
// hemisphere field into signed decimal degrees.
//
// The field layout is the receiver's degrees-minutes-seconds encoding:
// the degree digits, two minute digits, a dot, then the seconds run where
// the first two digits are whole seconds and any remaining digits are the
// fraction. "4916.45000" with hemisphere "N" is 49°16'45.000"N ≈ 49.279167.
//
// Every digit position is validated before any arithmetic; a non-digit is
// reported as ErrInvalidDigits, never silently treated as zero.
func DecodeCoordinate(field, hemisphere string, axis Axis) (float64, error) {
	sign, err := hemisphereSign(hemisphere, axis)
	if err != nil {
		return 0, err
	}

	dd := axis.degreeDigits()
	// Degree and minute digits, the dot, and at least two seconds digits.
	if len(field) < dd+5 {
		return 0, fmt.Errorf("%w: %s field %q too short", ErrInvalidDigits, axis, field)
	}

	deg, err := parseDigits(field[:dd])
	if err != nil {
		return 0, fmt.Errorf("%s degrees: %w", axis, err)
	}
	min, err := parseDigits(field[dd : dd+2])
	if err != nil {
		return 0, fmt.Errorf("%s minutes: %w", axis, err)
	}
	if field[dd+2] != '.' {
		return 0, fmt.Errorf("%w: %s field %q missing seconds separator", ErrInvalidDigits, axis, field)
	}
	sec, err := parseSeconds(field[dd+3:])
	if err != nil {
		return 0, fmt.Errorf("%s seconds: %w", axis, err)
	}

	if min > 59 || sec >= 60 {
		return 0, fmt.Errorf("%w: %s %d°%d'%g\"", ErrOutOfRange, axis, deg, min, sec)
	}
	value := float64(deg) + float64(min)/60 + sec/3600
	if value > axis.maxDegrees() {
		return 0, fmt.Errorf("%w: %s %g exceeds %g", ErrOutOfRange, axis, value, axis.maxDegrees())
	}

	return sign * value, nil
}

// hemisphereSign maps the hemisphere letter to its sign multiplier. Only the
// letters belonging to the axis are accepted: N/S for latitude, E/W for
// longitude.
func hemisphereSign(hemisphere string, axis Axis) (float64, error) {
	switch {
	case axis == Latitude && hemisphere == "N":
		return 1, nil
	case axis == Latitude && hemisphere == "S":
		return -1, nil
	case axis == Longitude && hemisphere == "E":
		return 1, nil
	case axis == Longitude && hemisphere == "W":
		return -1, nil
	}
	return 0, fmt.Errorf("%w: %q for %s", ErrInvalidHemisphere, hemisphere, axis)
}

// parseDigits parses a run of ASCII digits into an integer.
func parseDigits(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigits, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// parseSeconds parses the seconds run: two whole-second digits followed by
// zero or more fractional digits.
func parseSeconds(s string) (float64, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: seconds run %q too short", ErrInvalidDigits, s)
	}
	whole, err := parseDigits(s[:2])
	if err != nil {
		return 0, err
	}
	frac := 0.0
	scale := 0.1
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigits, s)
		}
		frac += float64(c-'0') * scale
		scale /= 10
	}
	return float64(whole) + frac, nil
}
