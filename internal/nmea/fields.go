package nmea

import "strings"

// SplitFields splits a framed sentence body into its positional fields.
// Consecutive delimiters yield empty fields so indexes stay stable; field
// semantics are positional and belong to the sentence type, not to the
// splitter. A trailing "*hh" checksum suffix is stripped before splitting
// (checksum verification is not performed here).
func SplitFields(body string) []string {
	if i := strings.IndexByte(body, '*'); i >= 0 {
		body = body[:i]
	}
	return strings.Split(body, ",")
}
