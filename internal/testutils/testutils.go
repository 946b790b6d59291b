package testutils

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/novarover/gps-logger/internal/types"
)

// EncodeGLL builds a complete GLL sentence, framing bytes included, for a
// known position. It applies the inverse of the coordinate conversion law,
// so decoding the result must recover the position within rounding
// tolerance.
func EncodeGLL(lat, lon float64) string {
	latField, latHemi := EncodeCoordinate(lat, "N", "S", 2)
	lonField, lonHemi := EncodeCoordinate(lon, "E", "W", 3)
	return fmt.Sprintf("$GPGLL,%s,%s,%s,%s,225444,A\r\n", latField, latHemi, lonField, lonHemi)
}

// EncodeRMC builds a complete RMC sentence for a known position
func EncodeRMC(lat, lon float64) string {
	latField, latHemi := EncodeCoordinate(lat, "N", "S", 2)
	lonField, lonHemi := EncodeCoordinate(lon, "E", "W", 3)
	return fmt.Sprintf("$GPRMC,225446,A,%s,%s,%s,%s,000.5,054.7,191194,020.3,E\r\n", latField, latHemi, lonField, lonHemi)
}

// EncodeVoidGLL builds a GLL sentence reporting no satellite lock
func EncodeVoidGLL() string {
	return "$GPGLL,0000.00000,N,00000.00000,E,225444,V\r\n"
}

// EncodeCoordinate converts decimal degrees into the receiver's
// degrees-minutes-seconds field layout plus the hemisphere letter. Seconds
// are rounded to three fractional digits with carry.
func EncodeCoordinate(value float64, positive, negative string, degreeDigits int) (string, string) {
	hemisphere := positive
	if value < 0 {
		hemisphere = negative
		value = -value
	}

	deg := int(value)
	remainder := (value - float64(deg)) * 60
	min := int(remainder)
	sec := math.Round((remainder-float64(min))*60*1000) / 1000
	if sec >= 60 {
		sec -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		deg++
	}

	// "45.000" -> "45000": the dot in the field sits between minutes and
	// seconds, not inside the seconds run.
	secRun := strings.Replace(fmt.Sprintf("%06.3f", sec), ".", "", 1)
	return fmt.Sprintf("%0*d%02d.%s", degreeDigits, deg, min, secRun), hemisphere
}

// MockFix creates a mock fix for testing
func MockFix(lat, lon float64) *types.Fix {
	return &types.Fix{
		SessionID: "test-session",
		Latitude:  lat,
		Longitude: lon,
		Valid:     true,
		Source:    "test-source",
		Timestamp: time.Now().UTC(),
	}
}

// WaitForCondition waits for a condition to be true with timeout
func WaitForCondition(condition func() bool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for condition")
		case <-ticker.C:
			if condition() {
				return nil
			}
		}
	}
}
