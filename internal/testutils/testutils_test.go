package testutils

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeCoordinate(t *testing.T) {
	tests := []struct {
		name         string
		value        float64
		degreeDigits int
		wantField    string
		wantHemi     string
	}{
		{
			name:         "northern latitude",
			value:        49 + 16.0/60 + 45.0/3600,
			degreeDigits: 2,
			wantField:    "4916.45000",
			wantHemi:     "N",
		},
		{
			name:         "southern latitude",
			value:        -(37 + 42.0/60 + 30.5/3600),
			degreeDigits: 2,
			wantField:    "3742.30500",
			wantHemi:     "S",
		},
		{
			name:         "zero",
			value:        0,
			degreeDigits: 2,
			wantField:    "0000.00000",
			wantHemi:     "N",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, hemi := EncodeCoordinate(tt.value, "N", "S", tt.degreeDigits)
			if field != tt.wantField || hemi != tt.wantHemi {
				t.Errorf("EncodeCoordinate() = %q, %q, want %q, %q", field, hemi, tt.wantField, tt.wantHemi)
			}
		})
	}
}

func TestEncodeCoordinate_SecondsCarry(t *testing.T) {
	// 29°59'59.9996" rounds to 60 seconds and must carry into minutes,
	// then degrees.
	field, hemi := EncodeCoordinate(29+59.0/60+59.9996/3600, "E", "W", 3)
	if field != "03000.00000" || hemi != "E" {
		t.Errorf("EncodeCoordinate() = %q, %q, want \"03000.00000\", \"E\"", field, hemi)
	}
}

func TestEncodeGLL_Layout(t *testing.T) {
	sentence := EncodeGLL(49+16.0/60+45.0/3600, -(123 + 11.0/60 + 12.0/3600))

	want := "$GPGLL,4916.45000,N,12311.12000,W,225444,A\r\n"
	if sentence != want {
		t.Errorf("EncodeGLL() = %q, want %q", sentence, want)
	}
}

func TestEncodeRMC_Layout(t *testing.T) {
	sentence := EncodeRMC(49+16.0/60+45.0/3600, 123+11.0/60+12.0/3600)

	if !strings.HasPrefix(sentence, "$GPRMC,225446,A,4916.45000,N,12311.12000,E,") {
		t.Errorf("EncodeRMC() = %q", sentence)
	}
	if !strings.HasSuffix(sentence, "\r\n") {
		t.Error("EncodeRMC() missing terminator")
	}
}

func TestMockFix(t *testing.T) {
	fix := MockFix(49.5, -123.5)

	if fix.Latitude != 49.5 || fix.Longitude != -123.5 {
		t.Errorf("MockFix() coordinates = (%v, %v)", fix.Latitude, fix.Longitude)
	}
	if !fix.Valid {
		t.Error("MockFix() should be valid")
	}
	if fix.SessionID == "" || fix.Source == "" {
		t.Error("MockFix() missing identity fields")
	}
}

func TestWaitForCondition(t *testing.T) {
	calls := 0
	err := WaitForCondition(func() bool {
		calls++
		return calls >= 2
	}, time.Second)
	if err != nil {
		t.Errorf("WaitForCondition() failed: %v", err)
	}

	err = WaitForCondition(func() bool { return false }, 300*time.Millisecond)
	if err == nil {
		t.Error("WaitForCondition() expected timeout error")
	}
}
