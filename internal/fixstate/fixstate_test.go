package fixstate

import (
	"errors"
	"testing"

	"github.com/novarover/gps-logger/internal/types"
)

func TestTracker_Observe(t *testing.T) {
	validFix := types.Fix{Latitude: 49.279167, Longitude: -123.186667, Valid: true}
	noFix := types.Fix{Valid: false}

	t.Run("valid fix is emitted and stored", func(t *testing.T) {
		tracker := New()

		emission := tracker.Observe(validFix, nil)
		if !emission.Publish {
			t.Fatal("Observe() did not publish a valid fix")
		}
		if emission.Fix != validFix {
			t.Errorf("Observe() Fix = %+v, want %+v", emission.Fix, validFix)
		}
		if emission.Level != LevelNone {
			t.Errorf("Observe() Level = %v, want LevelNone", emission.Level)
		}

		last, ok := tracker.Last()
		if !ok || last != validFix {
			t.Errorf("Last() = %+v, %v, want stored fix", last, ok)
		}
	})

	t.Run("no fix before any valid fix is suppressed", func(t *testing.T) {
		tracker := New()

		// Repeated no-lock cycles at startup must never emit: the
		// zero-valued fix would read as a real position at (0,0).
		for i := 0; i < 5; i++ {
			emission := tracker.Observe(noFix, nil)
			if emission.Publish {
				t.Fatalf("Observe() published on no-fix cycle %d", i)
			}
			if emission.Level != LevelInfo {
				t.Errorf("Observe() Level = %v, want LevelInfo", emission.Level)
			}
		}

		if _, ok := tracker.Last(); ok {
			t.Error("Last() reports a fix before any was accepted")
		}
	})

	t.Run("no fix after a valid fix is suppressed without re-emit", func(t *testing.T) {
		tracker := New()
		tracker.Observe(validFix, nil)

		emission := tracker.Observe(noFix, nil)
		if emission.Publish {
			t.Error("Observe() re-emitted the stale fix on a no-fix cycle")
		}
		if emission.Level != LevelInfo {
			t.Errorf("Observe() Level = %v, want LevelInfo", emission.Level)
		}

		// The prior fix stays available for state readers.
		last, ok := tracker.Last()
		if !ok || last != validFix {
			t.Errorf("Last() = %+v, %v, want prior fix retained", last, ok)
		}
	})

	t.Run("rejection is suppressed with a warning", func(t *testing.T) {
		tracker := New()
		tracker.Observe(validFix, nil)

		emission := tracker.Observe(types.Fix{}, errors.New("malformed sentence: short field count"))
		if emission.Publish {
			t.Error("Observe() published a rejected sentence")
		}
		if emission.Level != LevelWarning {
			t.Errorf("Observe() Level = %v, want LevelWarning", emission.Level)
		}
		if emission.Reason == "" {
			t.Error("Observe() rejection carries no reason")
		}

		// A rejection must not clobber the stored fix.
		if last, ok := tracker.Last(); !ok || last != validFix {
			t.Errorf("Last() = %+v, %v after rejection", last, ok)
		}
	})

	t.Run("newer valid fix replaces the stored one", func(t *testing.T) {
		tracker := New()
		tracker.Observe(validFix, nil)

		newer := types.Fix{Latitude: 48.5, Longitude: -122.25, Valid: true}
		emission := tracker.Observe(newer, nil)
		if !emission.Publish {
			t.Fatal("Observe() did not publish the newer fix")
		}
		if last, _ := tracker.Last(); last != newer {
			t.Errorf("Last() = %+v, want %+v", last, newer)
		}
	})
}
