// Package valueobject contains domain value objects for the repair-shop ledger.
package valueobject

import (
	"testing"
	"time"
)

func TestDateWindow_Contains(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	window := DateWindow{Start: &start, End: &end}

	t.Run("both boundaries are inclusive", func(t *testing.T) {
		if !window.Contains(start) {
			t.Error("expected start boundary to be inside the window")
		}
		if !window.Contains(end) {
			t.Error("expected end boundary to be inside the window")
		}
	})

	t.Run("timestamps outside the range are excluded", func(t *testing.T) {
		if window.Contains(start.Add(-time.Second)) {
			t.Error("expected timestamp before start to be outside")
		}
		if window.Contains(end.Add(time.Second)) {
			t.Error("expected timestamp after end to be outside")
		}
	})

	t.Run("nil sides are unbounded", func(t *testing.T) {
		openStart := DateWindow{End: &end}
		if !openStart.Contains(start.AddDate(-10, 0, 0)) {
			t.Error("expected open start to accept any earlier timestamp")
		}

		openEnd := DateWindow{Start: &start}
		if !openEnd.Contains(end.AddDate(10, 0, 0)) {
			t.Error("expected open end to accept any later timestamp")
		}

		if !(DateWindow{}).Contains(time.Now()) {
			t.Error("expected the zero window to cover all time")
		}
	})
}
