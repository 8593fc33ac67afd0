// Package valueobject contains domain value objects for the repair-shop ledger.
package valueobject

import "time"

// DateWindow is an inclusive [Start, End] range used to scope aggregation.
// A nil side is unbounded; the zero value covers all time.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the window. Both bounds are
// inclusive: a timestamp exactly on Start or End is in.
func (w DateWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}
