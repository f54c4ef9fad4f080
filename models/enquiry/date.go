package enquiry

import (
	"errors"
	"time"
)

// ErrPastDate is returned when a preferred date before today is selected.
var ErrPastDate = errors.New("preferred date must be today or later")

// DateSelection holds the optional preferred visit date. Only the current day
// or later is selectable; re-selecting the selected day clears it.
type DateSelection struct {
	selected time.Time
	set      bool
	now      func() time.Time
}

// NewDateSelection returns an empty selection using the wall clock.
func NewDateSelection() *DateSelection {
	return &DateSelection{now: time.Now}
}

// NewDateSelectionAt returns an empty selection with an injected clock.
func NewDateSelectionAt(now func() time.Time) *DateSelection {
	return &DateSelection{now: now}
}

// Select picks a day, clears it if it is already selected, or rejects it when
// it falls before today.
func (d *DateSelection) Select(day time.Time) error {
	day = truncateToDay(day)
	today := truncateToDay(d.now())

	if day.Before(today) {
		return ErrPastDate
	}

	if d.set && d.selected.Equal(day) {
		d.selected = time.Time{}
		d.set = false
		return nil
	}

	d.selected = day
	d.set = true
	return nil
}

// Clear resets the selection to unset.
func (d *DateSelection) Clear() {
	d.selected = time.Time{}
	d.set = false
}

// Value returns the selected day and whether one is set.
func (d *DateSelection) Value() (time.Time, bool) {
	return d.selected, d.set
}

// String returns the selected day as YYYY-MM-DD, or "" when unset. This is the
// wire form carried in the multipart payload.
func (d *DateSelection) String() string {
	if !d.set {
		return ""
	}
	return d.selected.Format("2006-01-02")
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}
