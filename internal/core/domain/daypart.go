package domain

import (
	"fmt"
	"time"
)

// HoursPerDay is the exclusive upper bound of an hour-of-day value.
const HoursPerDay = 24

// HourRange is a closed-open [Start, End) window of hours of the day. A
// range of (0, 24) covers the whole day.
type HourRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewHourRange validates and returns a window. Start must be in [0,24),
// End in (Start,24].
func NewHourRange(start, end int) (HourRange, error) {
	r := HourRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return HourRange{}, err
	}
	return r, nil
}

// Validate reports whether the range is well formed.
func (r HourRange) Validate() error {
	if r.Start < 0 || r.Start >= HoursPerDay || r.End > HoursPerDay || r.Start >= r.End {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidDayparting, r.Start, r.End)
	}
	return nil
}

// Contains reports whether hour falls inside the window. The start hour is
// inside, the end hour is not.
func (r HourRange) Contains(hour int) bool {
	return r.Start <= hour && hour < r.End
}

func (r HourRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Dayparting is an ordered set of hour windows. A time is eligible when its
// hour falls inside at least one window.
type Dayparting []HourRange

// Validate checks every window and requires at least one.
func (d Dayparting) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no windows", ErrInvalidDayparting)
	}
	for _, r := range d {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether the hour-of-day of t is inside any window. The
// hour is read in t's own location.
func (d Dayparting) Contains(t time.Time) bool {
	hour := t.Hour()
	for _, r := range d {
		if r.Contains(hour) {
			return true
		}
	}
	return false
}
