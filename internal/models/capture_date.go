package models

import (
	"fmt"
	"time"
)

// CaptureDate is a calendar date with no time-of-day or zone.
type CaptureDate struct {
	Year  int
	Month int
	Day   int
}

// DateOf takes the calendar components of t in its own location.
func DateOf(t time.Time) CaptureDate {
	y, m, d := t.Date()
	return CaptureDate{Year: y, Month: int(m), Day: d}
}

// String renders the date as it is stamped on the image, e.g. 2024年05月06日.
func (d CaptureDate) String() string {
	return fmt.Sprintf("%04d年%02d月%02d日", d.Year, d.Month, d.Day)
}
