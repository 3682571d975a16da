package workday

import (
	"time"
)

// Policy defines the official work-day boundaries. All computations are
// anchored to the calendar date of the event, in that date's location.
type Policy struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	GracePeriod time.Duration
}

// Default is the warehouse-wide policy: 08:00 start, 15 minutes grace,
// 17:00 end.
var Default = Policy{
	StartHour:   8,
	StartMinute: 0,
	EndHour:     17,
	EndMinute:   0,
	GracePeriod: 15 * time.Minute,
}

// NewPolicy parses "15:04" start/end strings into a Policy. Malformed
// values fall back to the corresponding Default field; config validation
// rejects them before this is reached.
func NewPolicy(start, end string, grace time.Duration) Policy {
	p := Default
	if t, err := time.Parse("15:04", start); err == nil {
		p.StartHour, p.StartMinute = t.Hour(), t.Minute()
	}
	if t, err := time.Parse("15:04", end); err == nil {
		p.EndHour, p.EndMinute = t.Hour(), t.Minute()
	}
	p.GracePeriod = grace
	return p
}

// StartOfWork returns the official start instant on date's calendar day.
func (p Policy) StartOfWork(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), p.StartHour, p.StartMinute, 0, 0, date.Location())
}

// EndOfWork returns the official end instant on date's calendar day.
func (p Policy) EndOfWork(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), p.EndHour, p.EndMinute, 0, 0, date.Location())
}

// IsLate reports whether a check-in at now is late for date's work day:
// strictly after start + grace period.
func (p Policy) IsLate(now, date time.Time) bool {
	return now.After(p.StartOfWork(date).Add(p.GracePeriod))
}

// Overtime returns the fractional hours worked past the official end of
// date's work day. Zero when now is at or before the end.
func (p Policy) Overtime(now, date time.Time) float64 {
	end := p.EndOfWork(date)
	if !now.After(end) {
		return 0
	}
	return now.Sub(end).Hours()
}
