package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(hour, min int) time.Time {
	return time.Date(2024, 3, 14, hour, min, 0, 0, time.Local)
}

func TestIsLate_WithinGrace(t *testing.T) {
	p := Default

	assert.False(t, p.IsLate(day(7, 45), day(0, 0)))
	assert.False(t, p.IsLate(day(8, 0), day(0, 0)))
	assert.False(t, p.IsLate(day(8, 10), day(0, 0)))
	// Boundary: exactly start + grace is still on time
	assert.False(t, p.IsLate(day(8, 15), day(0, 0)))
}

func TestIsLate_AfterGrace(t *testing.T) {
	p := Default

	assert.True(t, p.IsLate(day(8, 16), day(0, 0)))
	assert.True(t, p.IsLate(day(8, 20), day(0, 0)))
	assert.True(t, p.IsLate(day(11, 0), day(0, 0)))
}

func TestOvertime_BeforeEnd(t *testing.T) {
	p := Default

	assert.Zero(t, p.Overtime(day(12, 0), day(0, 0)))
	assert.Zero(t, p.Overtime(day(16, 59), day(0, 0)))
	// Boundary: exactly the official end accrues nothing
	assert.Zero(t, p.Overtime(day(17, 0), day(0, 0)))
}

func TestOvertime_AfterEnd(t *testing.T) {
	p := Default

	assert.InDelta(t, 0.5, p.Overtime(day(17, 30), day(0, 0)), 1e-9)
	assert.InDelta(t, 1.5, p.Overtime(day(18, 30), day(0, 0)), 1e-9)
	assert.InDelta(t, 3.25, p.Overtime(day(20, 15), day(0, 0)), 1e-9)
}

func TestNewPolicy_ParsesBoundaries(t *testing.T) {
	p := NewPolicy("09:30", "18:00", 10*time.Minute)

	assert.Equal(t, 9, p.StartHour)
	assert.Equal(t, 30, p.StartMinute)
	assert.Equal(t, 18, p.EndHour)
	assert.Equal(t, 0, p.EndMinute)

	assert.False(t, p.IsLate(day(9, 40), day(0, 0)))
	assert.True(t, p.IsLate(day(9, 41), day(0, 0)))
}

func TestNewPolicy_MalformedFallsBack(t *testing.T) {
	p := NewPolicy("not-a-time", "25:99", 15*time.Minute)

	assert.Equal(t, Default.StartHour, p.StartHour)
	assert.Equal(t, Default.EndHour, p.EndHour)
}

func TestStartEndOfWork_AnchoredToDate(t *testing.T) {
	p := Default
	date := time.Date(2024, 12, 31, 23, 50, 0, 0, time.Local)

	start := p.StartOfWork(date)
	end := p.EndOfWork(date)

	assert.Equal(t, time.Date(2024, 12, 31, 8, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 12, 31, 17, 0, 0, 0, time.Local), end)
}
