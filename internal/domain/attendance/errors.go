package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrInvalidMode       = errors.New("invalid attendance mode")

	ErrRecordNotFound = errors.New("attendance record not found")
)
