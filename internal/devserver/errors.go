package devserver

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee ID or password")
	ErrEmployeeExists     = errors.New("employee ID already registered")
	ErrEmployeeNotFound   = errors.New("employee not found")

	// ErrDayFinalized means today's attendance was completed or approved
	// by another process; the client must land on DONE.
	ErrDayFinalized = errors.New("attendance for today is already finalized")

	// ErrWrongMode means the submitted mode does not match what the day
	// actually needs next; the client may retry with the right one.
	ErrWrongMode = errors.New("attendance mode does not match current state")
)
