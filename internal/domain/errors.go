package domain

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCourseFull       = errors.New("course is full")
	ErrCourseInactive   = errors.New("course is inactive")
	ErrDuplicateBooking = errors.New("learner already has an active booking for this course")
	ErrNotOwner         = errors.New("booking belongs to another learner")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

// ErrPersistenceConflict signals a serialization failure in the storage layer.
// The booking service re-runs the whole precondition chain on it.
var ErrPersistenceConflict = errors.New("persistence conflict")

var (
	ErrValidation = errors.New("validation error")
)
