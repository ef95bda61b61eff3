package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys on the bookings topic exchange.
const (
	RKBookingCreated   = "booking.created"
	RKBookingCancelled = "booking.cancelled"
)

// BookingCreated carries everything the notification worker needs to
// address and render a mail without calling back into the service.
type BookingCreated struct {
	BookingID       string `json:"booking_id"`
	CourseID        string `json:"course_id"`
	CourseTitle     string `json:"course_title"`
	CohortNumber    int    `json:"cohort_number"`
	LearnerID       string `json:"learner_id"`
	LearnerEmail    string `json:"learner_email"`
	LearnerName     string `json:"learner_name"`
	InstructorEmail string `json:"instructor_email"`
	BookedAt        int64  `json:"booked_at"` // unix seconds
}

type BookingCancelled struct {
	BookingID       string `json:"booking_id"`
	CourseID        string `json:"course_id"`
	CourseTitle     string `json:"course_title"`
	CohortNumber    int    `json:"cohort_number"`
	LearnerID       string `json:"learner_id"`
	LearnerEmail    string `json:"learner_email"`
	LearnerName     string `json:"learner_name"`
	InstructorEmail string `json:"instructor_email"`
	CancelledAt     int64  `json:"cancelled_at"` // unix seconds
}

func Decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
