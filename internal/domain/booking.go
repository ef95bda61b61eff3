package domain

import "time"

type Booking struct {
	ID          string     `json:"id"`
	CourseID    string     `json:"course_id"`
	LearnerID   string     `json:"learner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	IsCancelled bool       `json:"is_cancelled"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
