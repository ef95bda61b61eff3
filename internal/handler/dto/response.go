package dto

import (
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
)

// Cohort windows are calendar dates on the wire.
const dateLayout = "2006-01-02"

type CourseResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	InstructorID  string  `json:"instructor_id"`
	WindowStart   *string `json:"window_start"`
	WindowEnd     *string `json:"window_end"`
	DurationHours int     `json:"duration_hours"`
	CohortNumber  int     `json:"cohort_number"`
	SlotsTotal    int     `json:"slots_total"`
	SlotsBooked   int     `json:"slots_booked"`
	IsFull        bool    `json:"is_full"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

type CourseDetailsResponse struct {
	Course         CourseResponse    `json:"course"`
	AvailableSlots int               `json:"available_slots"`
	Bookings       []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	CourseID    string  `json:"course_id"`
	LearnerID   string  `json:"learner_id"`
	CreatedAt   string  `json:"created_at"`
	IsCancelled bool    `json:"is_cancelled"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsInstructor bool   `json:"is_instructor"`
	CreatedAt    string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		InstructorID:  c.InstructorID,
		WindowStart:   formatDate(c.WindowStart),
		WindowEnd:     formatDate(c.WindowEnd),
		DurationHours: c.DurationHours,
		CohortNumber:  c.CohortNumber,
		SlotsTotal:    c.SlotsTotal,
		SlotsBooked:   c.SlotsBooked,
		IsFull:        c.IsFull(),
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCourseDetailsResponse(d *domain.CourseDetails) CourseDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return CourseDetailsResponse{
		Course:         ToCourseResponse(&d.Course),
		AvailableSlots: d.AvailableSlots,
		Bookings:       bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		CourseID:    b.CourseID,
		LearnerID:   b.LearnerID,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		IsCancelled: b.IsCancelled,
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}

	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		IsInstructor: u.IsInstructor,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
