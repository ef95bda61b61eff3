package domain

import "time"

type Course struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	InstructorID  string     `json:"instructor_id"`
	WindowStart   *time.Time `json:"window_start"`
	WindowEnd     *time.Time `json:"window_end"`
	DurationHours int        `json:"duration_hours"`
	CohortNumber  int        `json:"cohort_number"`
	SlotsTotal    int        `json:"slots_total"`
	SlotsBooked   int        `json:"slots_booked"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Course) IsFull() bool {
	return c.SlotsBooked >= c.SlotsTotal
}

// RolloverDue reports whether the cohort window has fully elapsed by now.
// A course with no window (already rolled over, not yet rescheduled) is never due.
func (c *Course) RolloverDue(now time.Time) bool {
	if c.WindowEnd == nil {
		return false
	}
	return c.WindowEnd.Before(DateOf(now))
}

// DateOf truncates a timestamp to its UTC calendar date.
// Cohort windows are dates, so all window comparisons go through this.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type CourseDetails struct {
	Course         Course    `json:"course"`
	AvailableSlots int       `json:"available_slots"`
	Bookings       []Booking `json:"bookings"`
}

type CreateCourseInput struct {
	Title         string
	Description   string
	InstructorID  string
	WindowStart   time.Time
	WindowEnd     time.Time
	DurationHours int
	SlotsTotal    int
}

// UpdateCourseInput carries catalog-owned fields only. Nil means "leave as is".
// slots_booked, cohort_number and is_active are never editable through here.
type UpdateCourseInput struct {
	Title         *string
	Description   *string
	WindowStart   *time.Time
	WindowEnd     *time.Time
	DurationHours *int
	SlotsTotal    *int
}
