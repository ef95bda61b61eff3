package dto

type CreateCourseRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	InstructorID  string `json:"instructor_id" binding:"required,uuid"`
	WindowStart   string `json:"window_start" binding:"required"`
	WindowEnd     string `json:"window_end" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"gte=0"`
	SlotsTotal    int    `json:"slots_total" binding:"required,gt=0"`
}

type UpdateCourseRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	WindowStart   *string `json:"window_start"`
	WindowEnd     *string `json:"window_end"`
	DurationHours *int    `json:"duration_hours"`
	SlotsTotal    *int    `json:"slots_total"`
}

type BookRequest struct {
	LearnerID string `json:"learner_id" binding:"required,uuid"`
}

type CancelBookingRequest struct {
	LearnerID string `json:"learner_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	IsInstructor bool   `json:"is_instructor"`
}
