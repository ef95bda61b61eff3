package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type CourseSvc interface {
	Create(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error)
	GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, id string, input domain.UpdateCourseInput) (*domain.Course, error)
	Deactivate(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, courseID, learnerID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, learnerID string) error
	ListByLearner(ctx context.Context, learnerID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	courseService  CourseSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(courseService CourseSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		courseService:  courseService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Courses

func (h *Handler) CreateCourse(c *ginext.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windowStart, err := time.Parse(dateLayout, req.WindowStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid window_start format, expected YYYY-MM-DD",
		})
		return
	}
	windowEnd, err := time.Parse(dateLayout, req.WindowEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid window_end format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		InstructorID:  req.InstructorID,
		WindowStart:   windowStart,
		WindowEnd:     windowEnd,
		DurationHours: req.DurationHours,
		SlotsTotal:    req.SlotsTotal,
	}

	course, err := h.courseService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *Handler) GetCourse(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	details, err := h.courseService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseDetailsResponse(details))
}

func (h *Handler) ListCourses(c *ginext.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateCourse(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		SlotsTotal:    req.SlotsTotal,
	}
	if req.WindowStart != nil {
		t, err := time.Parse(dateLayout, *req.WindowStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid window_start format, expected YYYY-MM-DD",
			})
			return
		}
		input.WindowStart = &t
	}
	if req.WindowEnd != nil {
		t, err := time.Parse(dateLayout, *req.WindowEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid window_end format, expected YYYY-MM-DD",
			})
			return
		}
		input.WindowEnd = &t
	}

	course, err := h.courseService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

func (h *Handler) DeactivateCourse(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	if err := h.courseService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// Bookings

func (h *Handler) BookCourse(c *ginext.Context) {
	courseID := c.Param("id")
	if _, err := uuid.Parse(courseID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), courseID, req.LearnerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.LearnerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	learnerID := c.Param("id")
	if _, err := uuid.Parse(learnerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByLearner(c.Request.Context(), learnerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:     req.Username,
		Email:        req.Email,
		IsInstructor: req.IsInstructor,
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCourseFull),
		errors.Is(err, domain.ErrCourseInactive),
		errors.Is(err, domain.ErrDuplicateBooking),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPersistenceConflict):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "temporary conflict, please retry",
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
