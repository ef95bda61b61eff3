package service

import (
	"context"
	"fmt"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type CourseService struct {
	repo        ports.CourseRepo
	bookingRepo ports.BookingRepo
	cache       ports.CourseCache
	logger      logger.Logger
}

func NewCourseService(
	repo ports.CourseRepo,
	bookingRepo ports.BookingRepo,
	cache ports.CourseCache,
	logger logger.Logger,
) *CourseService {
	return &CourseService{
		repo:        repo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *CourseService) Create(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.InstructorID == "" {
		return nil, fmt.Errorf("%w: instructor_id is required", domain.ErrValidation)
	}
	if input.SlotsTotal <= 0 {
		return nil, fmt.Errorf("%w: slots_total must be positive", domain.ErrValidation)
	}
	if !input.WindowStart.Before(input.WindowEnd) {
		return nil, fmt.Errorf("%w: window_end must be after window_start", domain.ErrValidation)
	}
	if input.WindowStart.Before(domain.DateOf(time.Now())) {
		return nil, fmt.Errorf("%w: window_start cannot be in the past", domain.ErrValidation)
	}

	start := input.WindowStart
	end := input.WindowEnd
	course := &domain.Course{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		InstructorID:  input.InstructorID,
		WindowStart:   &start,
		WindowEnd:     &end,
		DurationHours: input.DurationHours,
		CohortNumber:  1,
		SlotsTotal:    input.SlotsTotal,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.invalidateList(ctx)

	return course, nil
}

func (s *CourseService) GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error) {
	course, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListActiveByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.CourseDetails{
		Course:         *course,
		AvailableSlots: course.SlotsTotal - course.SlotsBooked,
		Bookings:       make([]domain.Booking, len(bookings)),
	}
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	if courses, err := s.cache.GetActive(ctx); err == nil {
		return courses, nil
	}

	// Elapsed windows are swept before listing so no response shows a
	// cohort that is already over.
	if _, err := s.repo.RolloverElapsed(ctx); err != nil {
		return nil, fmt.Errorf("rollover sweep: %w", err)
	}

	courses, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	if err := s.cache.SetActive(ctx, courses); err != nil {
		s.logger.Debug("course list cache set failed",
			logger.String("error", err.Error()),
		)
	}

	return courses, nil
}

func (s *CourseService) Update(ctx context.Context, id string, input domain.UpdateCourseInput) (*domain.Course, error) {
	course, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.WindowStart != nil {
		course.WindowStart = input.WindowStart
	}
	if input.WindowEnd != nil {
		course.WindowEnd = input.WindowEnd
	}
	if input.DurationHours != nil {
		course.DurationHours = *input.DurationHours
	}
	if input.SlotsTotal != nil {
		course.SlotsTotal = *input.SlotsTotal
	}

	if course.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if course.SlotsTotal <= 0 {
		return nil, fmt.Errorf("%w: slots_total must be positive", domain.ErrValidation)
	}
	if course.WindowStart != nil && course.WindowEnd != nil && !course.WindowStart.Before(*course.WindowEnd) {
		return nil, fmt.Errorf("%w: window_end must be after window_start", domain.ErrValidation)
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.invalidateList(ctx)

	return course, nil
}

func (s *CourseService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.resolve(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate course: %w", err)
	}

	s.logger.Info("course deactivated", logger.String("course_id", id))
	s.invalidateList(ctx)

	return nil
}

// resolve loads a course after applying a due cohort rollover. Every
// single-course access path goes through here so rollover always precedes
// capacity and booking checks.
func (s *CourseService) resolve(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !course.RolloverDue(time.Now()) {
		return course, nil
	}

	rolled, err := s.repo.RolloverIfDue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rollover course: %w", err)
	}
	if rolled {
		s.logger.Info("course rolled over",
			logger.String("course_id", id),
			logger.Int("cohort", course.CohortNumber+1),
		)
		s.invalidateList(ctx)
		return s.repo.GetByID(ctx, id)
	}

	// Someone else rolled it over between the read and the update.
	return s.repo.GetByID(ctx, id)
}

func (s *CourseService) invalidateList(ctx context.Context) {
	if err := s.cache.InvalidateActive(ctx); err != nil {
		s.logger.Debug("course list cache invalidate failed",
			logger.String("error", err.Error()),
		)
	}
}
