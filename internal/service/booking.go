package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/events"
	"github.com/azaria-morake/slotflow/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// maxAttempts bounds the precondition-chain reruns on persistence conflicts.
const maxAttempts = 3

type BookingService struct {
	bookingRepo ports.BookingRepo
	courseRepo  ports.CourseRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	courseRepo ports.CourseRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, courseID, learnerID string) (*domain.Booking, error) {
	learner, err := s.userRepo.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("check learner: %w", err)
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		LearnerID: learnerID,
		CreatedAt: time.Now().UTC(),
	}

	// bookingRepo.Create runs the whole precondition chain atomically, so a
	// conflict retry re-evaluates everything against fresh state.
	for attempt := 1; ; attempt++ {
		err = s.bookingRepo.Create(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrPersistenceConflict) && attempt < maxAttempts {
			s.logger.Warn("booking create conflict, retrying",
				logger.String("course_id", courseID),
				logger.Int("attempt", attempt),
			)
			continue
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("course_id", courseID),
		logger.String("learner_id", learnerID),
	)

	go s.publishCreated(context.WithoutCancel(ctx), booking, learner)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, learnerID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.LearnerID != learnerID {
		return domain.ErrNotOwner
	}
	if booking.IsCancelled {
		return domain.ErrAlreadyCancelled
	}

	var cancelled *domain.Booking
	for attempt := 1; ; attempt++ {
		cancelled, err = s.bookingRepo.Cancel(ctx, bookingID)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrPersistenceConflict) && attempt < maxAttempts {
			s.logger.Warn("booking cancel conflict, retrying",
				logger.String("booking_id", bookingID),
				logger.Int("attempt", attempt),
			)
			continue
		}
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("course_id", cancelled.CourseID),
		logger.String("learner_id", learnerID),
	)

	learner, err := s.userRepo.GetByID(ctx, learnerID)
	if err != nil {
		s.logger.Error("failed to get learner for cancel notification",
			logger.String("learner_id", learnerID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.publishCancelled(context.WithoutCancel(ctx), cancelled, learner)

	return nil
}

func (s *BookingService) ListByLearner(ctx context.Context, learnerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByLearner(ctx, learnerID)
}

func (s *BookingService) publishCreated(ctx context.Context, b *domain.Booking, learner *domain.User) {
	course, instructor, ok := s.eventParties(ctx, b.CourseID)
	if !ok {
		return
	}

	s.notifier.BookingCreated(ctx, events.BookingCreated{
		BookingID:       b.ID,
		CourseID:        course.ID,
		CourseTitle:     course.Title,
		CohortNumber:    course.CohortNumber,
		LearnerID:       learner.ID,
		LearnerEmail:    learner.Email,
		LearnerName:     learner.Username,
		InstructorEmail: instructor.Email,
		BookedAt:        b.CreatedAt.Unix(),
	})
}

func (s *BookingService) publishCancelled(ctx context.Context, b *domain.Booking, learner *domain.User) {
	course, instructor, ok := s.eventParties(ctx, b.CourseID)
	if !ok {
		return
	}

	cancelledAt := time.Now().UTC()
	if b.CancelledAt != nil {
		cancelledAt = *b.CancelledAt
	}

	s.notifier.BookingCancelled(ctx, events.BookingCancelled{
		BookingID:       b.ID,
		CourseID:        course.ID,
		CourseTitle:     course.Title,
		CohortNumber:    course.CohortNumber,
		LearnerID:       learner.ID,
		LearnerEmail:    learner.Email,
		LearnerName:     learner.Username,
		InstructorEmail: instructor.Email,
		CancelledAt:     cancelledAt.Unix(),
	})
}

func (s *BookingService) eventParties(ctx context.Context, courseID string) (*domain.Course, *domain.User, bool) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get course for notification",
			logger.String("course_id", courseID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}

	instructor, err := s.userRepo.GetByID(ctx, course.InstructorID)
	if err != nil {
		s.logger.Error("failed to get instructor for notification",
			logger.String("instructor_id", course.InstructorID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}

	return course, instructor, true
}
