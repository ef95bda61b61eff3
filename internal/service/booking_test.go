package service

import (
	"context"
	"testing"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/events"
	"github.com/azaria-morake/slotflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockCourseRepo, *mocks.MockUserRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	courseRepo := mocks.NewMockCourseRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, courseRepo, userRepo, notifier, newTestLogger(t))
	return svc, bookingRepo, courseRepo, userRepo, notifier
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, courseRepo, userRepo, notifier := newBookingService(t)

	learner := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	instructor := &domain.User{ID: "u2", Username: "bob", Email: "bob@example.com"}
	course := &domain.Course{
		ID:           "c1",
		Title:        "Go Basics",
		InstructorID: "u2",
		CohortNumber: 3,
		SlotsTotal:   10,
		SlotsBooked:  4,
		IsActive:     true,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(learner, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(instructor, nil)
	notifier.EXPECT().BookingCreated(mock.Anything, mock.MatchedBy(func(ev events.BookingCreated) bool {
		return ev.CourseID == "c1" &&
			ev.CourseTitle == "Go Basics" &&
			ev.CohortNumber == 3 &&
			ev.LearnerEmail == "alice@example.com" &&
			ev.InstructorEmail == "bob@example.com"
	})).Return()

	booking, err := svc.Create(context.Background(), "c1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "c1", booking.CourseID)
	assert.Equal(t, "u1", booking.LearnerID)
	assert.False(t, booking.IsCancelled)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_LearnerNotFound(t *testing.T) {
	svc, _, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "c1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Create_CourseFull(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCourseFull)

	_, err := svc.Create(context.Background(), "c1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseFull)
}

func TestBookingService_Create_CourseInactive(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCourseInactive)

	_, err := svc.Create(context.Background(), "c1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseInactive)
}

func TestBookingService_Create_Duplicate(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateBooking)

	_, err := svc.Create(context.Background(), "c1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestBookingService_Create_RetriesOnConflict(t *testing.T) {
	svc, bookingRepo, courseRepo, userRepo, notifier := newBookingService(t)

	learner := &domain.User{ID: "u1", Email: "alice@example.com"}
	instructor := &domain.User{ID: "u2", Email: "bob@example.com"}
	course := &domain.Course{ID: "c1", InstructorID: "u2"}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(learner, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPersistenceConflict).Once()
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(instructor, nil)
	notifier.EXPECT().BookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), "c1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_ConflictExhausted(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPersistenceConflict).Times(3)

	_, err := svc.Create(context.Background(), "c1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceConflict)
}

func TestBookingService_Create_NotifyFailuresAreSwallowed(t *testing.T) {
	svc, bookingRepo, courseRepo, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// course lookup for the event fails, the booking still succeeds
	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCourseNotFound)

	booking, err := svc.Create(context.Background(), "c1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, bookingRepo, courseRepo, userRepo, notifier := newBookingService(t)

	cancelledAt := time.Now().UTC()
	booking := &domain.Booking{ID: "b1", CourseID: "c1", LearnerID: "u1"}
	cancelled := &domain.Booking{
		ID:          "b1",
		CourseID:    "c1",
		LearnerID:   "u1",
		IsCancelled: true,
		CancelledAt: &cancelledAt,
	}
	learner := &domain.User{ID: "u1", Email: "alice@example.com"}
	instructor := &domain.User{ID: "u2", Email: "bob@example.com"}
	course := &domain.Course{ID: "c1", Title: "Go Basics", InstructorID: "u2"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(learner, nil)

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(instructor, nil)
	notifier.EXPECT().BookingCancelled(mock.Anything, mock.MatchedBy(func(ev events.BookingCancelled) bool {
		return ev.BookingID == "b1" && ev.CancelledAt == cancelledAt.Unix()
	})).Return()

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", CourseID: "c1", LearnerID: "u1"}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "intruder")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", CourseID: "c1", LearnerID: "u1", IsCancelled: true}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_RetriesOnConflict(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", CourseID: "c1", LearnerID: "u1"}
	cancelled := &domain.Booking{ID: "b1", CourseID: "c1", LearnerID: "u1", IsCancelled: true}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil, domain.ErrPersistenceConflict).Once()
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil).Once()

	// learner lookup fails so no notification goroutine starts;
	// the cancellation itself still succeeds
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
}

func TestBookingService_ListByLearner(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	expected := []*domain.Booking{
		{ID: "b1", CourseID: "c1", LearnerID: "u1"},
		{ID: "b2", CourseID: "c2", LearnerID: "u1", IsCancelled: true},
	}
	bookingRepo.EXPECT().ListByLearner(mock.Anything, "u1").Return(expected, nil)

	bookings, err := svc.ListByLearner(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
}
