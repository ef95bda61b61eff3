package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) (*CourseService, *mocks.MockCourseRepo, *mocks.MockBookingRepo, *mocks.MockCourseCache) {
	t.Helper()
	repo := mocks.NewMockCourseRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	cache := mocks.NewMockCourseCache(t)

	svc := NewCourseService(repo, bookingRepo, cache, newTestLogger(t))
	return svc, repo, bookingRepo, cache
}

func validCourseInput() domain.CreateCourseInput {
	start := domain.DateOf(time.Now()).AddDate(0, 0, 7)
	end := start.AddDate(0, 1, 0)
	return domain.CreateCourseInput{
		Title:         "Go Basics",
		Description:   "An introduction",
		InstructorID:  "u2",
		WindowStart:   start,
		WindowEnd:     end,
		DurationHours: 40,
		SlotsTotal:    10,
	}
}

func TestCourseService_Create_Success(t *testing.T) {
	svc, repo, _, cache := newCourseService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().InvalidateActive(mock.Anything).Return(nil)

	course, err := svc.Create(context.Background(), validCourseInput())

	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, 1, course.CohortNumber)
	assert.Equal(t, 10, course.SlotsTotal)
	assert.Equal(t, 0, course.SlotsBooked)
	assert.True(t, course.IsActive)
	require.NotNil(t, course.WindowStart)
	require.NotNil(t, course.WindowEnd)
}

func TestCourseService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newCourseService(t)

	in := validCourseInput()
	in.Title = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = validCourseInput()
	in.SlotsTotal = 0
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = validCourseInput()
	in.WindowEnd = in.WindowStart.AddDate(0, 0, -1)
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = validCourseInput()
	in.WindowStart = domain.DateOf(time.Now()).AddDate(0, 0, -1)
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourseService_GetDetails(t *testing.T) {
	svc, repo, bookingRepo, _ := newCourseService(t)

	end := domain.DateOf(time.Now()).AddDate(0, 1, 0)
	course := &domain.Course{
		ID:          "c1",
		Title:       "Go Basics",
		WindowEnd:   &end,
		SlotsTotal:  10,
		SlotsBooked: 3,
		IsActive:    true,
	}
	bookings := []*domain.Booking{
		{ID: "b1", CourseID: "c1", LearnerID: "u1"},
	}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	bookingRepo.EXPECT().ListActiveByCourse(mock.Anything, "c1").Return(bookings, nil)

	details, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 7, details.AvailableSlots)
	assert.Len(t, details.Bookings, 1)
}

func TestCourseService_GetDetails_AppliesDueRollover(t *testing.T) {
	svc, repo, bookingRepo, cache := newCourseService(t)

	end := domain.DateOf(time.Now()).AddDate(0, 0, -2)
	stale := &domain.Course{
		ID:           "c1",
		WindowEnd:    &end,
		CohortNumber: 2,
		SlotsTotal:   10,
		SlotsBooked:  10,
		IsActive:     true,
	}
	rolled := &domain.Course{
		ID:           "c1",
		CohortNumber: 3,
		SlotsTotal:   10,
		SlotsBooked:  10,
		IsActive:     true,
	}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(stale, nil).Once()
	repo.EXPECT().RolloverIfDue(mock.Anything, "c1").Return(true, nil)
	cache.EXPECT().InvalidateActive(mock.Anything).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(rolled, nil).Once()
	bookingRepo.EXPECT().ListActiveByCourse(mock.Anything, "c1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 3, details.Course.CohortNumber)
	assert.Nil(t, details.Course.WindowEnd)
}

func TestCourseService_GetDetails_RolloverLostRace(t *testing.T) {
	svc, repo, bookingRepo, _ := newCourseService(t)

	end := domain.DateOf(time.Now()).AddDate(0, 0, -1)
	stale := &domain.Course{ID: "c1", WindowEnd: &end, CohortNumber: 1, SlotsTotal: 5, IsActive: true}
	fresh := &domain.Course{ID: "c1", CohortNumber: 2, SlotsTotal: 5, IsActive: true}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(stale, nil).Once()
	// another request rolled the cohort over first
	repo.EXPECT().RolloverIfDue(mock.Anything, "c1").Return(false, nil)
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(fresh, nil).Once()
	bookingRepo.EXPECT().ListActiveByCourse(mock.Anything, "c1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 2, details.Course.CohortNumber)
}

func TestCourseService_GetDetails_NotFound(t *testing.T) {
	svc, repo, _, _ := newCourseService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCourseNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_List_CacheHit(t *testing.T) {
	svc, _, _, cache := newCourseService(t)

	cached := []*domain.Course{{ID: "c1", Title: "Go Basics"}}
	cache.EXPECT().GetActive(mock.Anything).Return(cached, nil)

	courses, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCourseService_List_CacheMiss(t *testing.T) {
	svc, repo, _, cache := newCourseService(t)

	fromDB := []*domain.Course{{ID: "c1"}, {ID: "c2"}}

	cache.EXPECT().GetActive(mock.Anything).Return(nil, errors.New("cache miss"))
	repo.EXPECT().RolloverElapsed(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ListActive(mock.Anything).Return(fromDB, nil)
	cache.EXPECT().SetActive(mock.Anything, fromDB).Return(nil)

	courses, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestCourseService_List_CacheSetFailureIgnored(t *testing.T) {
	svc, repo, _, cache := newCourseService(t)

	fromDB := []*domain.Course{{ID: "c1"}}

	cache.EXPECT().GetActive(mock.Anything).Return(nil, errors.New("cache miss"))
	repo.EXPECT().RolloverElapsed(mock.Anything).Return(int64(0), nil)
	repo.EXPECT().ListActive(mock.Anything).Return(fromDB, nil)
	cache.EXPECT().SetActive(mock.Anything, fromDB).Return(errors.New("redis down"))

	courses, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCourseService_Update_MergesFields(t *testing.T) {
	svc, repo, _, cache := newCourseService(t)

	course := &domain.Course{
		ID:         "c1",
		Title:      "Go Basics",
		SlotsTotal: 10,
		IsActive:   true,
	}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *domain.Course) bool {
		return c.Title == "Advanced Go" && c.SlotsTotal == 20
	})).Return(nil)
	cache.EXPECT().InvalidateActive(mock.Anything).Return(nil)

	title := "Advanced Go"
	slots := 20
	updated, err := svc.Update(context.Background(), "c1", domain.UpdateCourseInput{
		Title:      &title,
		SlotsTotal: &slots,
	})

	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", updated.Title)
	assert.Equal(t, 20, updated.SlotsTotal)
}

func TestCourseService_Update_Validation(t *testing.T) {
	svc, repo, _, _ := newCourseService(t)

	course := &domain.Course{ID: "c1", Title: "Go Basics", SlotsTotal: 10, IsActive: true}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)

	zero := 0
	_, err := svc.Update(context.Background(), "c1", domain.UpdateCourseInput{SlotsTotal: &zero})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourseService_Deactivate(t *testing.T) {
	svc, repo, _, cache := newCourseService(t)

	course := &domain.Course{ID: "c1", Title: "Go Basics", SlotsTotal: 10, IsActive: true}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	repo.EXPECT().Deactivate(mock.Anything, "c1").Return(nil)
	cache.EXPECT().InvalidateActive(mock.Anything).Return(nil)

	err := svc.Deactivate(context.Background(), "c1")

	require.NoError(t, err)
}
