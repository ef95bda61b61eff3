//go:build integration

package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// These tests need a real Postgres because the capacity and duplicate
// invariants live in the transaction SQL, not in Go code. Run with:
//
//	TEST_DB_DSN="host=localhost port=5432 user=postgres password=postgres dbname=slotflow_test sslmode=disable" \
//	  go test -tags integration ./internal/repository/...

func setupDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 10})
	require.NoError(t, err)
	require.NoError(t, goose.Up(db.Master, "../../migrations"))

	_, err = db.Master.Exec(`TRUNCATE bookings, courses, users CASCADE`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Master.Exec(`TRUNCATE bookings, courses, users CASCADE`)
		_ = db.Master.Close()
	})

	return db
}

func insertUser(t *testing.T, db *dbpg.DB) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Master.Exec(
		`INSERT INTO users (id, username, email) VALUES ($1, $2, $3)`,
		id, "user-"+id[:8], id[:8]+"@example.com",
	)
	require.NoError(t, err)
	return id
}

func insertCourse(t *testing.T, db *dbpg.DB, instructorID string, slotsTotal int, windowEnd *time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Master.Exec(
		`INSERT INTO courses (id, title, instructor_id, window_end, slots_total)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, "Go Basics", instructorID, windowEnd, slotsTotal,
	)
	require.NoError(t, err)
	return id
}

func courseCounters(t *testing.T, db *dbpg.DB, id string) (booked, cohort int) {
	t.Helper()
	err := db.Master.QueryRow(
		`SELECT slots_booked, cohort_number FROM courses WHERE id = $1`, id,
	).Scan(&booked, &cohort)
	require.NoError(t, err)
	return booked, cohort
}

func activeBookings(t *testing.T, db *dbpg.DB, courseID string) int {
	t.Helper()
	var n int
	err := db.Master.QueryRow(
		`SELECT count(*) FROM bookings WHERE course_id = $1 AND NOT is_cancelled`, courseID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestBookingRepository_Create_CapacityBoundUnderConcurrency(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepo(db)

	const slots = 3
	const contenders = 10

	instructor := insertUser(t, db)
	courseID := insertCourse(t, db, instructor, slots, nil)

	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		learnerID := insertUser(t, db)
		wg.Add(1)
		go func(i int, learnerID string) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), &domain.Booking{
				ID:        uuid.New().String(),
				CourseID:  courseID,
				LearnerID: learnerID,
				CreatedAt: time.Now().UTC(),
			})
		}(i, learnerID)
	}
	wg.Wait()

	var won, full int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, domain.ErrCourseFull)
			full++
		}
	}

	assert.Equal(t, slots, won)
	assert.Equal(t, contenders-slots, full)

	booked, _ := courseCounters(t, db, courseID)
	assert.Equal(t, slots, booked)
	assert.Equal(t, slots, activeBookings(t, db, courseID))
}

func TestBookingRepository_Create_ConcurrentDuplicateSingleWinner(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepo(db)

	const attempts = 8

	instructor := insertUser(t, db)
	learner := insertUser(t, db)
	courseID := insertCourse(t, db, instructor, 5, nil)

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), &domain.Booking{
				ID:        uuid.New().String(),
				CourseID:  courseID,
				LearnerID: learner,
				CreatedAt: time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()

	var won, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, domain.ErrDuplicateBooking)
			dup++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, dup)

	booked, _ := courseCounters(t, db, courseID)
	assert.Equal(t, 1, booked)
}

func TestBookingRepository_Cancel_ReleasesExactlyOnce(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepo(db)

	const cancellers = 6

	instructor := insertUser(t, db)
	learner := insertUser(t, db)
	courseID := insertCourse(t, db, instructor, 5, nil)

	bookingID := uuid.New().String()
	require.NoError(t, repo.Create(context.Background(), &domain.Booking{
		ID:        bookingID,
		CourseID:  courseID,
		LearnerID: learner,
		CreatedAt: time.Now().UTC(),
	}))

	booked, _ := courseCounters(t, db, courseID)
	require.Equal(t, 1, booked)

	errs := make([]error, cancellers)
	var wg sync.WaitGroup
	for i := 0; i < cancellers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Cancel(context.Background(), bookingID)
		}(i)
	}
	wg.Wait()

	var won, already int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, domain.ErrAlreadyCancelled)
			already++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, cancellers-1, already)

	booked, _ = courseCounters(t, db, courseID)
	assert.Equal(t, 0, booked)
	assert.Equal(t, 0, activeBookings(t, db, courseID))
}

func TestBookingRepository_CreateCancelChurn_KeepsBookedInBounds(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepo(db)

	const slots = 2
	const learners = 8

	instructor := insertUser(t, db)
	courseID := insertCourse(t, db, instructor, slots, nil)

	// every learner books and, if the slot was won, immediately cancels;
	// the counter must stay within [0, slots_total] throughout or the
	// CHECK constraints abort the offending transaction
	var wg sync.WaitGroup
	for i := 0; i < learners; i++ {
		learnerID := insertUser(t, db)
		wg.Add(1)
		go func(learnerID string) {
			defer wg.Done()
			bookingID := uuid.New().String()
			err := repo.Create(context.Background(), &domain.Booking{
				ID:        bookingID,
				CourseID:  courseID,
				LearnerID: learnerID,
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				return
			}
			_, _ = repo.Cancel(context.Background(), bookingID)
		}(learnerID)
	}
	wg.Wait()

	booked, _ := courseCounters(t, db, courseID)
	assert.GreaterOrEqual(t, booked, 0)
	assert.LessOrEqual(t, booked, slots)
	assert.Equal(t, activeBookings(t, db, courseID), booked)
}

func TestBookingRepository_Create_RollsOverElapsedWindowOnce(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepo(db)

	instructor := insertUser(t, db)
	yesterday := domain.DateOf(time.Now()).AddDate(0, 0, -1)
	courseID := insertCourse(t, db, instructor, 5, &yesterday)

	first := insertUser(t, db)
	require.NoError(t, repo.Create(context.Background(), &domain.Booking{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		LearnerID: first,
		CreatedAt: time.Now().UTC(),
	}))

	_, cohort := courseCounters(t, db, courseID)
	assert.Equal(t, 2, cohort)

	// the window is now cleared, so a second booking must not advance again
	second := insertUser(t, db)
	require.NoError(t, repo.Create(context.Background(), &domain.Booking{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		LearnerID: second,
		CreatedAt: time.Now().UTC(),
	}))

	booked, cohort := courseCounters(t, db, courseID)
	assert.Equal(t, 2, cohort)
	assert.Equal(t, 2, booked)
}
