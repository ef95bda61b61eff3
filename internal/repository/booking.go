package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create reserves a slot and persists the booking as one unit. The course
// row lock is the per-course critical section: rollover, the active flag,
// the duplicate check, the capacity check and the increment all happen
// under it, so no concurrent reserve or release observes an intermediate
// state. The partial unique index on (course_id, learner_id) backs the
// duplicate check at the storage level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		slotsTotal  int
		slotsBooked int
		isActive    bool
		windowEnd   sql.NullTime
	)
	lockQuery := `SELECT slots_total, slots_booked, is_active, window_end
				  FROM courses
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.CourseID).Scan(
		&slotsTotal, &slotsBooked, &isActive, &windowEnd,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return conflictErr("lock course", err)
	}

	// Rollover comes before every other check so nobody books into an
	// already-elapsed cohort. Booked count carries over unchanged.
	if windowEnd.Valid && windowEnd.Time.Before(domain.DateOf(b.CreatedAt)) {
		rollQuery := `UPDATE courses
					  SET cohort_number = cohort_number + 1, window_start = NULL, window_end = NULL, updated_at = now()
					  WHERE id = $1`
		if _, err = tx.ExecContext(ctx, rollQuery, b.CourseID); err != nil {
			return conflictErr("rollover course", err)
		}
	}

	if !isActive {
		return domain.ErrCourseInactive
	}

	var hasActive bool
	dupQuery := `SELECT EXISTS (
					SELECT 1 FROM bookings
					WHERE course_id = $1 AND learner_id = $2 AND NOT is_cancelled
				 )`
	if err = tx.QueryRowContext(ctx, dupQuery, b.CourseID, b.LearnerID).Scan(&hasActive); err != nil {
		return conflictErr("check duplicate", err)
	}
	if hasActive {
		return domain.ErrDuplicateBooking
	}

	if slotsBooked >= slotsTotal {
		return domain.ErrCourseFull
	}

	reserveQuery := `UPDATE courses
					 SET slots_booked = slots_booked + 1, updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, reserveQuery, b.CourseID); err != nil {
		return conflictErr("reserve slot", err)
	}

	insertQuery := `INSERT INTO bookings (id, course_id, learner_id, created_at, is_cancelled)
					VALUES ($1, $2, $3, $4, FALSE)`
	if _, err = tx.ExecContext(ctx, insertQuery, b.ID, b.CourseID, b.LearnerID, b.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateBooking
		}
		return conflictErr("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		return conflictErr("commit booking", err)
	}

	return nil
}

// Cancel flips the booking and releases its slot in one transaction.
// The cancelled check runs again under the row lock, so double cancels
// release capacity exactly once. The release is floored at zero.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	lockQuery := `SELECT id, course_id, learner_id, created_at, is_cancelled
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(
		&b.ID, &b.CourseID, &b.LearnerID, &b.CreatedAt, &b.IsCancelled,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, conflictErr("lock booking", err)
	}

	if b.IsCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	now := time.Now().UTC()
	cancelQuery := `UPDATE bookings
					SET is_cancelled = TRUE, cancelled_at = $2
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, cancelQuery, id, now); err != nil {
		return nil, conflictErr("cancel booking", err)
	}

	releaseQuery := `UPDATE courses
					 SET slots_booked = GREATEST(slots_booked - 1, 0), updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseQuery, b.CourseID); err != nil {
		return nil, conflictErr("release slot", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, conflictErr("commit cancel", err)
	}

	b.IsCancelled = true
	b.CancelledAt = &now

	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, course_id, learner_id, created_at, is_cancelled, cancelled_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByLearner(ctx context.Context, learnerID string) ([]*domain.Booking, error) {
	query := `SELECT id, course_id, learner_id, created_at, is_cancelled, cancelled_at
			  FROM bookings
			  WHERE learner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by learner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListActiveByCourse(ctx context.Context, courseID string) ([]*domain.Booking, error) {
	query := `SELECT id, course_id, learner_id, created_at, is_cancelled, cancelled_at
			  FROM bookings
			  WHERE course_id = $1 AND NOT is_cancelled
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by course: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b           domain.Booking
		cancelledAt sql.NullTime
	)
	if err := scan(&b.ID, &b.CourseID, &b.LearnerID, &b.CreatedAt, &b.IsCancelled, &cancelledAt); err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	return &b, nil
}
