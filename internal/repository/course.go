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

type CourseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourseRepo(db *dbpg.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// conflictErr maps Postgres serialization and deadlock failures to the
// retry signal; everything else stays a fatal storage error.
func conflictErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return domain.ErrPersistenceConflict
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, title, description, instructor_id, window_start, window_end,
			  		duration_hours, cohort_number, slots_total, slots_booked, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, TRUE, $10, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Title, c.Description, c.InstructorID, c.WindowStart, c.WindowEnd,
		c.DurationHours, c.CohortNumber, c.SlotsTotal, now,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT id, title, description, instructor_id, window_start, window_end,
			  		 duration_hours, cohort_number, slots_total, slots_booked, is_active, created_at, updated_at
			  FROM courses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	c, err := scanCourse(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}

	return c, nil
}

func (r *CourseRepository) ListActive(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, title, description, instructor_id, window_start, window_end,
			  		 duration_hours, cohort_number, slots_total, slots_booked, is_active, created_at, updated_at
			  FROM courses
			  WHERE is_active
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// Update writes the catalog-owned fields. The slots_total guard keeps the
// booked count within the new total at all times; shrinking below the
// current booked count is rejected.
func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses
			  SET title = $2, description = $3, window_start = $4, window_end = $5,
			  	  duration_hours = $6, slots_total = $7, updated_at = now()
			  WHERE id = $1 AND slots_booked <= $7`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Title, c.Description, c.WindowStart, c.WindowEnd,
		c.DurationHours, c.SlotsTotal,
	)
	if err != nil {
		return conflictErr("update course", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update course rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
		return fmt.Errorf("%w: slots_total cannot be below the booked count", domain.ErrValidation)
	}

	return nil
}

// Deactivate is one-way; a second call reports the course as inactive.
func (r *CourseRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE courses
			  SET is_active = FALSE, updated_at = now()
			  WHERE id = $1 AND is_active`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate course: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrCourseInactive
	}

	return nil
}

// RolloverIfDue advances the cohort once the window has elapsed. The WHERE
// clause makes the advance exactly-once under concurrent access. The booked
// count intentionally carries over into the next cohort.
func (r *CourseRepository) RolloverIfDue(ctx context.Context, id string) (bool, error) {
	query := `UPDATE courses
			  SET cohort_number = cohort_number + 1, window_start = NULL, window_end = NULL, updated_at = now()
			  WHERE id = $1 AND window_end IS NOT NULL AND window_end < CURRENT_DATE`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, conflictErr("rollover course", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rollover rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *CourseRepository) RolloverElapsed(ctx context.Context) (int64, error) {
	query := `UPDATE courses
			  SET cohort_number = cohort_number + 1, window_start = NULL, window_end = NULL, updated_at = now()
			  WHERE is_active AND window_end IS NOT NULL AND window_end < CURRENT_DATE`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, conflictErr("rollover sweep", err)
	}

	return res.RowsAffected()
}

func scanCourse(scan func(dest ...any) error) (*domain.Course, error) {
	var (
		c          domain.Course
		start, end sql.NullTime
	)
	err := scan(
		&c.ID, &c.Title, &c.Description, &c.InstructorID, &start, &end,
		&c.DurationHours, &c.CohortNumber, &c.SlotsTotal, &c.SlotsBooked,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		c.WindowStart = &start.Time
	}
	if end.Valid {
		c.WindowEnd = &end.Time
	}

	return &c, nil
}
