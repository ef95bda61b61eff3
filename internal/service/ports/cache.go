package ports

import (
	"context"

	"github.com/azaria-morake/slotflow/internal/domain"
)

// CourseCache serves the read path only; booking and cancellation always
// go straight to the database. A cached listing is served as-is, so booked
// counts and cohort rollovers can lag by up to the configured TTL.
type CourseCache interface {
	GetActive(ctx context.Context) ([]*domain.Course, error)
	SetActive(ctx context.Context, courses []*domain.Course) error
	InvalidateActive(ctx context.Context) error
}
