package ports

import (
	"context"

	"github.com/azaria-morake/slotflow/internal/domain"
)

type BookingRepo interface {
	// Create runs the whole reservation chain in one course-scoped
	// transaction: rollover, active flag, duplicate and capacity checks,
	// slot increment and booking insert commit together or not at all.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Cancel flips the booking and releases its slot atomically.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ListByLearner(ctx context.Context, learnerID string) ([]*domain.Booking, error)
	ListActiveByCourse(ctx context.Context, courseID string) ([]*domain.Booking, error)
}
