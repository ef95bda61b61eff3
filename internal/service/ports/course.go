package ports

import (
	"context"

	"github.com/azaria-morake/slotflow/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	ListActive(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Deactivate(ctx context.Context, id string) error
	// RolloverIfDue advances the cohort if the window has elapsed.
	// Returns true when a rollover actually happened.
	RolloverIfDue(ctx context.Context, id string) (bool, error)
	// RolloverElapsed sweeps all active courses with elapsed windows.
	RolloverElapsed(ctx context.Context) (int64, error)
}
