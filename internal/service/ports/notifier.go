package ports

import (
	"context"

	"github.com/azaria-morake/slotflow/internal/events"
)

// BookingNotifier is fire-and-forget: implementations log failures and
// never propagate them back into the booking flow.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, ev events.BookingCreated)
	BookingCancelled(ctx context.Context, ev events.BookingCancelled)
}
