package queries

import (
	"context"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindOpenByDay(ctx context.Context, day string) ([]*SlotView, error)
	FindAll(ctx context.Context) ([]*SlotView, error)
}

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type AvailabilityQueries interface {
	OpenSlots(ctx context.Context, day string) ([]*SlotView, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	AdminPanel(ctx context.Context) (*PanelView, error)
}

type availabilityQueriesImpl struct {
	slots    AvailabilityReadStore
	bookings BookingReadStore
	clock    clock.Clock
}

func NewAvailabilityQueries(slots AvailabilityReadStore, bookings BookingReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		slots:    slots,
		bookings: bookings,
		clock:    clock,
	}
}

// OpenSlots lists the slots a customer may book for the given day. Held
// slots with expired holds are offered again; the read store already filters
// booked ones.
func (q *availabilityQueriesImpl) OpenSlots(ctx context.Context, day string) ([]*SlotView, error) {
	slots, err := q.slots.FindOpenByDay(ctx, day)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list open slots")
	}

	now := q.clock.Now()
	open := make([]*SlotView, 0, len(slots))
	for _, s := range slots {
		if s.OpenAt(now) {
			open = append(open, s)
		}
	}

	return open, nil
}

func (q *availabilityQueriesImpl) SlotByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	slot, err := q.slots.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find slot")
	}
	return slot, nil
}

func (q *availabilityQueriesImpl) AdminPanel(ctx context.Context) (*PanelView, error) {
	bookings, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	slots, err := q.slots.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list availabilities")
	}

	return &PanelView{Bookings: bookings, Slots: slots}, nil
}
