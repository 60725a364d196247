package commands

import (
	"context"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleCommands interface {
	// AddAvailability generates slot ranges from the window parameters and
	// stores the ones that do not exist yet. Returns how many were added.
	AddAvailability(ctx context.Context, params schedule.GenerateParams) (int64, error)
	// DeleteAvailability removes a slot unless it is booked or a checkout
	// currently holds it.
	DeleteAvailability(ctx context.Context, id uuid.UUID) error
	// DeleteBooking removes a booking and reopens its slot.
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type scheduleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, clock: clk}
}

func (c *scheduleCommandsImpl) AddAvailability(ctx context.Context, params schedule.GenerateParams) (int64, error) {
	ranges, err := schedule.BuildRanges(params)
	if err != nil {
		return 0, err
	}

	var inserted int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Availabilities().InsertRanges(ctx, params.Day, ranges)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (c *scheduleCommandsImpl) DeleteAvailability(ctx context.Context, id uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availabilities().DeleteIfNotBooked(ctx, id, now)
	})
}

func (c *scheduleCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			return err
		}
		return tx.Availabilities().Release(ctx, booking.SlotID)
	})
}
