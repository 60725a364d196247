//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newScheduleHarness() (*fakeStore, commands.ScheduleCommands) {
	store := newFakeStore()
	return store, commands.NewScheduleCommands(&fakeUoW{store: store}, clock.NewFixed(testNow))
}

func TestAddAvailability(t *testing.T) {
	t.Parallel()

	t.Run("stores the generated ranges", func(t *testing.T) {
		store, cmd := newScheduleHarness()

		inserted, err := cmd.AddAvailability(context.Background(), schedule.GenerateParams{
			Day:        "2025-03-14",
			Start:      "09:00",
			End:        "12:00",
			SlotLength: 60,
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), inserted)
		require.Len(t, store.slots, 3)
	})

	t.Run("skips ranges that already exist", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		params := schedule.GenerateParams{
			Day:        "2025-03-14",
			Start:      "09:00",
			End:        "11:00",
			SlotLength: 60,
		}

		_, err := cmd.AddAvailability(context.Background(), params)
		require.NoError(t, err)

		inserted, err := cmd.AddAvailability(context.Background(), params)
		require.NoError(t, err)
		require.Zero(t, inserted)
		require.Len(t, store.slots, 2)
	})

	t.Run("rejects invalid parameters before touching storage", func(t *testing.T) {
		store, cmd := newScheduleHarness()

		_, err := cmd.AddAvailability(context.Background(), schedule.GenerateParams{
			Day:        "14/03/2025",
			Start:      "09:00",
			End:        "12:00",
			SlotLength: 60,
		})
		require.ErrorIs(t, err, schedule.ErrInvalidDay)
		require.Empty(t, store.slots)
	})
}

func TestDeleteAvailability(t *testing.T) {
	t.Parallel()

	t.Run("removes an unbooked slot", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		store.addSlot(slot)

		require.NoError(t, cmd.DeleteAvailability(context.Background(), slot.ID))
		require.Empty(t, store.slots)
	})

	t.Run("keeps a booked slot", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		slot.Status = schedule.StatusBooked
		store.addSlot(slot)

		require.NoError(t, cmd.DeleteAvailability(context.Background(), slot.ID))
		require.Len(t, store.slots, 1)
	})

	t.Run("keeps a slot held by a live checkout", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		slot.Status = schedule.StatusHeld
		expiry := testNow.Add(10 * time.Minute)
		slot.HoldExpiresAt = &expiry
		store.addSlot(slot)

		require.NoError(t, cmd.DeleteAvailability(context.Background(), slot.ID))
		require.Len(t, store.slots, 1)
	})

	t.Run("removes a slot whose hold expired", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		slot.Status = schedule.StatusHeld
		expiry := testNow.Add(-10 * time.Minute)
		slot.HoldExpiresAt = &expiry
		store.addSlot(slot)

		require.NoError(t, cmd.DeleteAvailability(context.Background(), slot.ID))
		require.Empty(t, store.slots)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()

	t.Run("removes the booking and reopens the slot", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		slot.Status = schedule.StatusBooked
		store.addSlot(slot)

		bookingID := uuid.New()
		store.bookings[bookingID] = &queries.BookingView{
			ID:        bookingID,
			SlotID:    slot.ID,
			Name:      "Alice",
			Day:       slot.Day,
			TimeRange: slot.TimeRange,
		}

		require.NoError(t, cmd.DeleteBooking(context.Background(), bookingID))
		require.Empty(t, store.bookings)
		require.Equal(t, schedule.StatusAvailable, store.slots[slot.ID].Status)
	})

	t.Run("is a no-op for an unknown booking", func(t *testing.T) {
		store, cmd := newScheduleHarness()
		slot := availableSlot("2025-03-14", "10:00 - 11:00")
		store.addSlot(slot)

		require.NoError(t, cmd.DeleteBooking(context.Background(), uuid.New()))
		require.Len(t, store.slots, 1)
	})
}
