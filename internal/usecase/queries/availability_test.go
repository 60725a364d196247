//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type stubSlotStore struct {
	byDay []*queries.SlotView
	all   []*queries.SlotView
	byID  *queries.SlotView
	err   error
}

func (s *stubSlotStore) FindByID(context.Context, uuid.UUID) (*queries.SlotView, error) {
	return s.byID, s.err
}

func (s *stubSlotStore) FindOpenByDay(context.Context, string) ([]*queries.SlotView, error) {
	return s.byDay, s.err
}

func (s *stubSlotStore) FindAll(context.Context) ([]*queries.SlotView, error) {
	return s.all, s.err
}

type stubBookingStore struct {
	all []*queries.BookingView
	err error
}

func (s *stubBookingStore) FindAll(context.Context) ([]*queries.BookingView, error) {
	return s.all, s.err
}

func slotWith(status schedule.SlotStatus, holdExpiry *time.Time) *queries.SlotView {
	return &queries.SlotView{
		ID:            uuid.New(),
		Day:           "2025-03-14",
		TimeRange:     "10:00 - 11:00",
		Status:        status,
		HoldExpiresAt: holdExpiry,
	}
}

func TestOpenSlots(t *testing.T) {
	t.Parallel()

	activeHold := testNow.Add(10 * time.Minute)
	expiredHold := testNow.Add(-10 * time.Minute)

	available := slotWith(schedule.StatusAvailable, nil)
	held := slotWith(schedule.StatusHeld, &activeHold)
	reclaimable := slotWith(schedule.StatusHeld, &expiredHold)

	store := &stubSlotStore{byDay: []*queries.SlotView{available, held, reclaimable}}
	q := queries.NewAvailabilityQueries(store, &stubBookingStore{}, clock.NewFixed(testNow))

	open, err := q.OpenSlots(context.Background(), "2025-03-14")
	require.NoError(t, err)

	require.Len(t, open, 2)
	require.Equal(t, available.ID, open[0].ID)
	require.Equal(t, reclaimable.ID, open[1].ID)
}

func TestOpenSlotsError(t *testing.T) {
	t.Parallel()

	store := &stubSlotStore{err: errors.New("connection refused")}
	q := queries.NewAvailabilityQueries(store, &stubBookingStore{}, clock.NewFixed(testNow))

	_, err := q.OpenSlots(context.Background(), "2025-03-14")
	require.Error(t, err)
}

func TestAdminPanel(t *testing.T) {
	t.Parallel()

	booking := &queries.BookingView{ID: uuid.New(), Name: "Alice"}
	slot := slotWith(schedule.StatusBooked, nil)

	q := queries.NewAvailabilityQueries(
		&stubSlotStore{all: []*queries.SlotView{slot}},
		&stubBookingStore{all: []*queries.BookingView{booking}},
		clock.NewFixed(testNow),
	)

	panel, err := q.AdminPanel(context.Background())
	require.NoError(t, err)
	require.Len(t, panel.Bookings, 1)
	require.Len(t, panel.Slots, 1)
}

func TestSlotOpenAt(t *testing.T) {
	t.Parallel()

	activeHold := testNow.Add(time.Minute)
	expiredHold := testNow.Add(-time.Minute)
	exactHold := testNow

	tests := []struct {
		name string
		slot *queries.SlotView
		want bool
	}{
		{name: "available", slot: slotWith(schedule.StatusAvailable, nil), want: true},
		{name: "booked", slot: slotWith(schedule.StatusBooked, nil), want: false},
		{name: "held with active hold", slot: slotWith(schedule.StatusHeld, &activeHold), want: false},
		{name: "held with expired hold", slot: slotWith(schedule.StatusHeld, &expiredHold), want: true},
		{name: "held expiring exactly now", slot: slotWith(schedule.StatusHeld, &exactHold), want: true},
		{name: "held without expiry", slot: slotWith(schedule.StatusHeld, nil), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.slot.OpenAt(testNow))
		})
	}
}
