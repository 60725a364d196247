//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the write side. It applies the same
// state transition rules as the SQL repositories.
type fakeStore struct {
	slots    map[uuid.UUID]*queries.SlotView
	bookings map[uuid.UUID]*queries.BookingView
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:    make(map[uuid.UUID]*queries.SlotView),
		bookings: make(map[uuid.UUID]*queries.BookingView),
	}
}

func (s *fakeStore) addSlot(slot queries.SlotView) {
	copied := slot
	s.slots[slot.ID] = &copied
}

type fakeUoW struct {
	store    *fakeStore
	beginErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Availabilities() shared.AvailabilityRepository { return &fakeAvailabilityRepo{t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository            { return &fakeBookingRepo{t.store} }

type fakeAvailabilityRepo struct {
	store *fakeStore
}

func (r *fakeAvailabilityRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("availability not found", errors.New("no rows"), infra.KindNotFound)
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeAvailabilityRepo) InsertRanges(_ context.Context, day string, ranges []string) (int64, error) {
	var inserted int64
	for _, tr := range ranges {
		exists := false
		for _, slot := range r.store.slots {
			if slot.Day == day && slot.TimeRange == tr {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		id := uuid.New()
		r.store.slots[id] = &queries.SlotView{
			ID: id, Day: day, TimeRange: tr, Status: schedule.StatusAvailable,
		}
		inserted++
	}
	return inserted, nil
}

func (r *fakeAvailabilityRepo) Hold(_ context.Context, id uuid.UUID, now time.Time, until time.Time) error {
	slot, ok := r.store.slots[id]
	if !ok {
		return infra.WrapRepoErr("availability is not open", nil, infra.KindConflict)
	}
	open := slot.Status == schedule.StatusAvailable ||
		(slot.Status == schedule.StatusHeld && slot.HoldExpiresAt != nil && !slot.HoldExpiresAt.After(now))
	if !open {
		return infra.WrapRepoErr("availability is not open", nil, infra.KindConflict)
	}
	slot.Status = schedule.StatusHeld
	expiry := until
	slot.HoldExpiresAt = &expiry
	return nil
}

func (r *fakeAvailabilityRepo) ReleaseHold(_ context.Context, id uuid.UUID) error {
	if slot, ok := r.store.slots[id]; ok && slot.Status == schedule.StatusHeld {
		slot.Status = schedule.StatusAvailable
		slot.HoldExpiresAt = nil
	}
	return nil
}

func (r *fakeAvailabilityRepo) MarkBooked(_ context.Context, id uuid.UUID) error {
	slot, ok := r.store.slots[id]
	if !ok || slot.Status == schedule.StatusBooked {
		return infra.WrapRepoErr("availability is already booked", nil, infra.KindConflict)
	}
	slot.Status = schedule.StatusBooked
	slot.HoldExpiresAt = nil
	return nil
}

func (r *fakeAvailabilityRepo) Release(_ context.Context, id uuid.UUID) error {
	if slot, ok := r.store.slots[id]; ok {
		slot.Status = schedule.StatusAvailable
		slot.HoldExpiresAt = nil
	}
	return nil
}

func (r *fakeAvailabilityRepo) DeleteIfNotBooked(_ context.Context, id uuid.UUID, now time.Time) error {
	slot, ok := r.store.slots[id]
	if !ok || slot.Status == schedule.StatusBooked {
		return nil
	}
	liveHold := slot.Status == schedule.StatusHeld &&
		slot.HoldExpiresAt != nil && slot.HoldExpiresAt.After(now)
	if liveHold {
		return nil
	}
	delete(r.store.slots, id)
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *queries.BookingView) error {
	copied := *booking
	r.store.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.bookings, id)
	return nil
}

type fakeGateway struct {
	lastParams *shared.CheckoutSessionParams
	session    *shared.CheckoutSession
	createErr  error

	parseResult *shared.CheckoutResult
	parseErr    error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, params shared.CheckoutSessionParams) (*shared.CheckoutSession, error) {
	g.lastParams = &params
	if g.createErr != nil {
		return nil, g.createErr
	}
	if g.session != nil {
		return g.session, nil
	}
	return &shared.CheckoutSession{ID: "cs_test", URL: "https://checkout.example.com/cs_test"}, nil
}

func (g *fakeGateway) ParseWebhookEvent(_ []byte, _ string) (*shared.CheckoutResult, error) {
	if g.parseErr != nil {
		return nil, g.parseErr
	}
	return g.parseResult, nil
}

type fakeMailer struct {
	notices []shared.BookingNotice
	sendErr error
}

func (m *fakeMailer) SendBookingNotice(_ context.Context, notice shared.BookingNotice) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.notices = append(m.notices, notice)
	return nil
}
