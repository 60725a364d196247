package shared

import (
	"context"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Tx exposes the write-side repositories bound to one database transaction.
type Tx interface {
	Availabilities() AvailabilityRepository
	Bookings() BookingRepository
}

// UnitOfWork runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type AvailabilityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error)
	// InsertRanges adds the given time ranges for a day, skipping ones that
	// already exist. Returns the number of rows actually inserted.
	InsertRanges(ctx context.Context, day string, ranges []string) (int64, error)
	// Hold marks the slot as held until the given time. It only succeeds when
	// the slot is available or carries a hold that expired before now;
	// otherwise it fails with a conflict.
	Hold(ctx context.Context, id uuid.UUID, now time.Time, until time.Time) error
	// ReleaseHold reverts a held slot to available. A no-op when the slot is
	// not held.
	ReleaseHold(ctx context.Context, id uuid.UUID) error
	// MarkBooked transitions the slot to booked. Fails with a conflict when
	// the slot is already booked.
	MarkBooked(ctx context.Context, id uuid.UUID) error
	// Release reverts a booked slot to available.
	Release(ctx context.Context, id uuid.UUID) error
	// DeleteIfNotBooked removes the slot unless it is booked or held by a
	// checkout whose hold has not expired. A no-op when protected or missing.
	DeleteIfNotBooked(ctx context.Context, id uuid.UUID, now time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *queries.BookingView) error
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
