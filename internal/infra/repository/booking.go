package repository

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	q infra.Querier
}

func NewBookingRepository(q infra.Querier) shared.BookingRepository {
	return &BookingRepository{q: q}
}

func (r *BookingRepository) Create(ctx context.Context, booking *queries.BookingView) error {
	const query = `
		INSERT INTO bookings (id, slot_id, name, day, time_range)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(ctx, query, booking.ID, booking.SlotID, booking.Name, booking.Day, booking.TimeRange)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, slot_id, name, day, time_range, created_at
		FROM bookings
		WHERE id = $1`

	var booking queries.BookingView
	err := r.q.QueryRow(ctx, query, id).Scan(
		&booking.ID, &booking.SlotID, &booking.Name, &booking.Day, &booking.TimeRange, &booking.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &booking, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}
