package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	const query = `
		SELECT id, slot_id, name, day, time_range, created_at
		FROM bookings
		ORDER BY day, time_range`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	bookings := make([]*queries.BookingView, 0)
	for rows.Next() {
		var booking queries.BookingView
		if err := rows.Scan(
			&booking.ID, &booking.SlotID, &booking.Name, &booking.Day, &booking.TimeRange, &booking.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return bookings, nil
}
