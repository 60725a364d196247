package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func (s *AvailabilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const query = `
		SELECT id, day, time_range, status, hold_expires_at, created_at
		FROM availabilities
		WHERE id = $1`

	var slot queries.SlotView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&slot.ID, &slot.Day, &slot.TimeRange, &slot.Status, &slot.HoldExpiresAt, &slot.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("availability not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find availability", err)
	}
	return &slot, nil
}

// FindOpenByDay returns the unbooked slots for a day ordered by time range.
// Held slots are included; the caller decides whether their hold expired.
func (s *AvailabilityReadStore) FindOpenByDay(ctx context.Context, day string) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, day, time_range, status, hold_expires_at, created_at
		FROM availabilities
		WHERE day = $1 AND status <> 'booked'
		ORDER BY time_range`

	rows, err := s.pool.Query(ctx, query, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availabilities", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (s *AvailabilityReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, day, time_range, status, hold_expires_at, created_at
		FROM availabilities
		ORDER BY day, time_range`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availabilities", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func scanSlots(rows pgx.Rows) ([]*queries.SlotView, error) {
	slots := make([]*queries.SlotView, 0)
	for rows.Next() {
		var slot queries.SlotView
		if err := rows.Scan(
			&slot.ID, &slot.Day, &slot.TimeRange, &slot.Status, &slot.HoldExpiresAt, &slot.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability", err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availabilities", err)
	}
	return slots, nil
}
