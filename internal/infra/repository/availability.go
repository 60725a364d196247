package repository

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityRepository struct {
	q infra.Querier
}

func NewAvailabilityRepository(q infra.Querier) shared.AvailabilityRepository {
	return &AvailabilityRepository{q: q}
}

func (r *AvailabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const query = `
		SELECT id, day, time_range, status, hold_expires_at, created_at
		FROM availabilities
		WHERE id = $1`

	var slot queries.SlotView
	err := r.q.QueryRow(ctx, query, id).Scan(
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

// InsertRanges skips ranges that already exist for the day instead of
// failing, so re-submitting an overlapping window is harmless.
func (r *AvailabilityRepository) InsertRanges(ctx context.Context, day string, ranges []string) (int64, error) {
	const query = `
		INSERT INTO availabilities (id, day, time_range)
		VALUES ($1, $2, $3)
		ON CONFLICT (day, time_range) DO NOTHING`

	var inserted int64
	for _, tr := range ranges {
		tag, err := r.q.Exec(ctx, query, uuid.New(), day, tr)
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to insert availability", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r *AvailabilityRepository) Hold(ctx context.Context, id uuid.UUID, now time.Time, until time.Time) error {
	const query = `
		UPDATE availabilities
		SET status = 'held', hold_expires_at = $2, updated_at = now()
		WHERE id = $1
		  AND (status = 'available' OR (status = 'held' AND hold_expires_at <= $3))`

	tag, err := r.q.Exec(ctx, query, id, until, now)
	if err != nil {
		return infra.WrapRepoErr("failed to hold availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability is not open", nil, infra.KindConflict)
	}
	return nil
}

func (r *AvailabilityRepository) ReleaseHold(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE availabilities
		SET status = 'available', hold_expires_at = NULL, updated_at = now()
		WHERE id = $1 AND status = 'held'`

	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to release hold", err)
	}
	return nil
}

func (r *AvailabilityRepository) MarkBooked(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE availabilities
		SET status = 'booked', hold_expires_at = NULL, updated_at = now()
		WHERE id = $1 AND status <> 'booked'`

	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark availability booked", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability is already booked", nil, infra.KindConflict)
	}
	return nil
}

func (r *AvailabilityRepository) Release(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE availabilities
		SET status = 'available', hold_expires_at = NULL, updated_at = now()
		WHERE id = $1`

	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to release availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) DeleteIfNotBooked(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
		DELETE FROM availabilities
		WHERE id = $1
		  AND status <> 'booked'
		  AND (status <> 'held' OR hold_expires_at <= $2)`

	if _, err := r.q.Exec(ctx, query, id, now); err != nil {
		return infra.WrapRepoErr("failed to delete availability", err)
	}
	return nil
}
