package uow

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/repository"
	"slotbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = pgxTx.Rollback(ctx) }()

	if err := fn(ctx, &pgTx{tx: pgxTx}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

// pgTx lazily builds repositories bound to the running transaction.
type pgTx struct {
	tx             pgx.Tx
	availabilities shared.AvailabilityRepository
	bookings       shared.BookingRepository
}

func (t *pgTx) Availabilities() shared.AvailabilityRepository {
	if t.availabilities == nil {
		t.availabilities = repository.NewAvailabilityRepository(t.tx)
	}
	return t.availabilities
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.tx)
	}
	return t.bookings
}
