package components

import (
	"slotbook/internal/infra/mail"
	"slotbook/internal/infra/payment"
	"slotbook/internal/infra/readstore"
	"slotbook/internal/infra/uow"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side goes through the unit of work; only read stores touch
		// the pool directly.
		uow.NewPostgresUnitOfWork,
		readstore.NewAvailabilityReadStore,
		readstore.NewBookingReadStore,
		payment.NewStripeGateway,
		mail.NewSMTPMailer,
	),
)
