package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// holdDuration matches the Stripe session expiry so a slot never stays held
// after its checkout session died.
const holdDuration = 30 * time.Minute

var (
	ErrSlotUnavailable = errs.New("slot is not available")
	ErrPaymentSession  = errs.New("failed to start payment session")
)

type CheckoutCommands interface {
	// Initiate holds the slot and creates a hosted checkout session, returning
	// the URL to redirect the customer to.
	Initiate(ctx context.Context, slotID uuid.UUID, customerName string) (string, error)
	// HandleWebhook processes a raw payment provider event. Only a verified
	// checkout completion mutates bookings.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type checkoutCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
	mailer  shared.Mailer
	clock   clock.Clock
	server  config.ServerConfig
	stripe  config.StripeConfig
	logger  *slog.Logger
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	mailer shared.Mailer,
	clk clock.Clock,
	server config.ServerConfig,
	stripe config.StripeConfig,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:     uow,
		gateway: gateway,
		mailer:  mailer,
		clock:   clk,
		server:  server,
		stripe:  stripe,
		logger:  logger,
	}
}

func (c *checkoutCommandsImpl) Initiate(ctx context.Context, slotID uuid.UUID, customerName string) (string, error) {
	now := c.clock.Now()

	var slot *queries.SlotView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Availabilities().FindByID(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotUnavailable
			}
			return err
		}
		if !found.OpenAt(now) {
			return ErrSlotUnavailable
		}
		if err := tx.Availabilities().Hold(ctx, slotID, now, now.Add(holdDuration)); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return err
		}
		slot = found
		return nil
	})
	if err != nil {
		return "", err
	}

	// The success page is display-only; booking happens via the webhook.
	successURL := fmt.Sprintf(
		"%s/payment-success?slot_id=%s&name=%s",
		c.server.BaseURL, slotID, url.QueryEscape(customerName),
	)

	session, err := c.gateway.CreateCheckoutSession(ctx, shared.CheckoutSessionParams{
		SlotID:       slotID,
		CustomerName: customerName,
		Description:  fmt.Sprintf("Bokning %s %s", slot.Day, slot.TimeRange),
		AmountCents:  c.stripe.PriceCents,
		Currency:     c.stripe.Currency,
		SuccessURL:   successURL,
		CancelURL:    c.server.BaseURL + "/index",
		ExpiresAt:    now.Add(holdDuration),
	})
	if err != nil {
		c.releaseHold(ctx, slotID)
		c.logger.Error("failed to create checkout session", "error", err, "slot_id", slotID)
		// Provider errors are not echoed to customers.
		return "", ErrPaymentSession
	}

	return session.URL, nil
}

func (c *checkoutCommandsImpl) releaseHold(ctx context.Context, slotID uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availabilities().ReleaseHold(ctx, slotID)
	})
	if err != nil {
		// The hold expires on its own, so a failed release only delays reuse.
		c.logger.Warn("failed to release hold", "error", err, "slot_id", slotID)
	}
}

func (c *checkoutCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	result, err := c.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return errs.Wrap(err, "webhook rejected")
	}
	if !result.Completed {
		return nil
	}

	var notice shared.BookingNotice
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Availabilities().FindByID(ctx, result.SlotID)
		if err != nil {
			return err
		}
		if err := tx.Availabilities().MarkBooked(ctx, result.SlotID); err != nil {
			return err
		}

		notice = shared.BookingNotice{
			Name:      result.CustomerName,
			Day:       slot.Day,
			TimeRange: slot.TimeRange,
		}
		return tx.Bookings().Create(ctx, &queries.BookingView{
			ID:        uuid.New(),
			SlotID:    slot.ID,
			Name:      result.CustomerName,
			Day:       slot.Day,
			TimeRange: slot.TimeRange,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Someone else completed the same slot first. Acknowledge the
			// event so the provider stops retrying it.
			c.logger.Warn("slot already booked at payment completion",
				"slot_id", result.SlotID, "customer", result.CustomerName)
			return nil
		}
		return err
	}

	// The booking is committed; a mail failure must not fail the webhook.
	if err := c.mailer.SendBookingNotice(ctx, notice); err != nil {
		c.logger.Error("failed to send booking notice", "error", err, "slot_id", result.SlotID)
	}

	return nil
}
