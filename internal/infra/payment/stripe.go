package payment

import (
	"context"
	"encoding/json"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataSlotID       = "slot_id"
	metadataCustomerName = "customer_name"
)

type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) shared.PaymentGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{webhookSecret: cfg.WebhookSecret}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p shared.CheckoutSessionParams) (*shared.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.Description),
					},
					UnitAmount: stripe.Int64(p.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		ExpiresAt:  stripe.Int64(p.ExpiresAt.Unix()),
	}
	params.Context = ctx
	params.AddMetadata(metadataSlotID, p.SlotID.String())
	params.AddMetadata(metadataCustomerName, p.CustomerName)

	sess, err := session.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}

	return &shared.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhookEvent verifies the Stripe signature before trusting anything in
// the payload. Event types other than checkout.session.completed come back
// with Completed false.
func (g *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (*shared.CheckoutResult, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "failed to verify webhook signature")
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return &shared.CheckoutResult{Completed: false}, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout session event")
	}

	slotID, err := uuid.Parse(sess.Metadata[metadataSlotID])
	if err != nil {
		return nil, errs.Wrap(err, "checkout session has no valid slot id")
	}

	return &shared.CheckoutResult{
		Completed:    true,
		SlotID:       slotID,
		CustomerName: sess.Metadata[metadataCustomerName],
	}, nil
}
