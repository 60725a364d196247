package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CheckoutSessionParams struct {
	SlotID       uuid.UUID
	CustomerName string
	Description  string
	AmountCents  int64
	Currency     string
	SuccessURL   string
	CancelURL    string
	ExpiresAt    time.Time
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutResult is what a verified webhook event carries. Completed is false
// for event types we do not act on.
type CheckoutResult struct {
	Completed    bool
	SlotID       uuid.UUID
	CustomerName string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	// ParseWebhookEvent verifies the payload signature and extracts the
	// checkout result. Returns an error on any signature mismatch.
	ParseWebhookEvent(payload []byte, signature string) (*CheckoutResult, error)
}

type BookingNotice struct {
	Name      string
	Day       string
	TimeRange string
}

type Mailer interface {
	SendBookingNotice(ctx context.Context, notice BookingNotice) error
}
