package queries

import (
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

type SlotView struct {
	ID            uuid.UUID
	Day           string
	TimeRange     string
	Status        schedule.SlotStatus
	HoldExpiresAt *time.Time
	CreatedAt     time.Time
}

// OpenAt reports whether the slot can be offered to a customer: available,
// or held by a checkout whose hold has already expired.
func (s *SlotView) OpenAt(now time.Time) bool {
	switch s.Status {
	case schedule.StatusAvailable:
		return true
	case schedule.StatusHeld:
		return s.HoldExpiresAt != nil && !s.HoldExpiresAt.After(now)
	default:
		return false
	}
}

type BookingView struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	Name      string
	Day       string
	TimeRange string
	CreatedAt time.Time
}

// PanelView is everything the admin panel shows on one page.
type PanelView struct {
	Bookings []*BookingView
	Slots    []*SlotView
}
