package mail

import (
	"context"
	"fmt"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) shared.Mailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendBookingNotice(_ context.Context, notice shared.BookingNotice) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", m.cfg.Recipient)
	msg.SetHeader("Subject", fmt.Sprintf("New booking: %s", notice.Name))
	msg.SetBody("text/plain", fmt.Sprintf(
		"%s booked %s on %s.", notice.Name, notice.TimeRange, notice.Day,
	))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "failed to send booking notice")
	}
	return nil
}
