package email

import (
	"context"
	"fmt"
	"strings"

	"cinebooking/config"
	"cinebooking/internal/domain"
	"gopkg.in/gomail.v2"
)

// Sender delivers booking confirmations over SMTP. Each send dials its own
// connection and releases it before returning, so nothing leaks across calls.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, payload domain.NotificationPayload) error {
	if err := ctx.Err(); err != nil {
		return &domain.DeliveryError{Err: err}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", payload.Email)
	m.SetHeader("Subject", fmt.Sprintf("Tickets for movie %s", payload.Ticket.MovieTitle))
	m.SetBody("text/html", body(payload))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return &domain.DeliveryError{Err: err}
	}
	return nil
}

func body(payload domain.NotificationPayload) string {
	t := payload.Ticket
	return fmt.Sprintf(`<h1>Tickets for %s</h1>
<p>Cinema: %s</p>
<p>Room: %s</p>
<p>Seats: %s</p>
<p>Schedule: %s</p>
<p>Description: %s</p>
<p>Total: %.2f</p>
<p>Order: %s</p>
<h3>Enjoy your movie, %s!</h3>`,
		t.MovieTitle, t.CinemaName, t.CinemaRoom, strings.Join(t.Seats, ", "),
		t.Schedule, t.Description, t.TotalAmount, t.OrderID, payload.UserName)
}
