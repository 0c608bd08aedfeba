package kafka

import (
	"context"

	"cinebooking/internal/domain"
)

// Dispatcher publishes ticket confirmations to the notifications topic. The
// worker picks them up and sends the actual email, so a slow SMTP hop never
// sits on the booking path.
type Dispatcher struct {
	producer *Producer
	topic    string
}

func NewDispatcher(producer *Producer, topic string) *Dispatcher {
	return &Dispatcher{producer: producer, topic: topic}
}

func (d *Dispatcher) Send(ctx context.Context, payload domain.NotificationPayload) error {
	event := TicketEvent{
		OrderID:     payload.Ticket.OrderID,
		UserName:    payload.UserName,
		Email:       payload.Email,
		MovieTitle:  payload.Ticket.MovieTitle,
		CinemaName:  payload.Ticket.CinemaName,
		CinemaRoom:  payload.Ticket.CinemaRoom,
		Seats:       payload.Ticket.Seats,
		Schedule:    payload.Ticket.Schedule,
		TotalAmount: payload.Ticket.TotalAmount,
		Description: payload.Ticket.Description,
	}
	if err := d.producer.Publish(ctx, d.topic, payload.Ticket.OrderID, event); err != nil {
		return &domain.DeliveryError{Err: err}
	}
	return nil
}
