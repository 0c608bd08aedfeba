package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEvent is the notification payload published after a successful
// booking. The worker consumes it and sends the confirmation email.
type TicketEvent struct {
	OrderID     string   `json:"order_id"`
	UserName    string   `json:"user_name"`
	Email       string   `json:"email"`
	MovieTitle  string   `json:"movie_title"`
	CinemaName  string   `json:"cinema_name"`
	CinemaRoom  string   `json:"cinema_room"`
	Seats       []string `json:"seats"`
	Schedule    string   `json:"schedule"`
	TotalAmount float64  `json:"total_amount"`
	Description string   `json:"description"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
