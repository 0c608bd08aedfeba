package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cinebooking/config"
	"cinebooking/internal/domain"
	"cinebooking/internal/email"
	"cinebooking/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.SMTP)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.TicketEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode ticket event: %v", err)
			return nil
		}

		payload := domain.NotificationPayload{
			Ticket: domain.TicketRecord{
				OrderID:     event.OrderID,
				Description: event.Description,
				TotalAmount: event.TotalAmount,
				CinemaName:  event.CinemaName,
				CinemaRoom:  event.CinemaRoom,
				Seats:       event.Seats,
				MovieTitle:  event.MovieTitle,
				Schedule:    event.Schedule,
			},
			UserName: event.UserName,
			Email:    event.Email,
		}

		// delivery failures are logged and the offset still advances; the
		// booking itself is long since durable
		if err := sender.Send(ctx, payload); err != nil {
			log.Printf("send confirmation for order %s: %v", event.OrderID, err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
