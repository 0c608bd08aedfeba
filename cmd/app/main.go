package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinebooking/api"
	"cinebooking/config"
	"cinebooking/internal/bootstrap"
	"cinebooking/internal/cache"
	"cinebooking/internal/email"
	"cinebooking/internal/kafka"
	"cinebooking/internal/payment"
	"cinebooking/internal/repository"
	"cinebooking/internal/service/booking"
	"cinebooking/internal/service/catalog"
	paymentsvc "cinebooking/internal/service/payment"
	"cinebooking/internal/validate"
	"github.com/jackc/pgx/v5/pgxpool"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	validator := validate.New()
	gateway := payment.NewHTTPGateway(cfg.Payment)
	dispatcher := kafka.NewDispatcher(producer, cfg.Kafka.NotificationsTopic)
	sender := email.NewSender(cfg.SMTP)

	bookingStore := repository.NewBookingStore(pool)
	purchaseStore := repository.NewPurchaseStore(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	purchaseService := paymentsvc.NewPurchaseService(validator, gateway, purchaseStore)
	bookingService := booking.NewBookingService(
		validator,
		purchaseService,
		bookingStore,
		dispatcher,
		cfg.Booking.Currency,
		time.Duration(cfg.Booking.StoreTimeoutSeconds)*time.Second,
		time.Duration(cfg.Booking.NotifyTimeoutSeconds)*time.Second,
	)
	catalogService := catalog.NewCatalogService(catalogRepo, redisCache)

	handlers := []bootstrap.Registrar{
		api.NewBookingHandler(bookingService),
		api.NewPaymentHandler(purchaseService),
		api.NewNotificationHandler(validator, sender),
		api.NewCatalogHandler(catalogService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers...); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
